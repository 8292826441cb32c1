package util

import "errors"

var (
	ErrUserNotFound        = errors.New("用户不存在")
	ErrRoadmapNotFound     = errors.New("roadmap not found for this university")
	ErrRequirementNotFound = errors.New("requirement not found in roadmap catalog")
	ErrCodeExhausted       = errors.New("failed to allocate a unique access code")
)
