package service

import (
	"errors"

	"yonko_backend/internal/model"
	"yonko_backend/internal/repository"
	"yonko_backend/internal/util"

	"gorm.io/gorm"
)

const (
	accessCodeLength = 16
	// 16 位字母数字几乎不会撞码，重试上限只是兜底
	codeRetryLimit = 5
)

type UserService struct {
	Repo *repository.UserRepository
}

func NewUserService(repo *repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

// Register 创建用户并分配唯一访问码
func (s *UserService) Register() (*model.User, error) {
	for i := 0; i < codeRetryLimit; i++ {
		code, err := util.GenerateCode(accessCodeLength)
		if err != nil {
			return nil, err
		}

		exists, err := s.Repo.CodeExists(code)
		if err != nil {
			return nil, err
		}
		if exists {
			continue
		}

		user := &model.User{Code: code}
		if err := s.Repo.Create(user); err != nil {
			return nil, err
		}
		return user, nil
	}
	return nil, util.ErrCodeExhausted
}

// GetByCode 按访问码查用户
func (s *UserService) GetByCode(code string) (*model.User, error) {
	u, err := s.Repo.FindByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrUserNotFound
	}
	return u, err
}
