package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// BoolMap 需求完成状态，存为 JSON 列
type BoolMap map[string]bool

func (m BoolMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *BoolMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

// StringMap 需求备注文本，存为 JSON 列
type StringMap map[string]string

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *StringMap) Scan(value interface{}) error {
	return scanJSON(value, m)
}

func scanJSON(value, dest interface{}) error {
	if value == nil {
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, dest)
	case string:
		return json.Unmarshal([]byte(v), dest)
	default:
		return fmt.Errorf("unsupported json column type %T", value)
	}
}

// Roadmap 一个用户对一所大学的申请进度。
// 创建时按 CountryCode 对应编目播种 Requirements / Notes 的全部键，
// 此后键集合不变，只翻转取值。
// swagger:model
type Roadmap struct {
	UUIDBase
	UserCode     string    `gorm:"size:16;uniqueIndex:idx_user_university;not null" json:"userCode"`
	UniversityID string    `gorm:"size:64;uniqueIndex:idx_user_university;not null" json:"universityId"`
	CountryCode  string    `gorm:"size:8;not null" json:"countryCode"`
	Requirements BoolMap   `gorm:"type:json" json:"requirements"`
	Notes        StringMap `gorm:"type:json" json:"notes"`

	// AutoCompleted 创建时被跨校自动勾选的需求 ID，只随创建响应返回一次，不落库
	AutoCompleted []string `gorm:"-" json:"autoCompleted,omitempty"`
}

func (Roadmap) TableName() string {
	return "roadmaps"
}

// CompletedIDs 当前已完成的需求 ID 集合
func (r *Roadmap) CompletedIDs() map[string]bool {
	done := make(map[string]bool, len(r.Requirements))
	for id, ok := range r.Requirements {
		if ok {
			done[id] = true
		}
	}
	return done
}
