package repository

import (
	"yonko_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByCode(code string) (*model.User, error) {
	var u model.User
	err := r.DB.Where("code = ?", code).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CodeExists(code string) (bool, error) {
	var count int64
	err := r.DB.Model(&model.User{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
