package query_repository

import (
	"errors"

	"github.com/galpartuk/Ironvest-assignment/domain"

	"gorm.io/gorm"
)

type IUserQueryRepository interface {
	GetById(db *gorm.DB, id string) (*domain.User, error)
	ExistsById(db *gorm.DB, id string) (bool, error)
}

type UserQueryRepository struct{}

func NewUserQueryRepository() IUserQueryRepository {
	return &UserQueryRepository{}
}

func (u *UserQueryRepository) GetById(db *gorm.DB, id string) (*domain.User, error) {
	var user domain.User
	if err := db.Where("id = ?", id).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (u *UserQueryRepository) ExistsById(db *gorm.DB, id string) (bool, error) {
	var count int64
	if err := db.Model(&domain.User{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}
