package command_repository

import (
	"errors"

	"github.com/galpartuk/Ironvest-assignment/domain"

	"gorm.io/gorm"
)

type IUserCommandRepository interface {
	Create(db *gorm.DB, entity *domain.User) (*domain.User, error)
}

type UserCommandRepository struct{}

func NewUserCommandRepository() IUserCommandRepository {
	return &UserCommandRepository{}
}

// Create inserts the user row. The primary key constraint is the
// authoritative uniqueness check: two racing registrations can both pass
// the earlier existence read, but only one insert wins.
func (u *UserCommandRepository) Create(db *gorm.DB, entity *domain.User) (*domain.User, error) {
	return entity, db.Create(entity).Error
}

// IsDuplicate reports whether an insert failed because the id already
// exists.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
