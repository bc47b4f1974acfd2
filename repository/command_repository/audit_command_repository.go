package command_repository

import (
	"github.com/galpartuk/Ironvest-assignment/domain"

	"gorm.io/gorm"
)

type IAuditCommandRepository interface {
	Create(db *gorm.DB, entity *domain.AuditLog) error
}

type AuditCommandRepository struct{}

func NewAuditCommandRepository() IAuditCommandRepository {
	return &AuditCommandRepository{}
}

func (a *AuditCommandRepository) Create(db *gorm.DB, entity *domain.AuditLog) error {
	return db.Create(entity).Error
}
