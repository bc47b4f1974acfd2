package query_repository

import (
	"github.com/galpartuk/Ironvest-assignment/domain"

	"gorm.io/gorm"
)

type IAuditQueryRepository interface {
	RecentByUserId(db *gorm.DB, userId string, limit int) ([]domain.AuditLog, error)
}

type AuditQueryRepository struct{}

func NewAuditQueryRepository() IAuditQueryRepository {
	return &AuditQueryRepository{}
}

func (a *AuditQueryRepository) RecentByUserId(db *gorm.DB, userId string, limit int) ([]domain.AuditLog, error) {
	var logs []domain.AuditLog
	err := db.Where("user_id = ?", userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	if err != nil {
		return nil, err
	}
	return logs, nil
}
