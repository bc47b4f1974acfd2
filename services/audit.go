package services

import (
	"encoding/json"

	"github.com/galpartuk/Ironvest-assignment/actionid"
	"github.com/galpartuk/Ironvest-assignment/config"
	"github.com/galpartuk/Ironvest-assignment/domain"
	"github.com/galpartuk/Ironvest-assignment/dtos/request"
	"github.com/galpartuk/Ironvest-assignment/dtos/response"
	"github.com/galpartuk/Ironvest-assignment/repository/command_repository"
	"github.com/galpartuk/Ironvest-assignment/repository/query_repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type IAuditService interface {
	Record(userId, action string, verdict *actionid.Verdict)
	Recent(userId string, limit int) ([]response.AuditEntry, error)
}

type AuditService struct {
	db      *gorm.DB
	command command_repository.IAuditCommandRepository
	query   query_repository.IAuditQueryRepository
	logger  *zap.Logger
}

func NewAuditService(db *gorm.DB, command command_repository.IAuditCommandRepository, query query_repository.IAuditQueryRepository, logger *zap.Logger) IAuditService {
	return &AuditService{db: db, command: command, query: query, logger: logger}
}

// Record appends one audit row for a verification verdict. It is
// best-effort: a failed append is logged and observed but must not mask
// the auth decision already made, so no error is returned and nothing is
// retried synchronously.
func (a *AuditService) Record(userId, action string, verdict *actionid.Verdict) {
	entry := &domain.AuditLog{
		UserId:         userId,
		Action:         action,
		VerifiedAction: verdict.VerifiedAction,
		IvScore:        verdict.IvScore,
	}
	if len(verdict.Indicators) > 0 {
		if raw, err := json.Marshal(verdict.Indicators); err == nil {
			entry.Indicators = string(raw)
		}
	}

	if err := a.command.Create(a.db, entry); err != nil {
		a.logger.Error("audit append failed",
			zap.String("user_id", userId),
			zap.String("action", action),
			zap.Error(err))
		return
	}

	if config.Conf.Application.Kafka.Enabled {
		event := &request.ValidationEvent{
			UserId:         userId,
			Action:         action,
			VerifiedAction: verdict.VerifiedAction,
			IvScore:        verdict.IvScore,
		}
		go func() {
			_ = SendValidationEventToKafka(event)
		}()
	}
}

func (a *AuditService) Recent(userId string, limit int) ([]response.AuditEntry, error) {
	logs, err := a.query.RecentByUserId(a.db, userId, limit)
	if err != nil {
		return nil, err
	}
	entries := make([]response.AuditEntry, 0, len(logs))
	for i := range logs {
		row := &logs[i]
		entries = append(entries, response.AuditEntry{
			Id:             row.Id,
			CreatedAt:      row.CreatedAt,
			Action:         row.Action,
			VerifiedAction: row.VerifiedAction,
			IvScore:        row.IvScore,
			Indicators:     row.IndicatorFlags(),
		})
	}
	return entries, nil
}
