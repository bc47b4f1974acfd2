package domain

import (
	"encoding/json"
	"time"
)

const (
	ActionRegister   = "register"
	ActionLogin      = "login"
	ActionEnrollment = "enrollment"
)

// AuditLog is one row per call to the provider's validation endpoint,
// appended on both accepted and rejected verdicts. Rows are never updated
// or deleted. The referenced user row need not exist: a rejected
// registration logs against an id that was never persisted.
type AuditLog struct {
	Id             uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserId         string    `gorm:"size:100;not null;index" json:"user_id"`
	Action         string    `gorm:"size:32;not null" json:"action"`
	CreatedAt      time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	VerifiedAction bool      `gorm:"not null" json:"verified_action"`
	IvScore        *float64  `json:"iv_score"`
	Indicators     string    `gorm:"type:text" json:"indicators"`
}

// IndicatorFlags decodes the stored provider indicators, keeping only
// boolean-valued keys. The provider's key set is open; anything that is
// not a bool is passed over without error.
func (a *AuditLog) IndicatorFlags() map[string]bool {
	flags := map[string]bool{}
	if a.Indicators == "" {
		return flags
	}
	var raw map[string]interface{}
	if err := json.Unmarshal([]byte(a.Indicators), &raw); err != nil {
		return flags
	}
	for key, value := range raw {
		if b, ok := value.(bool); ok {
			flags[key] = b
		}
	}
	return flags
}
