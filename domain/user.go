package domain

import "time"

// User is an enrolled principal. The id is the verifying identifier (the
// email address), so the primary key doubles as the uniqueness constraint
// that serializes concurrent registrations.
type User struct {
	Id        string    `gorm:"primaryKey;size:100" json:"id"`
	CreatedAt time.Time `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}
