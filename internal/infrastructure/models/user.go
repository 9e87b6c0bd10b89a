package models

import (
	"time"

	"github.com/google/uuid"
)

// User rows are keyed by phone; there is no deletion path for accounts.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Phone        string     `gorm:"type:varchar(20);uniqueIndex;not null"`
	Role         string     `gorm:"type:varchar(20);not null;default:'USER'"`
	LastSurveyAt *time.Time `gorm:"type:timestamp"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
