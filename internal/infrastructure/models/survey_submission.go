package models

import (
	"time"

	"github.com/google/uuid"
)

// SurveySubmission is append-only; rows are never updated.
type SurveySubmission struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Answers   string    `gorm:"type:text;not null"` // raw answer map as JSON
	Score     int       `gorm:"not null"`
	CreatedAt time.Time
}
