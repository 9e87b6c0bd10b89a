package models

import (
	"time"

	"github.com/google/uuid"
)

// AccessLog is append-only; rows are never updated or deleted.
type AccessLog struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID `gorm:"type:uuid;index;not null"`
	Action          string    `gorm:"type:varchar(20);not null"`
	TargetProfileID string    `gorm:"type:varchar(50);not null"`
	Filters         string    `gorm:"type:text;not null"` // filters snapshot as JSON
	CreatedAt       time.Time
}
