package models

import (
	"time"

	"github.com/google/uuid"
)

type Post struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Author    string    `gorm:"type:varchar(20);not null"`
	Title     string    `gorm:"type:varchar(200);not null"`
	Category  string    `gorm:"type:varchar(50);not null"`
	Content   string    `gorm:"type:text;not null"`
	Views     int       `gorm:"not null;default:0"`
	Status    string    `gorm:"type:varchar(20);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Reply struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	PostID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Author    string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time
}
