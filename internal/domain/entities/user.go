package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleGuest UserRole = "GUEST"
	UserRoleUser  UserRole = "USER"
	UserRoleAdmin UserRole = "ADMIN"
)

// User represents an account keyed by phone number. LastSurveyAt is null
// until the first survey submission and drives the eligibility gate.
type User struct {
	ID           uuid.UUID `json:"id"`
	Phone        string    `json:"phone"`
	Role         UserRole  `json:"role"`
	LastSurveyAt null.Time `json:"lastSurveyAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// SendCodeInput represents input for requesting an SMS login code
type SendCodeInput struct {
	Phone string `json:"phone" binding:"required"`
}

// LoginInput represents input for SMS-code login
type LoginInput struct {
	Phone string `json:"phone" binding:"required"`
	Code  string `json:"code" binding:"required,len=4"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	SessionID    string `json:"sessionId,omitempty"`
	User         *User  `json:"user"`
}
