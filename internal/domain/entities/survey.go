package entities

import (
	"time"

	"github.com/google/uuid"
)

// SurveyClass is the classification outcome of a scored submission
type SurveyClass string

const (
	SurveyClassVIP   SurveyClass = "VIP"
	SurveyClassBasic SurveyClass = "BASIC"
)

// SurveySubmission is an immutable record in the global submission sequence
type SurveySubmission struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"userId"`
	Answers   map[string]any `json:"answers"`
	Score     int            `json:"score"`
	CreatedAt time.Time      `json:"createdAt"`
}

// SurveyResult is returned to the submitting user
type SurveyResult struct {
	User           *User       `json:"user"`
	Classification SurveyClass `json:"classification"`
	Score          int         `json:"score"`
}

// Eligibility reports whether a time-gated feature is open for a user
type Eligibility struct {
	Eligible  bool          `json:"eligible"`
	WaitDays  int           `json:"waitDays"`
	Remaining time.Duration `json:"-"`
}
