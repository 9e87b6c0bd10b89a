package entities

import (
	"time"

	"github.com/google/uuid"
)

// AccessAction is the kind of action recorded against a profile
type AccessAction string

const (
	AccessActionSelfView   AccessAction = "SELF_VIEW"
	AccessActionExpertHelp AccessAction = "EXPERT_HELP"
)

// Valid reports whether the action kind is one of the known values
func (a AccessAction) Valid() bool {
	return a == AccessActionSelfView || a == AccessActionExpertHelp
}

// AccessLogEntry is an immutable per-user record of a profile action,
// carrying a snapshot of the filters in effect at the time.
type AccessLogEntry struct {
	ID              uuid.UUID     `json:"id"`
	UserID          uuid.UUID     `json:"userId"`
	Action          AccessAction  `json:"actionType"`
	TargetProfileID string        `json:"targetProfileId"`
	Filters         SearchFilters `json:"filters"`
	CreatedAt       time.Time     `json:"timestamp"`
}

// RecordActionInput represents input for recording a profile action
type RecordActionInput struct {
	Action          AccessAction  `json:"actionType" binding:"required"`
	TargetProfileID string        `json:"targetProfileId" binding:"required"`
	Filters         SearchFilters `json:"filters"`
}
