package usecases

import (
	"time"

	"fin-circle.backend/internal/domain/entities"
)

// DefaultSurveyWindow is how long a completed survey stays valid
const DefaultSurveyWindow = 7 * 24 * time.Hour

// CheckEligibility decides whether a time-gated feature is open for the
// user. Eligible when no survey was ever completed, or when the window has
// fully elapsed since the last completion. Pure: "now" is injected so the
// result is deterministic for its three inputs.
func CheckEligibility(user *entities.User, now time.Time, window time.Duration) entities.Eligibility {
	if !user.LastSurveyAt.Valid {
		return entities.Eligibility{Eligible: true}
	}

	elapsed := now.Sub(user.LastSurveyAt.Time)
	if elapsed >= window {
		return entities.Eligibility{Eligible: true}
	}

	remaining := window - elapsed
	return entities.Eligibility{
		Eligible:  false,
		WaitDays:  ceilDays(remaining),
		Remaining: remaining,
	}
}

// ceilDays rounds a duration up to whole days, counting in milliseconds
func ceilDays(d time.Duration) int {
	const dayMs = int64(24 * time.Hour / time.Millisecond)
	ms := d.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return int((ms + dayMs - 1) / dayMs)
}
