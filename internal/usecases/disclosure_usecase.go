package usecases

import (
	"context"
	"time"

	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/metrics"
	"fin-circle.backend/internal/profilestore"
)

// DisclosureUsecase releases a profile's sensitive subset to eligible users
type DisclosureUsecase struct {
	store    *profilestore.Store
	window   time.Duration
	recorder metrics.Recorder

	now func() time.Time
}

// NewDisclosureUsecase creates a new disclosure usecase
func NewDisclosureUsecase(store *profilestore.Store, window time.Duration, recorder metrics.Recorder) *DisclosureUsecase {
	return &DisclosureUsecase{
		store:    store,
		window:   window,
		recorder: recorder,
		now:      time.Now,
	}
}

// Reveal returns the sensitive subset of one profile, never the full
// record. Fails with ErrNotEligible when the gate denies and ErrNotFound
// for unknown ids. Recording the access event is the caller's separate
// step.
func (u *DisclosureUsecase) Reveal(ctx context.Context, user *entities.User, profileID string) (*entities.SensitiveProfile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if gate := CheckEligibility(user, u.now(), u.window); !gate.Eligible {
		u.recorder.RecordDisclosure(metrics.OutcomeNotEligible)
		return nil, domainerrors.ErrNotEligible
	}

	profile, ok := u.store.GetByID(profileID)
	if !ok {
		u.recorder.RecordDisclosure(metrics.OutcomeNotFound)
		return nil, domainerrors.ErrNotFound
	}

	sensitive := profile.Sensitive
	u.recorder.RecordDisclosure(metrics.OutcomeRevealed)
	return &sensitive, nil
}
