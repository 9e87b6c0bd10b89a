package usecases

import (
	"context"
	"time"

	"github.com/google/uuid"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/domain/repositories"
	"fin-circle.backend/internal/profilestore"
)

// HistoryUsecase records and lists per-user profile actions
type HistoryUsecase struct {
	logRepo repositories.AccessLogRepository

	userLocks keyedMutex
	now       func() time.Time
}

// NewHistoryUsecase creates a new history usecase
func NewHistoryUsecase(logRepo repositories.AccessLogRepository) *HistoryUsecase {
	return &HistoryUsecase{
		logRepo: logRepo,
		now:     time.Now,
	}
}

// Record appends one action to the user's log. Appends for the same user
// are serialized; entries are never rewritten.
func (u *HistoryUsecase) Record(ctx context.Context, userID uuid.UUID, input *entities.RecordActionInput) (*entities.AccessLogEntry, error) {
	if !input.Action.Valid() {
		return nil, domainerrors.BadRequest("unknown action type")
	}
	if input.TargetProfileID == "" {
		return nil, domainerrors.BadRequest("target profile id is required")
	}
	if err := profilestore.ValidateFilters(input.Filters); err != nil {
		return nil, err
	}

	entry := &entities.AccessLogEntry{
		ID:              uuid.New(),
		UserID:          userID,
		Action:          input.Action,
		TargetProfileID: input.TargetProfileID,
		Filters:         input.Filters,
		CreatedAt:       u.now(),
	}

	unlock := u.userLocks.Lock(userID.String())
	defer unlock()

	if err := u.logRepo.Append(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// History returns the user's entries, newest first
func (u *HistoryUsecase) History(ctx context.Context, userID uuid.UUID) ([]*entities.AccessLogEntry, error) {
	return u.logRepo.ListByUser(ctx, userID)
}
