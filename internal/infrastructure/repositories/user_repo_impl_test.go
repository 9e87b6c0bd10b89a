package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	now := time.Now()
	u := &entities.User{
		ID:        uuid.New(),
		Phone:     "13800138000",
		Role:      entities.UserRoleUser,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, repo.Create(ctx, u))

	byID, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Phone, byID.Phone)
	require.False(t, byID.LastSurveyAt.Valid, "new user has no survey completion")

	byPhone, err := repo.GetByPhone(ctx, u.Phone)
	require.NoError(t, err)
	require.Equal(t, u.ID, byPhone.ID)
}

func TestUserRepository_SetLastSurveyAt(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := &entities.User{ID: uuid.New(), Phone: "13900000001", Role: entities.UserRoleUser}
	require.NoError(t, repo.Create(ctx, u))

	completedAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, repo.SetLastSurveyAt(ctx, u.ID, completedAt))

	got, err := repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.True(t, got.LastSurveyAt.Valid)
	require.WithinDuration(t, completedAt, got.LastSurveyAt.Time, time.Second)

	// last write wins
	later := completedAt.Add(48 * time.Hour)
	require.NoError(t, repo.SetLastSurveyAt(ctx, u.ID, later))
	got, err = repo.GetByID(ctx, u.ID)
	require.NoError(t, err)
	require.WithinDuration(t, later, got.LastSurveyAt.Time, time.Second)
}

func TestUserRepository_NotFoundBranches(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, uuid.New())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	_, err = repo.GetByPhone(ctx, "13999999999")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	err = repo.SetLastSurveyAt(ctx, uuid.New(), time.Now())
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestUserRepository_PhoneIsUnique(t *testing.T) {
	db := newTestDB(t)
	createUserTable(t, db)
	repo := NewUserRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entities.User{ID: uuid.New(), Phone: "13800000000", Role: entities.UserRoleUser}))
	err := repo.Create(ctx, &entities.User{ID: uuid.New(), Phone: "13800000000", Role: entities.UserRoleUser})
	require.Error(t, err)
}
