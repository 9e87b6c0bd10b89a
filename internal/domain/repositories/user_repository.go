package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"fin-circle.backend/internal/domain/entities"
)

// UserRepository defines user data operations. Users are the only entity
// persisted across restarts and are keyed by phone number.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByPhone(ctx context.Context, phone string) (*entities.User, error)
	SetLastSurveyAt(ctx context.Context, id uuid.UUID, at time.Time) error
}
