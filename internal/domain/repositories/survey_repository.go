package repositories

import (
	"context"

	"github.com/google/uuid"
	"fin-circle.backend/internal/domain/entities"
)

// SurveyRepository defines the global, append-only submission sequence
type SurveyRepository interface {
	Append(ctx context.Context, submission *entities.SurveySubmission) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.SurveySubmission, error)
}
