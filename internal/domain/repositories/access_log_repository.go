package repositories

import (
	"context"

	"github.com/google/uuid"
	"fin-circle.backend/internal/domain/entities"
)

// AccessLogRepository defines the append-only per-user action log.
// Entries are never updated or deleted; listing is newest first.
type AccessLogRepository interface {
	Append(ctx context.Context, entry *entities.AccessLogEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.AccessLogEntry, error)
}
