package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"fin-circle.backend/internal/domain/entities"
	"fin-circle.backend/internal/infrastructure/models"
)

// AccessLogRepository implements the append-only per-user action log
type AccessLogRepository struct {
	db *gorm.DB
}

// NewAccessLogRepository creates a new access log repository
func NewAccessLogRepository(db *gorm.DB) *AccessLogRepository {
	return &AccessLogRepository{db: db}
}

// Append adds an entry; there is no update or delete path
func (r *AccessLogRepository) Append(ctx context.Context, entry *entities.AccessLogEntry) error {
	filters, err := json.Marshal(entry.Filters)
	if err != nil {
		return err
	}
	m := &models.AccessLog{
		ID:              entry.ID,
		UserID:          entry.UserID,
		Action:          string(entry.Action),
		TargetProfileID: entry.TargetProfileID,
		Filters:         string(filters),
		CreatedAt:       entry.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUser returns a user's entries, newest first
func (r *AccessLogRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.AccessLogEntry, error) {
	var rows []models.AccessLog
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*entities.AccessLogEntry, 0, len(rows))
	for _, m := range rows {
		var filters entities.SearchFilters
		if err := json.Unmarshal([]byte(m.Filters), &filters); err != nil {
			return nil, err
		}
		entries = append(entries, &entities.AccessLogEntry{
			ID:              m.ID,
			UserID:          m.UserID,
			Action:          entities.AccessAction(m.Action),
			TargetProfileID: m.TargetProfileID,
			Filters:         filters,
			CreatedAt:       m.CreatedAt,
		})
	}
	return entries, nil
}
