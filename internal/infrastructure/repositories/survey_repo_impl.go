package repositories

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"fin-circle.backend/internal/domain/entities"
	"fin-circle.backend/internal/infrastructure/models"
)

// SurveyRepository implements the global append-only submission sequence
type SurveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository creates a new survey repository
func NewSurveyRepository(db *gorm.DB) *SurveyRepository {
	return &SurveyRepository{db: db}
}

// Append adds a submission to the global sequence
func (r *SurveyRepository) Append(ctx context.Context, submission *entities.SurveySubmission) error {
	answers, err := json.Marshal(submission.Answers)
	if err != nil {
		return err
	}
	m := &models.SurveySubmission{
		ID:        submission.ID,
		UserID:    submission.UserID,
		Answers:   string(answers),
		Score:     submission.Score,
		CreatedAt: submission.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(m).Error
}

// ListByUser returns a user's submissions, newest first
func (r *SurveyRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.SurveySubmission, error) {
	var rows []models.SurveySubmission
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	submissions := make([]*entities.SurveySubmission, 0, len(rows))
	for _, m := range rows {
		var answers map[string]any
		if err := json.Unmarshal([]byte(m.Answers), &answers); err != nil {
			return nil, err
		}
		submissions = append(submissions, &entities.SurveySubmission{
			ID:        m.ID,
			UserID:    m.UserID,
			Answers:   answers,
			Score:     m.Score,
			CreatedAt: m.CreatedAt,
		})
	}
	return submissions, nil
}
