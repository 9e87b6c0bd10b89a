package usecases

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/domain/repositories"
	"fin-circle.backend/internal/metrics"
	"fin-circle.backend/pkg/logger"
)

// scoreField is the designated answer the classifier keys on
const scoreField = "q3"

// vipThreshold is the minimum score that classifies a user as VIP
const vipThreshold = 4

// SurveyUsecase scores and records risk-assessment submissions
type SurveyUsecase struct {
	surveyRepo repositories.SurveyRepository
	userRepo   repositories.UserRepository
	window     time.Duration
	recorder   metrics.Recorder

	userLocks keyedMutex
	now       func() time.Time
}

// NewSurveyUsecase creates a new survey usecase
func NewSurveyUsecase(surveyRepo repositories.SurveyRepository, userRepo repositories.UserRepository, window time.Duration, recorder metrics.Recorder) *SurveyUsecase {
	return &SurveyUsecase{
		surveyRepo: surveyRepo,
		userRepo:   userRepo,
		window:     window,
		recorder:   recorder,
		now:        time.Now,
	}
}

// Score extracts the designated field and maps it to a classification.
// Anything missing or non-numeric scores 0 and falls into the default
// class; a submission is never rejected for a bad answer shape.
func Score(answers map[string]any) (entities.SurveyClass, int) {
	score := numericAnswer(answers[scoreField])
	if score >= vipThreshold {
		return entities.SurveyClassVIP, score
	}
	return entities.SurveyClassBasic, score
}

// numericAnswer coerces a decoded JSON answer to an int, defaulting to 0.
// Numbers arrive as float64 from encoding/json but clients have sent
// strings and json.Number too.
func numericAnswer(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return int(i)
		}
	case string:
		var f float64
		if err := json.Unmarshal([]byte(n), &f); err == nil {
			return int(f)
		}
	}
	return 0
}

// Eligibility reports whether the user may take the survey now
func (u *SurveyUsecase) Eligibility(ctx context.Context, userID uuid.UUID) (*entities.Eligibility, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	gate := CheckEligibility(user, u.now(), u.window)
	return &gate, nil
}

// Submit scores the answers, appends the submission to the global sequence
// and stamps the user's LastSurveyAt, which closes the gate for the window.
// Submissions for one user are serialized so a concurrent pair cannot
// interleave the append and the stamp.
func (u *SurveyUsecase) Submit(ctx context.Context, userID uuid.UUID, answers map[string]any) (*entities.SurveyResult, error) {
	unlock := u.userLocks.Lock(userID.String())
	defer unlock()

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if gate := CheckEligibility(user, u.now(), u.window); !gate.Eligible {
		return nil, domainerrors.ErrNotEligible
	}

	class, score := Score(answers)
	submittedAt := u.now()

	submission := &entities.SurveySubmission{
		ID:        uuid.New(),
		UserID:    userID,
		Answers:   answers,
		Score:     score,
		CreatedAt: submittedAt,
	}
	if err := u.surveyRepo.Append(ctx, submission); err != nil {
		return nil, err
	}

	if err := u.userRepo.SetLastSurveyAt(ctx, userID, submittedAt); err != nil {
		return nil, err
	}
	user.LastSurveyAt.SetValid(submittedAt)

	u.recorder.RecordSurveySubmission(string(class))
	logger.Info(ctx, "survey submitted",
		zap.String("userId", userID.String()),
		zap.Int("score", score),
		zap.String("classification", string(class)))

	return &entities.SurveyResult{
		User:           user,
		Classification: class,
		Score:          score,
	}, nil
}

// Submissions returns the user's own submissions, newest first
func (u *SurveyUsecase) Submissions(ctx context.Context, userID uuid.UUID) ([]*entities.SurveySubmission, error) {
	return u.surveyRepo.ListByUser(ctx, userID)
}
