package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/volatiletech/null/v8"
	"fin-circle.backend/internal/domain/entities"
	domainerrors "fin-circle.backend/internal/domain/errors"
	"fin-circle.backend/internal/metrics"
	"fin-circle.backend/internal/profilestore"
)

func newDisclosureFixture() *profilestore.Store {
	return profilestore.New([]entities.Profile{
		{
			ID:     "profile-1001",
			Region: "上海",
			Age:    30,
			Sensitive: entities.SensitiveProfile{
				RealName:    "张伟",
				Phone:       "13800000001",
				ExactAssets: "¥520.00万",
				CreditScore: 712,
			},
		},
	})
}

func TestDisclosureUsecase_Reveal(t *testing.T) {
	uc := NewDisclosureUsecase(newDisclosureFixture(), DefaultSurveyWindow, metrics.Nop{})

	user := &entities.User{}

	sensitive, err := uc.Reveal(context.Background(), user, "profile-1001")

	assert.NoError(t, err)
	assert.Equal(t, "张伟", sensitive.RealName)
	assert.Equal(t, "13800000001", sensitive.Phone)
	assert.Equal(t, "¥520.00万", sensitive.ExactAssets)
	assert.Equal(t, 712, sensitive.CreditScore)
}

func TestDisclosureUsecase_Reveal_NotEligible(t *testing.T) {
	uc := NewDisclosureUsecase(newDisclosureFixture(), DefaultSurveyWindow, metrics.Nop{})

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	user := &entities.User{LastSurveyAt: null.TimeFrom(now.Add(-time.Hour))}

	_, err := uc.Reveal(context.Background(), user, "profile-1001")

	assert.ErrorIs(t, err, domainerrors.ErrNotEligible)
}

func TestDisclosureUsecase_Reveal_GateCheckedBeforeLookup(t *testing.T) {
	uc := NewDisclosureUsecase(newDisclosureFixture(), DefaultSurveyWindow, metrics.Nop{})

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	user := &entities.User{LastSurveyAt: null.TimeFrom(now.Add(-time.Hour))}

	// ineligible wins over unknown id
	_, err := uc.Reveal(context.Background(), user, "no-such-profile")

	assert.ErrorIs(t, err, domainerrors.ErrNotEligible)
}

func TestDisclosureUsecase_Reveal_NotFound(t *testing.T) {
	uc := NewDisclosureUsecase(newDisclosureFixture(), DefaultSurveyWindow, metrics.Nop{})

	user := &entities.User{}

	_, err := uc.Reveal(context.Background(), user, "no-such-profile")

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestDisclosureUsecase_Reveal_EligibleAgainAfterWindow(t *testing.T) {
	uc := NewDisclosureUsecase(newDisclosureFixture(), DefaultSurveyWindow, metrics.Nop{})

	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	uc.now = func() time.Time { return now }

	user := &entities.User{LastSurveyAt: null.TimeFrom(now.Add(-DefaultSurveyWindow))}

	sensitive, err := uc.Reveal(context.Background(), user, "profile-1001")

	assert.NoError(t, err)
	assert.Equal(t, "张伟", sensitive.RealName)
}
