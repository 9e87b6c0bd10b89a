package usecases

import (
	"context"

	"fin-circle.backend/internal/domain/entities"
	"fin-circle.backend/internal/metrics"
	"fin-circle.backend/internal/profilestore"
)

// SearchUsecase runs directory queries against the profile store
type SearchUsecase struct {
	store    *profilestore.Store
	recorder metrics.Recorder
}

// NewSearchUsecase creates a new search usecase
func NewSearchUsecase(store *profilestore.Store, recorder metrics.Recorder) *SearchUsecase {
	return &SearchUsecase{store: store, recorder: recorder}
}

// Search returns the public views of every profile matching the filters,
// in store order. Sensitive fields never leave through this path.
func (u *SearchUsecase) Search(ctx context.Context, filters entities.SearchFilters) ([]entities.Profile, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	hits, err := u.store.Search(filters)
	if err != nil {
		return nil, err
	}

	results := make([]entities.Profile, len(hits))
	for i, p := range hits {
		results[i] = p.PublicView()
	}
	u.recorder.RecordSearch(len(results))
	return results, nil
}
