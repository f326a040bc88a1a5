package repository

import (
	"context"
	"time"

	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

// EstimatorSessionMemoryRepository keeps sessions in process memory with a
// sliding expiry. Values are cloned on the way in and out so callers never
// share the stored copy.

type EstimatorSessionMemoryRepository struct {
	store *cache.Cache
}

var _ interfaces.IEstimatorSessionRepository = (*EstimatorSessionMemoryRepository)(nil)

func NewEstimatorSessionMemoryRepository(ttl time.Duration) *EstimatorSessionMemoryRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &EstimatorSessionMemoryRepository{store: cache.New(ttl, ttl/2)}
}

func (r *EstimatorSessionMemoryRepository) Create(_ context.Context, s entities.EstimatorSession) (entities.EstimatorSession, error) {
	if err := r.store.Add(s.ID, s.Clone(), cache.DefaultExpiration); err != nil {
		return entities.EstimatorSession{}, ErrDuplicateID
	}
	return s.Clone(), nil
}

func (r *EstimatorSessionMemoryRepository) GetByID(_ context.Context, id string) (entities.EstimatorSession, error) {
	v, ok := r.store.Get(id)
	if !ok {
		return entities.EstimatorSession{}, nil
	}
	return v.(entities.EstimatorSession).Clone(), nil
}

func (r *EstimatorSessionMemoryRepository) Save(_ context.Context, s entities.EstimatorSession) (entities.EstimatorSession, error) {
	// Replace fails for missing or expired keys.
	if err := r.store.Replace(s.ID, s.Clone(), cache.DefaultExpiration); err != nil {
		return entities.EstimatorSession{}, nil
	}
	return s.Clone(), nil
}
