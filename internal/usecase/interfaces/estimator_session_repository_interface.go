package interfaces

import (
	"context"
	"sparkle_shine/internal/domain/entities"
)

// IEstimatorSessionRepository stores estimator sessions for their TTL.
//
// GetByID returns a zero session (empty ID) when nothing is stored under id,
// so callers decide what "not found" means.

type IEstimatorSessionRepository interface {
	Create(ctx context.Context, s entities.EstimatorSession) (entities.EstimatorSession, error)
	GetByID(ctx context.Context, id string) (entities.EstimatorSession, error)
	Save(ctx context.Context, s entities.EstimatorSession) (entities.EstimatorSession, error)
}
