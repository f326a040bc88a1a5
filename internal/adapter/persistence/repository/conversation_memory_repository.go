package repository

import (
	"context"
	"sync"
	"time"

	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase/interfaces"

	"github.com/patrickmn/go-cache"
)

// ConversationMemoryRepository keeps chat transcripts in process memory.
// Update holds a single lock around load, fn and store.

type ConversationMemoryRepository struct {
	mu    sync.Mutex
	store *cache.Cache
}

var _ interfaces.IConversationRepository = (*ConversationMemoryRepository)(nil)

func NewConversationMemoryRepository(ttl time.Duration) *ConversationMemoryRepository {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	return &ConversationMemoryRepository{store: cache.New(ttl, ttl/2)}
}

func (r *ConversationMemoryRepository) Create(_ context.Context, c entities.Conversation) (entities.Conversation, error) {
	if err := r.store.Add(c.ID, c.Clone(), cache.DefaultExpiration); err != nil {
		return entities.Conversation{}, ErrDuplicateID
	}
	return c.Clone(), nil
}

func (r *ConversationMemoryRepository) GetByID(_ context.Context, id string) (entities.Conversation, error) {
	v, ok := r.store.Get(id)
	if !ok {
		return entities.Conversation{}, nil
	}
	return v.(entities.Conversation).Clone(), nil
}

func (r *ConversationMemoryRepository) Update(ctx context.Context, id string, fn func(c *entities.Conversation) error) (entities.Conversation, error) {
	if err := ctx.Err(); err != nil {
		return entities.Conversation{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.store.Get(id)
	if !ok {
		return entities.Conversation{}, nil
	}
	c := v.(entities.Conversation).Clone()
	if err := fn(&c); err != nil {
		return entities.Conversation{}, err
	}
	r.store.Set(id, c.Clone(), cache.DefaultExpiration)
	return c, nil
}
