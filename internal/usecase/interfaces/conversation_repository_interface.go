package interfaces

import (
	"context"
	"sparkle_shine/internal/domain/entities"
)

// IConversationRepository stores chat transcripts.
//
// Update loads the conversation, applies fn and stores the result as one
// atomic step, so flag checks such as "awaiting a reply" or "live" cannot
// race. When fn returns an error nothing is stored. A missing conversation
// yields a zero value (empty ID) and fn is not called.

type IConversationRepository interface {
	Create(ctx context.Context, c entities.Conversation) (entities.Conversation, error)
	GetByID(ctx context.Context, id string) (entities.Conversation, error)
	Update(ctx context.Context, id string, fn func(c *entities.Conversation) error) (entities.Conversation, error)
}
