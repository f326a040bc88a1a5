package usecase

import (
	"context"
	"errors"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrConversationNotFound  = errors.New("conversation not found")
	ErrInvalidConversationID = errors.New("invalid conversation id")
)

// Replies used instead of surfacing assistant failures to the visitor.
const (
	FallbackConnectionReply = "I'm having a little trouble connecting to the cleaning cloud. Try again in a second! ✨"
	FallbackEmptyReply      = "Oops, Bubbles got a little tangled in the mop! Can you try again?"
)

const DefaultAssistantTimeout = 30 * time.Second

// IChatUseCase is the text mode of the assistant.

type IChatUseCase interface {
	StartConversation(ctx context.Context) (entities.Conversation, error)
	GetConversation(ctx context.Context, id string) (entities.Conversation, error)
	SendMessage(ctx context.Context, id, text string) (entities.Conversation, error)
}

type ChatUseCase struct {
	repo    interfaces.IConversationRepository
	gateway interfaces.IAssistantGateway
	timeout time.Duration
	log     *zap.SugaredLogger
	now     func() time.Time
}

var _ IChatUseCase = (*ChatUseCase)(nil)

func NewChatUseCase(repo interfaces.IConversationRepository, gateway interfaces.IAssistantGateway, timeout time.Duration, log *zap.SugaredLogger) *ChatUseCase {
	if timeout <= 0 {
		timeout = DefaultAssistantTimeout
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &ChatUseCase{repo: repo, gateway: gateway, timeout: timeout, log: log, now: time.Now}
}

func (u *ChatUseCase) StartConversation(ctx context.Context) (entities.Conversation, error) {
	c := entities.NewConversation(uuid.NewString(), u.now().UTC())
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.log.Errorw("[chat][usecase] create conversation failed", "error", err)
		return entities.Conversation{}, err
	}
	return created, nil
}

func (u *ChatUseCase) GetConversation(ctx context.Context, id string) (entities.Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Conversation{}, ErrInvalidConversationID
	}

	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Conversation{}, err
	}
	if c.ID == "" {
		return entities.Conversation{}, ErrConversationNotFound
	}
	return c, nil
}

// SendMessage runs one text turn. The visitor's message is recorded and
// the conversation locked for further sends before the model is called;
// the reply, or a fallback, is appended and the lock released afterwards.
func (u *ChatUseCase) SendMessage(ctx context.Context, id, text string) (entities.Conversation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Conversation{}, ErrInvalidConversationID
	}
	if strings.TrimSpace(text) == "" {
		return entities.Conversation{}, entities.ErrEmptyMessage
	}

	pending, err := u.repo.Update(ctx, id, func(c *entities.Conversation) error {
		if err := c.BeginUserTurn(text); err != nil {
			return err
		}
		c.UpdatedAt = u.now().UTC()
		return nil
	})
	if err != nil {
		return entities.Conversation{}, err
	}
	if pending.ID == "" {
		return entities.Conversation{}, ErrConversationNotFound
	}

	reply := u.generateReply(ctx, pending)

	// The turn must be released even if the visitor went away meanwhile.
	done, err := u.repo.Update(context.WithoutCancel(ctx), id, func(c *entities.Conversation) error {
		c.CompleteAssistantTurn(reply)
		c.UpdatedAt = u.now().UTC()
		return nil
	})
	if err != nil {
		u.log.Errorw("[chat][usecase] store reply failed", "conversation_id", id, "error", err)
		return entities.Conversation{}, err
	}
	if done.ID == "" {
		// Expired while the model was answering.
		pending.CompleteAssistantTurn(reply)
		return pending, nil
	}
	return done, nil
}

func (u *ChatUseCase) generateReply(ctx context.Context, c entities.Conversation) string {
	callCtx, cancel := context.WithTimeout(ctx, u.timeout)
	defer cancel()

	started := u.now()
	reply, err := u.gateway.GenerateReply(callCtx, append([]entities.ChatMessage(nil), c.Messages...))
	if err != nil {
		u.log.Warnw("[chat][usecase] assistant call failed",
			"conversation_id", c.ID,
			"elapsed", u.now().Sub(started),
			"error", err,
		)
		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		}
		return FallbackConnectionReply
	}
	if strings.TrimSpace(reply) == "" {
		u.log.Warnw("[chat][usecase] assistant returned empty reply", "conversation_id", c.ID)
		return FallbackEmptyReply
	}
	return reply
}
