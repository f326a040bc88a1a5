package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"sparkle_shine/internal/domain/entities"
	mock_interfaces "sparkle_shine/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// stubConversationStore makes the repository mock behave like the real
// store for Update: fn runs against the stored copy and is kept on success.
func stubConversationStore(repo *mock_interfaces.MockIConversationRepository, stored *entities.Conversation) {
	repo.EXPECT().Update(gomock.Any(), stored.ID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, fn func(*entities.Conversation) error) (entities.Conversation, error) {
			next := stored.Clone()
			if err := fn(&next); err != nil {
				return entities.Conversation{}, err
			}
			*stored = next
			return next.Clone(), nil
		},
	).AnyTimes()
}

func newStoredConversation() *entities.Conversation {
	c := entities.NewConversation("c-1", time.Date(2024, time.February, 15, 14, 0, 0, 0, time.UTC))
	return &c
}

func TestChatUseCase_StartConversation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIConversationRepository(ctrl)
	uc := NewChatUseCase(repo, nil, 0, nil)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c entities.Conversation) (entities.Conversation, error) { return c, nil },
	)

	c, err := uc.StartConversation(context.Background())
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if c.ID == "" || len(c.Messages) != 1 || c.Messages[0].Text != entities.Greeting {
		t.Fatalf("unexpected conversation: %+v", c)
	}
}

func TestChatUseCase_GetConversation(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, 0, nil)
		_, err := uc.GetConversation(context.Background(), "")
		if !errors.Is(err, ErrInvalidConversationID) {
			t.Fatalf("expected ErrInvalidConversationID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		uc := NewChatUseCase(repo, nil, 0, nil)

		repo.EXPECT().GetByID(gomock.Any(), "c-1").Return(entities.Conversation{}, nil)

		_, err := uc.GetConversation(context.Background(), "c-1")
		if !errors.Is(err, ErrConversationNotFound) {
			t.Fatalf("expected ErrConversationNotFound, got %v", err)
		}
	})
}

func TestChatUseCase_SendMessage(t *testing.T) {
	t.Run("blank text", func(t *testing.T) {
		uc := NewChatUseCase(nil, nil, 0, nil)
		_, err := uc.SendMessage(context.Background(), "c-1", "   ")
		if !errors.Is(err, entities.ErrEmptyMessage) {
			t.Fatalf("expected ErrEmptyMessage, got %v", err)
		}
	})

	t.Run("conversation not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		uc := NewChatUseCase(repo, nil, 0, nil)

		repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.Conversation{}, nil)

		_, err := uc.SendMessage(context.Background(), "c-1", "hi")
		if !errors.Is(err, ErrConversationNotFound) {
			t.Fatalf("expected ErrConversationNotFound, got %v", err)
		}
	})

	t.Run("reply pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewChatUseCase(repo, gateway, 0, nil)

		stored := newStoredConversation()
		stored.AwaitingResponse = true
		stubConversationStore(repo, stored)

		_, err := uc.SendMessage(context.Background(), "c-1", "hello?")
		if !errors.Is(err, entities.ErrAwaitingResponse) {
			t.Fatalf("expected ErrAwaitingResponse, got %v", err)
		}
		if len(stored.Messages) != 1 {
			t.Fatalf("duplicate send must not be recorded, got %d messages", len(stored.Messages))
		}
	})

	t.Run("live session active", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewChatUseCase(repo, gateway, 0, nil)

		stored := newStoredConversation()
		stored.Live = true
		stubConversationStore(repo, stored)

		_, err := uc.SendMessage(context.Background(), "c-1", "hello?")
		if !errors.Is(err, entities.ErrLiveSessionActive) {
			t.Fatalf("expected ErrLiveSessionActive, got %v", err)
		}
	})

	t.Run("reply appended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewChatUseCase(repo, gateway, 0, nil)

		stored := newStoredConversation()
		stubConversationStore(repo, stored)

		gateway.EXPECT().GenerateReply(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, history []entities.ChatMessage) (string, error) {
				if len(history) != 2 || history[0].Text != entities.Greeting || history[1].Text != "Do you clean ovens?" {
					t.Fatalf("unexpected history: %+v", history)
				}
				if !stored.AwaitingResponse {
					t.Fatalf("expected conversation to be awaiting while the model answers")
				}
				return "Yes! Deep Shine includes the oven 🧽", nil
			},
		)

		c, err := uc.SendMessage(context.Background(), "c-1", "Do you clean ovens?")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if len(c.Messages) != 3 || c.Messages[2].Role != entities.ChatRoleModel || c.Messages[2].Text != "Yes! Deep Shine includes the oven 🧽" {
			t.Fatalf("unexpected messages: %+v", c.Messages)
		}
		if c.AwaitingResponse || stored.AwaitingResponse {
			t.Fatalf("expected awaiting flag cleared")
		}
	})

	t.Run("gateway error falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewChatUseCase(repo, gateway, 0, nil)

		stored := newStoredConversation()
		stubConversationStore(repo, stored)
		gateway.EXPECT().GenerateReply(gomock.Any(), gomock.Any()).Return("", errors.New("unavailable"))

		c, err := uc.SendMessage(context.Background(), "c-1", "hi")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if got := c.Messages[len(c.Messages)-1].Text; got != FallbackConnectionReply {
			t.Fatalf("expected connection fallback, got %q", got)
		}
	})

	t.Run("empty reply falls back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewChatUseCase(repo, gateway, 0, nil)

		stored := newStoredConversation()
		stubConversationStore(repo, stored)
		gateway.EXPECT().GenerateReply(gomock.Any(), gomock.Any()).Return("  ", nil)

		c, err := uc.SendMessage(context.Background(), "c-1", "hi")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if got := c.Messages[len(c.Messages)-1].Text; got != FallbackEmptyReply {
			t.Fatalf("expected empty-reply fallback, got %q", got)
		}
	})

	t.Run("slow model times out", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewChatUseCase(repo, gateway, 10*time.Millisecond, nil)

		stored := newStoredConversation()
		stubConversationStore(repo, stored)
		gateway.EXPECT().GenerateReply(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, _ []entities.ChatMessage) (string, error) {
				<-ctx.Done()
				return "", ctx.Err()
			},
		)

		c, err := uc.SendMessage(context.Background(), "c-1", "hi")
		if err != nil {
			t.Fatalf("expected nil err, got %v", err)
		}
		if got := c.Messages[len(c.Messages)-1].Text; got != FallbackConnectionReply {
			t.Fatalf("expected connection fallback, got %q", got)
		}
	})

	t.Run("store error on reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIConversationRepository(ctrl)
		gateway := mock_interfaces.NewMockIAssistantGateway(ctrl)
		uc := NewChatUseCase(repo, gateway, 0, nil)

		stored := newStoredConversation()
		gomock.InOrder(
			repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).DoAndReturn(
				func(_ context.Context, _ string, fn func(*entities.Conversation) error) (entities.Conversation, error) {
					next := stored.Clone()
					if err := fn(&next); err != nil {
						return entities.Conversation{}, err
					}
					return next, nil
				},
			),
			repo.EXPECT().Update(gomock.Any(), "c-1", gomock.Any()).Return(entities.Conversation{}, errors.New("db")),
		)
		gateway.EXPECT().GenerateReply(gomock.Any(), gomock.Any()).Return("hello", nil)

		_, err := uc.SendMessage(context.Background(), "c-1", "hi")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
