package response

import (
	"sparkle_shine/internal/domain/entities"
	"time"

	"github.com/samber/lo"
)

type MessageResponse struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

type ConversationResponse struct {
	ID               string            `json:"id"`
	Messages         []MessageResponse `json:"messages"`
	AwaitingResponse bool              `json:"awaiting_response"`
	Live             bool              `json:"live"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

func FromConversation(c entities.Conversation) ConversationResponse {
	return ConversationResponse{
		ID: c.ID,
		Messages: lo.Map(c.Messages, func(m entities.ChatMessage, _ int) MessageResponse {
			return MessageResponse{Role: string(m.Role), Text: m.Text}
		}),
		AwaitingResponse: c.AwaitingResponse,
		Live:             c.Live,
		CreatedAt:        c.CreatedAt,
		UpdatedAt:        c.UpdatedAt,
	}
}
