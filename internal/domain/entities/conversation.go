package entities

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyMessage      = errors.New("empty message")
	ErrAwaitingResponse  = errors.New("awaiting assistant response")
	ErrLiveSessionActive = errors.New("live session active")
)

// Greeting opens every conversation.
const Greeting = "Hi there! I'm Bubbles ✨ Your cleaning helper! How can I make your day brighter?"

// emptyTurnText stands in for a live turn that produced no transcription.
const emptyTurnText = "✨"

type ChatRole string

const (
	ChatRoleUser  ChatRole = "user"
	ChatRoleModel ChatRole = "model"
)

type ChatMessage struct {
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

// Conversation is the transcript shared by text and voice mode.
//
// AwaitingResponse is set while a text turn is with the model; Live is set
// while a voice session is open. Text turns are refused in both cases.
type Conversation struct {
	ID               string
	Messages         []ChatMessage
	AwaitingResponse bool
	Live             bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func NewConversation(id string, now time.Time) Conversation {
	return Conversation{
		ID:        id,
		Messages:  []ChatMessage{{Role: ChatRoleModel, Text: Greeting}},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (c Conversation) Clone() Conversation {
	c.Messages = append([]ChatMessage(nil), c.Messages...)
	return c
}

// BeginUserTurn appends the visitor's message and marks the conversation as
// waiting for the assistant.
func (c *Conversation) BeginUserTurn(text string) error {
	if strings.TrimSpace(text) == "" {
		return ErrEmptyMessage
	}
	if c.Live {
		return ErrLiveSessionActive
	}
	if c.AwaitingResponse {
		return ErrAwaitingResponse
	}
	c.Messages = append(c.Messages, ChatMessage{Role: ChatRoleUser, Text: text})
	c.AwaitingResponse = true
	return nil
}

func (c *Conversation) CompleteAssistantTurn(text string) {
	c.Messages = append(c.Messages, ChatMessage{Role: ChatRoleModel, Text: text})
	c.AwaitingResponse = false
}

// AppendLiveTurn records a finished voice turn. An empty transcription is
// stored as a sparkle so the turn stays visible.
func (c *Conversation) AppendLiveTurn(transcription string) ChatMessage {
	if transcription == "" {
		transcription = emptyTurnText
	}
	msg := ChatMessage{Role: ChatRoleModel, Text: transcription}
	c.Messages = append(c.Messages, msg)
	return msg
}

func (c *Conversation) StartLive() error {
	if c.Live {
		return ErrLiveSessionActive
	}
	if c.AwaitingResponse {
		return ErrAwaitingResponse
	}
	c.Live = true
	return nil
}

func (c *Conversation) EndLive() {
	c.Live = false
}
