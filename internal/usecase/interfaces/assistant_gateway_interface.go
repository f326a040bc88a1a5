package interfaces

import (
	"context"
	"sparkle_shine/internal/domain/audio"
	"sparkle_shine/internal/domain/entities"
)

// IAssistantGateway abstracts the hosted text model.
//
// GenerateReply receives the whole transcript, oldest first, and returns the
// model's reply text. The persona is the gateway's concern.
type IAssistantGateway interface {
	GenerateReply(ctx context.Context, history []entities.ChatMessage) (string, error)
}

// ILiveAssistantGateway opens streaming voice sessions with the hosted
// real-time model.
type ILiveAssistantGateway interface {
	Connect(ctx context.Context) (ILiveSession, error)
}

// ILiveSession is one open streaming session.
//
// Receive blocks until the model sends something; it returns io.EOF once the
// model closed the session. Close is safe to call more than once and
// unblocks a pending Receive.
type ILiveSession interface {
	SendAudio(ctx context.Context, blob audio.Blob) error
	Receive(ctx context.Context) (entities.LiveServerEvent, error)
	Close() error
}
