package assistant

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sync"

	"sparkle_shine/internal/domain/audio"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/infrastructure/config"
	"sparkle_shine/internal/usecase/interfaces"

	"github.com/gorilla/websocket"
	"google.golang.org/genai"
)

const livePersona = "You are Bubbles, the friendly cleaning assistant for Sparkle & Shine Yonkers. Speak warmly and helpfully. Keep responses brief as this is a voice conversation."

const liveVoice = "Kore"

// liveConn is the subset of *genai.Session the relay needs.
type liveConn interface {
	SendRealtimeInput(input genai.LiveRealtimeInput) error
	Receive() (*genai.LiveServerMessage, error)
	Close() error
}

type liveConnector func(ctx context.Context) (liveConn, error)

// GeminiLiveGateway opens native-audio sessions with the Live API.
type GeminiLiveGateway struct {
	connect liveConnector
}

var _ interfaces.ILiveAssistantGateway = (*GeminiLiveGateway)(nil)

func NewGeminiLiveGateway(client *genai.Client, cfg config.GeminiConfig) *GeminiLiveGateway {
	g := &GeminiLiveGateway{}
	if client == nil {
		return g
	}
	model := cfg.LiveModel
	g.connect = func(ctx context.Context) (liveConn, error) {
		return client.Live.Connect(ctx, model, liveConnectConfig())
	}
	return g
}

func liveConnectConfig() *genai.LiveConnectConfig {
	return &genai.LiveConnectConfig{
		ResponseModalities: []genai.Modality{genai.ModalityAudio},
		SpeechConfig: &genai.SpeechConfig{
			VoiceConfig: &genai.VoiceConfig{
				PrebuiltVoiceConfig: &genai.PrebuiltVoiceConfig{VoiceName: liveVoice},
			},
		},
		SystemInstruction:        genai.NewContentFromText(livePersona, genai.RoleUser),
		OutputAudioTranscription: &genai.AudioTranscriptionConfig{},
	}
}

func (g *GeminiLiveGateway) Connect(ctx context.Context) (interfaces.ILiveSession, error) {
	if g.connect == nil {
		return nil, ErrNotConfigured
	}
	conn, err := g.connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("gemini live connect: %w", err)
	}
	return newGeminiLiveSession(conn), nil
}

type geminiLiveSession struct {
	conn      liveConn
	closeOnce sync.Once
	closeErr  error
	closed    chan struct{}
}

func newGeminiLiveSession(conn liveConn) *geminiLiveSession {
	return &geminiLiveSession{conn: conn, closed: make(chan struct{})}
}

func (s *geminiLiveSession) SendAudio(ctx context.Context, blob audio.Blob) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.isClosed() {
		return io.EOF
	}
	data, err := base64.StdEncoding.DecodeString(blob.Data)
	if err != nil {
		return fmt.Errorf("decode audio blob: %w", err)
	}
	return s.conn.SendRealtimeInput(genai.LiveRealtimeInput{
		Media: &genai.Blob{Data: data, MIMEType: blob.MIMEType},
	})
}

// Receive blocks until the model sends something the relay acts on.
// Setup acknowledgements and usage metadata are skipped. The session is
// closed when ctx is done so the blocked read returns.
func (s *geminiLiveSession) Receive(ctx context.Context) (entities.LiveServerEvent, error) {
	stop := context.AfterFunc(ctx, func() { _ = s.Close() })
	defer stop()

	for {
		msg, err := s.conn.Receive()
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return entities.LiveServerEvent{}, ctxErr
			}
			if s.isClosed() || isNormalClosure(err) {
				return entities.LiveServerEvent{}, io.EOF
			}
			return entities.LiveServerEvent{}, fmt.Errorf("gemini live receive: %w", err)
		}
		if ev, ok := toLiveServerEvent(msg); ok {
			return ev, nil
		}
	}
}

func (s *geminiLiveSession) Close() error {
	s.closeOnce.Do(func() {
		close(s.closed)
		s.closeErr = s.conn.Close()
	})
	return s.closeErr
}

func (s *geminiLiveSession) isClosed() bool {
	select {
	case <-s.closed:
		return true
	default:
		return false
	}
}

func isNormalClosure(err error) bool {
	if errors.Is(err, io.EOF) {
		return true
	}
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}

func toLiveServerEvent(msg *genai.LiveServerMessage) (entities.LiveServerEvent, bool) {
	if msg == nil || msg.ServerContent == nil {
		return entities.LiveServerEvent{}, false
	}
	sc := msg.ServerContent

	var ev entities.LiveServerEvent
	if sc.ModelTurn != nil {
		for _, p := range sc.ModelTurn.Parts {
			if p != nil && p.InlineData != nil {
				ev.Audio = append(ev.Audio, p.InlineData.Data...)
			}
		}
	}
	if sc.OutputTranscription != nil {
		ev.Transcription = sc.OutputTranscription.Text
	}
	ev.Interrupted = sc.Interrupted
	ev.TurnComplete = sc.TurnComplete

	empty := len(ev.Audio) == 0 && ev.Transcription == "" && !ev.Interrupted && !ev.TurnComplete
	return ev, !empty
}
