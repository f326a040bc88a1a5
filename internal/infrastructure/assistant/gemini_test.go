package assistant

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"sparkle_shine/internal/domain/audio"
	"sparkle_shine/internal/domain/entities"
	"sparkle_shine/internal/infrastructure/config"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

type fakeGenerator struct {
	contents []*genai.Content
	config   *genai.GenerateContentConfig
	resp     *genai.GenerateContentResponse
	err      error
}

func (f *fakeGenerator) GenerateContent(_ context.Context, _ string, contents []*genai.Content, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.contents = contents
	f.config = cfg
	return f.resp, f.err
}

func TestGeminiTextGateway_NotConfigured(t *testing.T) {
	client, err := NewClient(context.Background(), config.GeminiConfig{})
	require.NoError(t, err)
	assert.Nil(t, client)

	g := NewGeminiTextGateway(client, config.GeminiConfig{TextModel: "gemini-2.5-flash"})
	_, err = g.GenerateReply(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGeminiTextGateway_GenerateReply(t *testing.T) {
	gen := &fakeGenerator{
		resp: &genai.GenerateContentResponse{
			Candidates: []*genai.Candidate{{Content: genai.NewContentFromText("Happy to help! 🧽", genai.RoleModel)}},
		},
	}
	g := &GeminiTextGateway{models: gen, model: "gemini-2.5-flash"}

	history := []entities.ChatMessage{
		{Role: entities.ChatRoleModel, Text: entities.Greeting},
		{Role: entities.ChatRoleUser, Text: "Do you clean ovens?"},
	}
	reply, err := g.GenerateReply(context.Background(), history)
	require.NoError(t, err)
	assert.Equal(t, "Happy to help! 🧽", reply)

	require.Len(t, gen.contents, 2)
	assert.Equal(t, string(genai.RoleModel), gen.contents[0].Role)
	assert.Equal(t, string(genai.RoleUser), gen.contents[1].Role)
	assert.Equal(t, "Do you clean ovens?", gen.contents[1].Parts[0].Text)
	assert.Contains(t, gen.config.SystemInstruction.Parts[0].Text, "Yonkers")
	assert.InDelta(t, 0.7, *gen.config.Temperature, 1e-6)
}

func TestGeminiTextGateway_Error(t *testing.T) {
	boom := errors.New("quota exceeded")
	g := &GeminiTextGateway{models: &fakeGenerator{err: boom}}

	_, err := g.GenerateReply(context.Background(), nil)
	assert.ErrorIs(t, err, boom)
}

type fakeLiveConn struct {
	mu       sync.Mutex
	sent     []genai.LiveRealtimeInput
	messages chan *genai.LiveServerMessage
	recvErr  error
	done     chan struct{}
	closes   int
}

func newFakeLiveConn() *fakeLiveConn {
	return &fakeLiveConn{messages: make(chan *genai.LiveServerMessage, 8), done: make(chan struct{})}
}

func (f *fakeLiveConn) SendRealtimeInput(in genai.LiveRealtimeInput) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, in)
	return nil
}

func (f *fakeLiveConn) Receive() (*genai.LiveServerMessage, error) {
	select {
	case msg, ok := <-f.messages:
		if !ok {
			return nil, f.recvErr
		}
		return msg, nil
	case <-f.done:
		return nil, errors.New("use of closed network connection")
	}
}

func (f *fakeLiveConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	if f.closes == 1 {
		close(f.done)
	}
	return nil
}

func TestGeminiLiveGateway_NotConfigured(t *testing.T) {
	g := NewGeminiLiveGateway(nil, config.GeminiConfig{})
	_, err := g.Connect(context.Background())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestGeminiLiveGateway_ConnectError(t *testing.T) {
	boom := errors.New("handshake failed")
	g := &GeminiLiveGateway{connect: func(context.Context) (liveConn, error) { return nil, boom }}

	_, err := g.Connect(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestLiveConnectConfig(t *testing.T) {
	cfg := liveConnectConfig()
	assert.Equal(t, []genai.Modality{genai.ModalityAudio}, cfg.ResponseModalities)
	assert.Equal(t, "Kore", cfg.SpeechConfig.VoiceConfig.PrebuiltVoiceConfig.VoiceName)
	assert.NotNil(t, cfg.OutputAudioTranscription)
	assert.Contains(t, cfg.SystemInstruction.Parts[0].Text, "voice conversation")
}

func TestGeminiLiveSession_SendAudio(t *testing.T) {
	conn := newFakeLiveConn()
	s := newGeminiLiveSession(conn)

	blob := audio.NewPCMBlob([]float32{0, 0.5}, audio.InputSampleRate)
	require.NoError(t, s.SendAudio(context.Background(), blob))

	require.Len(t, conn.sent, 1)
	assert.Equal(t, "audio/pcm;rate=16000", conn.sent[0].Media.MIMEType)
	assert.Len(t, conn.sent[0].Media.Data, 4)

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.SendAudio(context.Background(), blob), io.EOF)
}

func TestGeminiLiveSession_SendAudioBadBlob(t *testing.T) {
	s := newGeminiLiveSession(newFakeLiveConn())
	err := s.SendAudio(context.Background(), audio.Blob{Data: "%%%", MIMEType: "audio/pcm;rate=16000"})
	assert.Error(t, err)
}

func TestGeminiLiveSession_Receive(t *testing.T) {
	conn := newFakeLiveConn()
	s := newGeminiLiveSession(conn)

	conn.messages <- &genai.LiveServerMessage{SetupComplete: &genai.LiveServerSetupComplete{}}
	conn.messages <- &genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{
		ModelTurn: &genai.Content{Parts: []*genai.Part{
			{InlineData: &genai.Blob{Data: []byte{1, 2}}},
			{InlineData: &genai.Blob{Data: []byte{3, 4}}},
		}},
		OutputTranscription: &genai.Transcription{Text: "Hi"},
	}}
	conn.messages <- &genai.LiveServerMessage{ServerContent: &genai.LiveServerContent{TurnComplete: true}}

	ev, err := s.Receive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, ev.Audio)
	assert.Equal(t, "Hi", ev.Transcription)

	ev, err = s.Receive(context.Background())
	require.NoError(t, err)
	assert.True(t, ev.TurnComplete)
}

func TestGeminiLiveSession_ReceiveNormalClosure(t *testing.T) {
	conn := newFakeLiveConn()
	conn.recvErr = &websocket.CloseError{Code: websocket.CloseNormalClosure}
	close(conn.messages)

	_, err := newGeminiLiveSession(conn).Receive(context.Background())
	assert.ErrorIs(t, err, io.EOF)
}

func TestGeminiLiveSession_ReceiveFailure(t *testing.T) {
	conn := newFakeLiveConn()
	conn.recvErr = &websocket.CloseError{Code: websocket.CloseInternalServerErr}
	close(conn.messages)

	_, err := newGeminiLiveSession(conn).Receive(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestGeminiLiveSession_ReceiveContextCancel(t *testing.T) {
	conn := newFakeLiveConn()
	s := newGeminiLiveSession(conn)

	ctx, cancel := context.WithCancel(context.Background())
	time.AfterFunc(10*time.Millisecond, cancel)

	_, err := s.Receive(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, s.isClosed())

	require.NoError(t, s.Close())
	assert.Equal(t, 1, conn.closes)
}
