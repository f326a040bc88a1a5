package handlers

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"sparkle_shine/internal/domain/audio"
	"sparkle_shine/internal/usecase/interfaces"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	liveWriteWait = 10 * time.Second
	liveMaxFrame  = 1 << 20
)

var errMissingSampleRate = errors.New("audio frame without sample_rate")

// liveFrame is the JSON message the browser sends over the voice websocket.
type liveFrame struct {
	Type       string `json:"type"`
	Data       string `json:"data,omitempty"`
	SampleRate int    `json:"sample_rate,omitempty"`
	Message    string `json:"message,omitempty"`
}

// websocketLiveClient adapts a browser websocket to interfaces.ILiveClient.
// Writes are serialized; reads come from a single goroutine.
type websocketLiveClient struct {
	conn      *websocket.Conn
	writeMu   sync.Mutex
	closeOnce sync.Once
}

var _ interfaces.ILiveClient = (*websocketLiveClient)(nil)

func newWebsocketLiveClient(conn *websocket.Conn) *websocketLiveClient {
	conn.SetReadLimit(liveMaxFrame)
	return &websocketLiveClient{conn: conn}
}

// Receive returns the next audio, stop or error frame. Unknown frame types
// are skipped. A done ctx unblocks the read by expiring its deadline.
func (w *websocketLiveClient) Receive(ctx context.Context) (interfaces.LiveClientFrame, error) {
	stop := context.AfterFunc(ctx, func() { _ = w.conn.SetReadDeadline(time.Now()) })
	defer stop()

	for {
		var f liveFrame
		if err := w.conn.ReadJSON(&f); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return interfaces.LiveClientFrame{}, ctxErr
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived) {
				return interfaces.LiveClientFrame{}, io.EOF
			}
			return interfaces.LiveClientFrame{}, err
		}

		switch interfaces.LiveClientFrameType(f.Type) {
		case interfaces.LiveClientAudio:
			if f.SampleRate <= 0 {
				return interfaces.LiveClientFrame{}, errMissingSampleRate
			}
			raw, err := base64.StdEncoding.DecodeString(f.Data)
			if err != nil {
				return interfaces.LiveClientFrame{}, fmt.Errorf("decode audio frame: %w", err)
			}
			return interfaces.LiveClientFrame{
				Type:       interfaces.LiveClientAudio,
				Samples:    audio.DecodeFloat32LE(raw),
				SampleRate: f.SampleRate,
			}, nil
		case interfaces.LiveClientStop:
			return interfaces.LiveClientFrame{Type: interfaces.LiveClientStop}, nil
		case interfaces.LiveClientError:
			return interfaces.LiveClientFrame{Type: interfaces.LiveClientError, Message: f.Message}, nil
		}
	}
}

func (w *websocketLiveClient) Send(ctx context.Context, ev interfaces.LiveEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	w.writeMu.Lock()
	defer w.writeMu.Unlock()
	_ = w.conn.SetWriteDeadline(time.Now().Add(liveWriteWait))
	return w.conn.WriteJSON(ev)
}

func (w *websocketLiveClient) Close() error {
	var err error
	w.closeOnce.Do(func() {
		w.writeMu.Lock()
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = w.conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
		w.writeMu.Unlock()
		err = w.conn.Close()
	})
	return err
}
