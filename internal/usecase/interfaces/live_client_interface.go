package interfaces

import "context"

type LiveClientFrameType string

const (
	LiveClientAudio LiveClientFrameType = "audio"
	LiveClientStop  LiveClientFrameType = "stop"
	LiveClientError LiveClientFrameType = "error"
)

// LiveClientFrame is one message from the browser: raw microphone samples
// at the device rate, a stop request, or a client-side failure such as a
// denied microphone.
type LiveClientFrame struct {
	Type       LiveClientFrameType
	Samples    []float32
	SampleRate int
	Message    string
}

type LiveEventType string

const (
	LiveEventState         LiveEventType = "state"
	LiveEventAudio         LiveEventType = "audio"
	LiveEventTranscription LiveEventType = "transcription"
	LiveEventInterrupted   LiveEventType = "interrupted"
	LiveEventTurnComplete  LiveEventType = "turn_complete"
	LiveEventError         LiveEventType = "error"
)

// LiveEvent is one message to the browser.
type LiveEvent struct {
	Type       LiveEventType `json:"type"`
	State      string        `json:"state,omitempty"`
	Data       string        `json:"data,omitempty"`
	SampleRate int           `json:"sample_rate,omitempty"`
	StartAtMS  int64         `json:"start_at_ms,omitempty"`
	DurationMS int64         `json:"duration_ms,omitempty"`
	Text       string        `json:"text,omitempty"`
}

// ILiveClient is the browser side of a voice session.
type ILiveClient interface {
	Receive(ctx context.Context) (LiveClientFrame, error)
	Send(ctx context.Context, event LiveEvent) error
	Close() error
}
