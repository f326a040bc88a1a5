package entities

import (
	"errors"
	"fmt"
)

var ErrInvalidLiveTransition = errors.New("invalid live session transition")

// LiveSessionState is the lifecycle of a voice session.
//
//	idle -> connecting -> streaming <-> interrupted
//	any  -> closed
type LiveSessionState string

const (
	LiveStateIdle        LiveSessionState = "idle"
	LiveStateConnecting  LiveSessionState = "connecting"
	LiveStateStreaming   LiveSessionState = "streaming"
	LiveStateInterrupted LiveSessionState = "interrupted"
	LiveStateClosed      LiveSessionState = "closed"
)

var liveTransitions = map[LiveSessionState][]LiveSessionState{
	LiveStateIdle:        {LiveStateConnecting, LiveStateClosed},
	LiveStateConnecting:  {LiveStateStreaming, LiveStateClosed},
	LiveStateStreaming:   {LiveStateInterrupted, LiveStateClosed},
	LiveStateInterrupted: {LiveStateStreaming, LiveStateClosed},
	LiveStateClosed:      {},
}

func (s LiveSessionState) CanTransitionTo(next LiveSessionState) bool {
	for _, allowed := range liveTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transition returns next when the move is allowed.
func (s LiveSessionState) Transition(next LiveSessionState) (LiveSessionState, error) {
	if !s.CanTransitionTo(next) {
		return s, fmt.Errorf("%w: %s -> %s", ErrInvalidLiveTransition, s, next)
	}
	return next, nil
}

// LiveServerEvent is one message received from the live model.
//
// Audio holds raw little-endian PCM16 at the model's output rate.
type LiveServerEvent struct {
	Audio         []byte
	Transcription string
	Interrupted   bool
	TurnComplete  bool
}
