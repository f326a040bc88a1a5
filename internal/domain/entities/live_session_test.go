package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLiveSessionState_Transitions(t *testing.T) {
	s := LiveStateIdle
	var err error

	for _, next := range []LiveSessionState{LiveStateConnecting, LiveStateStreaming, LiveStateInterrupted, LiveStateStreaming, LiveStateClosed} {
		s, err = s.Transition(next)
		require.NoError(t, err)
	}
	assert.Equal(t, LiveStateClosed, s)

	_, err = LiveStateClosed.Transition(LiveStateStreaming)
	assert.ErrorIs(t, err, ErrInvalidLiveTransition)

	_, err = LiveStateIdle.Transition(LiveStateStreaming)
	assert.ErrorIs(t, err, ErrInvalidLiveTransition)

	for _, from := range []LiveSessionState{LiveStateIdle, LiveStateConnecting, LiveStateStreaming, LiveStateInterrupted} {
		assert.True(t, from.CanTransitionTo(LiveStateClosed), "%s -> closed", from)
	}
}
