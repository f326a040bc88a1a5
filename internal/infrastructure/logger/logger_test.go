package logger

import (
	"testing"

	"sparkle_shine/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	l, err := NewLogger(config.LoggingConfig{Level: "warn"})
	require.NoError(t, err)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Desugar().Core().Enabled(zapcore.WarnLevel))

	l, err = NewLogger(config.LoggingConfig{Level: "debug"})
	require.NoError(t, err)
	assert.True(t, l.Desugar().Core().Enabled(zapcore.DebugLevel))

	_, err = NewLogger(config.LoggingConfig{Level: "chatty"})
	assert.Error(t, err)
}

func TestGinWriter(t *testing.T) {
	n, err := NewNop().GinWriter().Write([]byte("[GIN-debug] GET /v1/ping"))
	require.NoError(t, err)
	assert.Equal(t, 24, n)
}
