package logger

import (
	"fmt"

	"sparkle_shine/internal/infrastructure/config"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger wraps zap.SugaredLogger so callers share one configured instance.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger builds a JSON production logger at the configured level. The
// debug level switches to zap's development encoder.
func NewLogger(cfg config.LoggingConfig) (*Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.Level, err)
	}

	zc := zap.NewProductionConfig()
	if level == zapcore.DebugLevel {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.TimeKey = "timestamp"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.DisableStacktrace = true

	z, err := zc.Build()
	if err != nil {
		return nil, err
	}
	return &Logger{SugaredLogger: z.Sugar()}, nil
}

func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

// GinWriter adapts the logger to gin's debug output.
func (l *Logger) GinWriter() *ginWriter {
	return &ginWriter{logger: l}
}

type ginWriter struct {
	logger *Logger
}

func (g *ginWriter) Write(p []byte) (int, error) {
	g.logger.Debug(string(p))
	return len(p), nil
}
