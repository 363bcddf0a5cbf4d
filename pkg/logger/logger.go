// Package logger provides opinionated logging capabilities for the explorer
package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type settings struct {
	json   bool
	output io.Writer
}

// Option customizes NewLogger.
type Option func(*settings)

// WithJSON switches from the colored console encoding to JSON lines.
func WithJSON(enabled bool) Option {
	return func(s *settings) { s.json = enabled }
}

// WithOutput writes log entries to w instead of stdout. The TUI uses this to
// keep logs off the terminal it draws on.
func WithOutput(w io.Writer) Option {
	return func(s *settings) { s.output = w }
}

func NewLogger(debug bool, opts ...Option) *zap.Logger {
	s := &settings{output: os.Stdout}
	for _, opt := range opts {
		opt(s)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "time"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if s.json {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	} else {
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	}

	// Set log level
	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(s.output), level)

	return zap.New(core, zap.AddCaller())
}
