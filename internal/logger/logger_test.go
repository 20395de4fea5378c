package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.level, "text")
			require.NotNil(t, log)
		})
	}
}

func TestLoggerLevels(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "text")

	log.Debug(ctx, "debug message")
	log.Info(ctx, "info message")
	log.Warn(ctx, "warn message")
	log.Error(ctx, "error message")
	log.Info(ctx, "formatted message: %s %d", "test", 123)

	out := buf.String()
	require.NotContains(t, out, "debug message")
	require.Contains(t, out, "info message")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
	require.Contains(t, out, "formatted message: test 123")
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    zapcore.Level
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", zapcore.DebugLevel, true},
		{"info logs at debug level", "debug", zapcore.InfoLevel, true},
		{"debug doesn't log at info level", "info", zapcore.DebugLevel, false},
		{"info logs at info level", "info", zapcore.InfoLevel, true},
		{"error always logs", "debug", zapcore.ErrorLevel, true},
		{"unknown level defaults to info", "loud", zapcore.DebugLevel, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel, "text").(*implLogger)
			require.Equal(t, tt.shouldLog, log.shouldLog(tt.logLevel))
		})
	}
}

func TestRequestIDIsAttached(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "info", "json")

	ctx := WithRequestID(context.Background(), "req-42")
	log.Info(ctx, "handled")

	require.Contains(t, buf.String(), `"request_id":"req-42"`)
	require.Equal(t, "req-42", RequestID(ctx))
	require.Empty(t, RequestID(context.Background()))
}

func TestNopDiscards(t *testing.T) {
	log := NewNop()
	log.Error(context.Background(), "never shown")
}
