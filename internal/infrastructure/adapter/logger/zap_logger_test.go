package logger

import (
	"errors"
	"testing"

	"github.com/amirhossein-jamali/gift-tracker/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.InfoLevel)
	obsCore, logs := observer.New(level)
	l := newFromCore(obsCore, level)

	l.Debug("hidden", nil)
	l.Info("shown", map[string]any{"user_id": uint64(7)})
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
	assert.Equal(t, uint64(7), logs.All()[0].ContextMap()["user_id"])

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("now shown", nil)
	assert.Equal(t, 2, logs.Len())

	l.SetLevel(core.LogLevelError)
	l.Warn("hidden again", nil)
	assert.Equal(t, 2, logs.Len())
}

func TestZapLogger_WithAndErrors(t *testing.T) {
	level := zap.NewAtomicLevelAt(zap.DebugLevel)
	obsCore, logs := observer.New(level)
	l := newFromCore(obsCore, level)

	child := l.With(map[string]any{"request_id": "abc"})
	child.Error("failed", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "abc", fields["request_id"])
	assert.Equal(t, "boom", fields["error"])
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, core.LogLevelDebug, core.ParseLogLevel("debug"))
	assert.Equal(t, core.LogLevelWarn, core.ParseLogLevel("warning"))
	assert.Equal(t, core.LogLevelError, core.ParseLogLevel("error"))
	assert.Equal(t, core.LogLevelInfo, core.ParseLogLevel("verbose"))
}
