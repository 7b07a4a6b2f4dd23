package slogcustom

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level slog.Level) (*slog.Logger, *bytes.Buffer) {
	color.NoColor = true

	var buf bytes.Buffer

	return slog.New(NewCustomHandler(&buf, level)), &buf
}

func TestCustomHandler_Handle(t *testing.T) {
	log, buf := newTestLogger(slog.LevelDebug)

	log.Info("call done", "method", "getMe", "attempts", 1)

	out := buf.String()
	assert.Contains(t, out, "INFO: call done")
	assert.Contains(t, out, "method=getMe")
	assert.Contains(t, out, "attempts=1")
	assert.Equal(t, byte('\n'), out[len(out)-1])
}

func TestCustomHandler_Enabled(t *testing.T) {
	log, buf := newTestLogger(slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "WARN: shown")
	assert.False(t, log.Handler().Enabled(context.Background(), slog.LevelDebug))
}

func TestCustomHandler_WithAttrsAndGroup(t *testing.T) {
	log, buf := newTestLogger(slog.LevelDebug)

	log.With("component", "client").WithGroup("req").With("id", "r1").Info("sent", "method", "sendMessage")

	out := buf.String()
	assert.Contains(t, out, "component=client")
	assert.Contains(t, out, "req.id=r1")
	assert.Contains(t, out, "req.method=sendMessage")
}

func TestCustomHandler_GroupAttr(t *testing.T) {
	log, buf := newTestLogger(slog.LevelDebug)

	log.Info("limits", slog.Group("rate", "rps", 30, "burst", 5))

	assert.Contains(t, buf.String(), "rate.rps=30")
	assert.Contains(t, buf.String(), "rate.burst=5")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = ParseLevel(" WARN ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
