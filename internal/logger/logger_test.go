package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiHandler_DispatchesToAll(t *testing.T) {
	var infoBuf, errorBuf bytes.Buffer
	h := NewMultiHandler(
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&errorBuf, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	log := slog.New(h).With("game.id", "g-1").WithGroup("bot")

	log.Info("Bot chose move", "move", 4)
	log.Error("Bot failed", "error", "boom")

	assert.Contains(t, infoBuf.String(), "Bot chose move")
	assert.Contains(t, infoBuf.String(), "game.id=g-1")
	assert.Contains(t, infoBuf.String(), "bot.move=4")
	assert.NotContains(t, errorBuf.String(), "Bot chose move")
	assert.Contains(t, errorBuf.String(), "Bot failed")
}

func TestMultiHandler_Enabled(t *testing.T) {
	var buf bytes.Buffer
	h := NewMultiHandler(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestNew_ConsoleLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	assert.False(t, strings.Contains(out, "hidden"))
	assert.True(t, strings.Contains(out, "shown"))
}
