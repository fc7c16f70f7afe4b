package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_ConsoleAndFile(t *testing.T) {
	var console, file bytes.Buffer
	m := NewSlogManager()
	m.Setup(&console, &file, "info")
	m.Logger().Info("hello", "stage", "velocity")

	assert.Contains(t, console.String(), "hello")
	assert.Contains(t, file.String(), "stage=velocity")
	assert.Contains(t, file.String(), "Logging initialized")
}

func TestSetup_InfoLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(&buf, nil, "info")

	m.Logger().Debug("debug msg")
	m.Logger().Info("info msg")

	assert.NotContains(t, buf.String(), "debug msg")
	assert.Contains(t, buf.String(), "info msg")
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.in), tt.in)
	}
}

func TestLogger_DefaultBeforeSetup(t *testing.T) {
	assert.Same(t, slog.Default(), NewSlogManager().Logger())
}

func TestAccessLogger_FollowsLevel(t *testing.T) {
	var buf bytes.Buffer
	m := NewSlogManager()
	m.Setup(nil, nil, "warn")

	l := m.AccessLogger(&buf)
	l.Info().Msg("skipped")
	l.Warn().Msg("kept")

	assert.NotContains(t, buf.String(), "skipped")
	assert.Contains(t, buf.String(), `"component":"http"`)
	assert.Contains(t, buf.String(), "kept")
}

type failingHandler struct{ slog.Handler }

func (failingHandler) Handle(context.Context, slog.Record) error { return errors.New("disk full") }

func TestMultiHandler_ContinuesAfterFailure(t *testing.T) {
	var buf bytes.Buffer
	good := slog.NewTextHandler(&buf, nil)
	h := NewMultiHandler(failingHandler{good}, nil, good)

	logger := slog.New(h)
	logger.Info("still written")
	assert.Contains(t, buf.String(), "still written")

	err := h.Handle(context.Background(), slog.NewRecord(time.Time{}, slog.LevelInfo, "x", 0))
	require.Error(t, err)
	assert.Equal(t, "disk full", err.Error())
}

func TestMultiHandler_WithAttrsAndGroup(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewMultiHandler(slog.NewTextHandler(&buf, nil)))

	logger.With("channel", "calc:penetration").WithGroup("req").Info("call", "id", 7)
	assert.Contains(t, buf.String(), "channel=calc:penetration")
	assert.Contains(t, buf.String(), "req.id=7")
}
