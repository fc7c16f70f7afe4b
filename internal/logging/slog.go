// Package logging sets up the service loggers: slog for the application and zerolog
// for the access log.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// SlogManager owns the application logger.
type SlogManager struct {
	logger *slog.Logger
	level  slog.Level
}

func NewSlogManager() *SlogManager {
	return &SlogManager{}
}

func parseLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Setup writes text records to console and, if non-nil, to file.
func (m *SlogManager) Setup(console, file io.Writer, level string) {
	m.level = parseLevel(level)

	handlerOpts := &slog.HandlerOptions{
		Level: m.level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.UTC().Format(time.RFC3339))
				}
			}
			return a
		},
	}

	var handlers []slog.Handler
	if console != nil {
		handlers = append(handlers, slog.NewTextHandler(console, handlerOpts))
	}
	if file != nil {
		handlers = append(handlers, slog.NewTextHandler(file, handlerOpts))
	}

	m.logger = slog.New(NewMultiHandler(handlers...))
	m.logger.Info("Logging initialized", "level", m.level.String())
}

// Logger returns slog.Default until Setup has run.
func (m *SlogManager) Logger() *slog.Logger {
	if m.logger == nil {
		return slog.Default()
	}
	return m.logger
}

// AccessLogger returns a zerolog logger at the same level as the slog one.
func (m *SlogManager) AccessLogger(w io.Writer) zerolog.Logger {
	lvl := zerolog.InfoLevel
	switch m.level {
	case slog.LevelDebug:
		lvl = zerolog.DebugLevel
	case slog.LevelWarn:
		lvl = zerolog.WarnLevel
	case slog.LevelError:
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Str("component", "http").Logger()
}
