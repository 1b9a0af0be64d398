// Package logger builds the slog logger used across questtweaks.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// Log level and format names.
const (
	LevelDebug   = "debug"
	LevelInfo    = "info"
	LevelWarn    = "warn"
	LevelWarning = "warning"
	LevelError   = "error"

	FormatJSON = "json"
	FormatText = "text"
)

// Config represents logger configuration.
type Config struct {
	Level     string // "debug", "info", "warn", "error"
	Format    string // "json", "text"
	Version   string
	AddSource bool // include source file/line in logs
}

// DefaultConfig returns the defaults used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Level:   LevelInfo,
		Format:  FormatText,
		Version: "dev",
	}
}

// LogLevel converts the configured level to a slog.Level. Unknown levels
// fall back to info.
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn, LevelWarning:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether the format is JSON.
func (c Config) IsJSON() bool {
	return strings.ToLower(c.Format) == FormatJSON
}

// New creates a logger writing to w. Every record carries the app name and
// version.
func New(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     cfg.LogLevel(),
		AddSource: cfg.AddSource,
	}
	var handler slog.Handler
	if cfg.IsJSON() {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler).With(
		slog.String("app", "questtweaks"),
		slog.String("version", cfg.Version),
	)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
