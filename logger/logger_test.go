package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := (Config{Level: tt.level}).LogLevel(); got != tt.want {
				t.Errorf("LogLevel(%q) = %v, want %v", tt.level, got, tt.want)
			}
		})
	}
}

func TestJSONLogging(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Version: "1.2.3"}, &buf)

	log.Info("test message", "key", "value")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("Failed to parse JSON log: %v", err)
	}
	if entry["msg"] != "test message" || entry["key"] != "value" {
		t.Errorf("entry = %v", entry)
	}
	if entry["app"] != "questtweaks" || entry["version"] != "1.2.3" {
		t.Errorf("base attributes missing: %v", entry)
	}
}

func TestTextLoggingFiltersLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "text"}, &buf)

	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info record written at warn level")
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("output = %q, want text record", out)
	}
}

func TestDiscard(t *testing.T) {
	Discard().Error("nothing happens")
}
