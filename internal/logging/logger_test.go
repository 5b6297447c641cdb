package logging

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestNewLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rinkside.log")
	logger := NewLogger(Config{Level: "info", Format: "json", File: path, Service: "rinkside", Version: "test"})

	logger.Info("hello", slog.String(FieldEndpoint, "schedule"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file to exist: %v", err)
	}
	var entry map[string]any
	if err := json.Unmarshal(data, &entry); err != nil {
		t.Fatalf("expected json log entry, got %q: %v", data, err)
	}
	if entry[FieldService] != "rinkside" {
		t.Fatalf("expected service field, got %+v", entry)
	}
	if entry[FieldEndpoint] != "schedule" {
		t.Fatalf("expected endpoint field, got %+v", entry)
	}
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger := NewLogger(Config{})
	// Must not panic and must not write to stdout (the UI owns it).
	logger.Info("discarded")
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for raw, want := range cases {
		if got := parseLevel(raw); got != want {
			t.Fatalf("parseLevel(%q) = %v, want %v", raw, got, want)
		}
	}
}

func TestHelpersTolerateNilLogger(t *testing.T) {
	Debug(nil, "msg")
	Info(nil, "msg")
	Warn(nil, "msg")
	Error(nil, "msg", os.ErrNotExist)
}
