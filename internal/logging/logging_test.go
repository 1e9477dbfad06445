package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"
)

func TestSetupVerboseEmitsDebugJSON(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
		Level.Set(slog.LevelWarn)
	})

	buf := &bytes.Buffer{}
	Setup(buf, true)
	slog.Debug("clock read", "prefix", "20240315090507")

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if record["msg"] != "clock read" {
		t.Fatalf("msg = %v, want %q", record["msg"], "clock read")
	}
	if record["prefix"] != "20240315090507" {
		t.Fatalf("prefix = %v, want %q", record["prefix"], "20240315090507")
	}
}

func TestSetupQuietByDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(original)
		Level.Set(slog.LevelWarn)
	})

	buf := &bytes.Buffer{}
	Setup(buf, false)
	slog.Debug("clock read")
	slog.Info("still hidden")

	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}
