package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestConsoleHandlerFormatsHeaderAndFields(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger = WithComponent(logger, "scanner")
	logger.Info("track indexed", Track("Moonlight"), Duration("elapsed", 1500*time.Millisecond))

	line := buf.String()
	if !strings.Contains(line, "INFO") {
		t.Fatalf("missing level: %q", line)
	}
	if !strings.Contains(line, "[scanner]") {
		t.Fatalf("component not promoted to header: %q", line)
	}
	if !strings.Contains(line, "track=Moonlight") {
		t.Fatalf("missing track attr: %q", line)
	}
	if !strings.Contains(line, "elapsed=1.5s") {
		t.Fatalf("missing duration attr: %q", line)
	}
	if strings.Contains(line, "component=") {
		t.Fatalf("component should not repeat as trailing field: %q", line)
	}
}

func TestConsoleHandlerQuotesSpacedValues(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger.Warn("load failed", String("title", "Clair de Lune"))

	if !strings.Contains(buf.String(), `title="Clair de Lune"`) {
		t.Fatalf("expected quoted value, got %q", buf.String())
	}
}

func TestConsoleHandlerHonorsLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger.Info("quiet")
	if buf.Len() != 0 {
		t.Fatalf("info line leaked past warn level: %q", buf.String())
	}
	logger.Error("loud")
	if !strings.Contains(buf.String(), "ERROR") {
		t.Fatalf("missing error line: %q", buf.String())
	}
}

func TestJSONHandlerFieldNames(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	logger := slog.New(newJSONHandler(&buf, levelVar, false))

	logger.Info("hello", Path("/music/a.flac"))

	var decoded map[string]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if decoded["msg"] != "hello" {
		t.Fatalf("unexpected msg field: %v", decoded)
	}
	if decoded["level"] != "info" {
		t.Fatalf("unexpected level field: %v", decoded)
	}
	if _, ok := decoded["ts"]; !ok {
		t.Fatalf("missing ts field: %v", decoded)
	}
	if decoded["path"] != "/music/a.flac" {
		t.Fatalf("missing path attr: %v", decoded)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "logfmt"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNopLoggerNeverWrites(t *testing.T) {
	logger := NewNop()
	logger.Error("this should vanish")
	if logger.Enabled(nil, slog.LevelError) {
		t.Fatal("nop logger should report disabled")
	}
}
