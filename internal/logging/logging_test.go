package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Info("parsed document", "path", "post.md", "format", "yaml")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}
	if parsed["msg"] != "parsed document" {
		t.Errorf("msg = %v, want %q", parsed["msg"], "parsed document")
	}
	if parsed["format"] != "yaml" {
		t.Errorf("format = %v, want %q", parsed["format"], "yaml")
	}
}

func TestNew_JSONTraceLevelName(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  LevelTrace,
		Format: FormatJSON,
		Output: &buf,
	})

	logger.Log(context.Background(), LevelTrace, "candidate rejected")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if parsed["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", parsed["level"])
	}
}

func TestNew_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: FormatText,
		Output: &buf,
	})

	logger.Info("test message", "key", "value")

	output := buf.String()
	var parsed map[string]any
	if err := json.Unmarshal([]byte(output), &parsed); err == nil {
		t.Error("text format should not be valid JSON")
	}
	for _, want := range []string{"test message", "key=value", "INFO"} {
		if !strings.Contains(output, want) {
			t.Errorf("output missing %q: %s", want, output)
		}
	}
}

func TestNew_UnknownFormatDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{
		Level:  slog.LevelInfo,
		Format: Format("unknown"),
		Output: &buf,
	})

	logger.Info("test message")

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err == nil {
		t.Error("unknown format should default to text, not JSON")
	}
}

func TestNewDiscard_ProducesNoOutput(t *testing.T) {
	logger := NewDiscard()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("discard logger should not be enabled below info")
	}
	logger.Error("should vanish")
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name         string
		configLevel  slog.Level
		logLevel     slog.Level
		shouldAppear bool
	}{
		{"info logged at info level", slog.LevelInfo, slog.LevelInfo, true},
		{"debug not logged at info level", slog.LevelInfo, slog.LevelDebug, false},
		{"trace not logged at debug level", slog.LevelDebug, LevelTrace, false},
		{"trace logged at trace level", LevelTrace, LevelTrace, true},
		{"info not logged at warn level", slog.LevelWarn, slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New(Config{
				Level:  tt.configLevel,
				Format: FormatText,
				Output: &buf,
			})

			logger.Log(context.Background(), tt.logLevel, "test message")

			if hasOutput := buf.Len() > 0; hasOutput != tt.shouldAppear {
				t.Errorf("got output=%v, want output=%v (output: %q)", hasOutput, tt.shouldAppear, buf.String())
			}
		})
	}
}

func TestForTest_CapturesAllLevels(t *testing.T) {
	logger := ForTest(t)
	if !logger.Enabled(context.Background(), LevelTrace) {
		t.Error("ForTest logger should be enabled at trace level")
	}
	logger.Log(context.Background(), LevelTrace, "trace level")
	logger.Debug("debug level")
	logger.Info("info level")
}

func TestLevelFromVerbosity(t *testing.T) {
	tests := []struct {
		verbosity int
		want      slog.Level
	}{
		{-1, slog.LevelWarn},
		{0, slog.LevelWarn},
		{1, slog.LevelInfo},
		{2, slog.LevelDebug},
		{3, LevelTrace},
		{4, LevelTrace},
	}

	for _, tt := range tests {
		if got := LevelFromVerbosity(tt.verbosity); got != tt.want {
			t.Errorf("LevelFromVerbosity(%d) = %v, want %v", tt.verbosity, got, tt.want)
		}
	}
}

func TestContext(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: slog.LevelInfo, Output: &buf})

	ctx := NewContext(context.Background(), logger)
	if got := FromContext(ctx); got != logger {
		t.Error("FromContext should return the stored logger")
	}
	if got := FromContext(context.Background()); got != slog.Default() {
		t.Error("FromContext without a logger should return slog.Default()")
	}
}

func TestTestWriter_TrimsNewline(t *testing.T) {
	tw := &testWriter{t: t}

	for _, msg := range []string{"test message\n", "no newline", ""} {
		n, err := tw.Write([]byte(msg))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != len(msg) {
			t.Errorf("Write(%q) returned %d, want %d", msg, n, len(msg))
		}
	}
}
