package renderer

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	logger.Printf("Rendering %dx%d\n", 640, 480)

	out := buf.String()
	if !strings.Contains(out, "Rendering 640x480") {
		t.Errorf("Expected message in output, got %q", out)
	}
	if !strings.Contains(out, "level=INFO") {
		t.Errorf("Expected info level, got %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("Expected exactly one line, got %q", out)
	}
}

func TestSlogLogger_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})
	NewSlogLogger(slog.New(handler)).Printf("progress %d%%", 50)

	if buf.Len() != 0 {
		t.Errorf("Expected nothing below warn level, got %q", buf.String())
	}
}

func TestNopLogger(t *testing.T) {
	// Must not panic or write anywhere
	NewNopLogger().Printf("ignored %s", "message")

	rt := NewRaytracer(createGreenPlaneScene(), testConfig(4, 4), nil)
	if rt.logger == nil {
		t.Error("Expected a nil logger to be replaced")
	}
}

func TestDefaultLogger(t *testing.T) {
	var buf bytes.Buffer
	NewDefaultLogger(&buf).Printf("Render complete: %s\n", "done")

	if buf.String() != "Render complete: done\n" {
		t.Errorf("Unexpected output %q", buf.String())
	}
}
