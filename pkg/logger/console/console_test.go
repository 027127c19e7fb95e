package console

import (
	"bytes"
	"strings"
	"testing"
)

func TestConsoleLogger_PrefixAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(ConsoleLoggerParams{Output: &buf, Prefix: "worker"})

	l.Debug("hidden")
	l.Info("visible", "job_id", "abc")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected debug message to be filtered, got %q", out)
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "worker") {
		t.Fatalf("expected prefixed info message, got %q", out)
	}
}

func TestConsoleLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(ConsoleLoggerParams{Output: &buf, JSON: true, Debug: true, Prefix: "server"})

	l.Debug("staged", "id", 7)

	out := strings.TrimSpace(buf.String())
	if !strings.HasPrefix(out, "{") || !strings.Contains(out, `"msg":"staged"`) {
		t.Fatalf("expected a JSON line, got %q", out)
	}
	if !strings.Contains(out, "server") {
		t.Fatalf("expected prefix in output, got %q", out)
	}
}
