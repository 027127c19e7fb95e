package util

import (
	"testing"
	"time"
)

func TestGetEnvInt(t *testing.T) {
	t.Setenv("NPD_TEST_INT", "42")
	if got := GetEnvInt("NPD_TEST_INT", 7); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	t.Setenv("NPD_TEST_INT", "forty-two")
	if got := GetEnvInt("NPD_TEST_INT", 7); got != 7 {
		t.Fatalf("expected default 7 for invalid value, got %d", got)
	}
	if got := GetEnvInt("NPD_TEST_INT_MISSING", 3); got != 3 {
		t.Fatalf("expected default 3, got %d", got)
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("NPD_TEST_BOOL", "true")
	if !GetEnvBool("NPD_TEST_BOOL", false) {
		t.Fatal("expected true")
	}
	t.Setenv("NPD_TEST_BOOL", "maybe")
	if !GetEnvBool("NPD_TEST_BOOL", true) {
		t.Fatal("expected default true for invalid value")
	}
}

func TestGetEnvString_EmptyUsesDefault(t *testing.T) {
	t.Setenv("NPD_TEST_STRING", "")
	if got := GetEnvString("NPD_TEST_STRING", "fallback"); got != "fallback" {
		t.Fatalf("expected fallback, got %q", got)
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("NPD_TEST_DURATION", "90s")
	if got := GetEnvDuration("NPD_TEST_DURATION", time.Second); got != 90*time.Second {
		t.Fatalf("expected 90s, got %v", got)
	}
	t.Setenv("NPD_TEST_DURATION", "soon")
	if got := GetEnvDuration("NPD_TEST_DURATION", time.Second); got != time.Second {
		t.Fatalf("expected default 1s, got %v", got)
	}
}
