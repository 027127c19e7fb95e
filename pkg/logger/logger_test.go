package logger

import "testing"

type recordingInstance struct {
	entries []string
}

func (r *recordingInstance) record(level, message string) {
	r.entries = append(r.entries, level+":"+message)
}

func (r *recordingInstance) Log(message string, keyvals ...any)   { r.record("log", message) }
func (r *recordingInstance) Debug(message string, keyvals ...any) { r.record("debug", message) }
func (r *recordingInstance) Info(message string, keyvals ...any)  { r.record("info", message) }
func (r *recordingInstance) Warn(message string, keyvals ...any)  { r.record("warn", message) }
func (r *recordingInstance) Error(message string, keyvals ...any) { r.record("error", message) }
func (r *recordingInstance) Fatal(message string, keyvals ...any) { r.record("fatal", message) }

func TestLogger_DispatchesToAllInstances(t *testing.T) {
	a := &recordingInstance{}
	b := &recordingInstance{}
	Init(a, b)
	t.Cleanup(func() { Init() })

	Info("hello")
	Warn("careful")

	for _, r := range []*recordingInstance{a, b} {
		if len(r.entries) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(r.entries))
		}
		if r.entries[0] != "info:hello" || r.entries[1] != "warn:careful" {
			t.Fatalf("unexpected entries: %v", r.entries)
		}
	}
}

func TestLogger_ReinitDetachesPreviousInstances(t *testing.T) {
	previous := &recordingInstance{}
	Init(previous)
	t.Cleanup(func() { Init() })

	Init()
	Error("nobody listens")

	if len(previous.entries) != 0 {
		t.Fatalf("expected no entries after reinit, got %v", previous.entries)
	}
}

func TestLogger_NilSingletonDropsMessages(t *testing.T) {
	previous := &recordingInstance{}
	Init(previous)
	t.Cleanup(func() { Init() })

	mu.Lock()
	singleton = nil
	mu.Unlock()

	Error("nobody listens")

	if len(previous.entries) != 0 {
		t.Fatalf("expected no entries without a logger, got %v", previous.entries)
	}
}
