package testingx

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"connectrpc.com/connect"
	coreerrors "github.com/openstatushq/openstatus-go/core/errors"
	"github.com/openstatushq/openstatus-go/core/identity"
)

// recordingTB records failures instead of failing the running test.
type recordingTB struct {
	testing.TB
	failed bool
}

func (r *recordingTB) Helper()               {}
func (r *recordingTB) Errorf(string, ...any) { r.failed = true }
func (r *recordingTB) Fatalf(string, ...any) { r.failed = true }

func TestNewMockLogger(t *testing.T) {
	logger := NewMockLogger(t)
	if logger == nil {
		t.Fatal("NewMockLogger should return non-nil logger")
	}
	if logger.t != t {
		t.Error("MockLogger should store testing.T")
	}
	if len(logger.Entries()) != 0 {
		t.Error("MockLogger should start with empty entries")
	}
}

func TestMockLogger_Levels(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message")
	logger.Error(errors.New("boom"), "error message")

	entries := logger.Entries()
	if len(entries) != 4 {
		t.Fatalf("Expected 4 entries, got %d", len(entries))
	}

	want := []string{"DEBUG", "INFO", "WARN", "ERROR"}
	for i, level := range want {
		if entries[i].Level != level {
			t.Errorf("entry %d: level = %s, want %s", i, entries[i].Level, level)
		}
	}
	if len(entries[0].Fields) != 2 {
		t.Errorf("Expected 2 fields, got %d", len(entries[0].Fields))
	}
	if entries[3].Error == nil || entries[3].Error.Error() != "boom" {
		t.Errorf("Error entry should carry the error, got %v", entries[3].Error)
	}
}

func TestMockLogger_With(t *testing.T) {
	logger := NewMockLogger(t)
	child := logger.With("component", "clientx")
	child.Info("hello", "procedure", "/x")

	entries := logger.Entries()
	if len(entries) != 1 {
		t.Fatalf("child should record into parent entries, got %d", len(entries))
	}

	if v, ok := entries[0].Field("component"); !ok || v != "clientx" {
		t.Errorf("component field = %v, %v", v, ok)
	}
	if v, ok := entries[0].Field("procedure"); !ok || v != "/x" {
		t.Errorf("procedure field = %v, %v", v, ok)
	}
	if _, ok := entries[0].Field("missing"); ok {
		t.Error("missing field should not be found")
	}
}

func TestMockLogger_AssertLogged(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Info("rpc completed")
	logger.AssertLogged("INFO", "rpc completed")

	mockT := &recordingTB{}
	logger2 := NewMockLogger(mockT)
	logger2.AssertLogged("INFO", "never")
	if !mockT.failed {
		t.Error("AssertLogged should fail for a missing message")
	}
}

func TestMockLogger_Clear(t *testing.T) {
	logger := NewMockLogger(t)
	logger.Info("one")
	logger.Clear()
	if len(logger.Entries()) != 0 {
		t.Error("Clear should remove all entries")
	}
}

func TestMockLogger_Concurrency(t *testing.T) {
	logger := NewMockLogger(t)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.With("worker", "w").Info("message")
		}()
	}
	wg.Wait()

	if got := len(logger.Entries()); got != 50 {
		t.Errorf("Expected 50 entries, got %d", got)
	}
}

func TestCaptureLogger(t *testing.T) {
	logger := NewCaptureLogger()
	logger.With("service", "monitor").Info("rpc completed", "code", "ok")
	logger.Error(errors.New("boom"), "rpc failed")

	out := logger.String()
	if !strings.Contains(out, "INFO: rpc completed service=monitor code=ok\n") {
		t.Errorf("unexpected output: %q", out)
	}
	if !strings.Contains(out, "ERROR: rpc failed error=boom\n") {
		t.Errorf("unexpected output: %q", out)
	}

	logger.Clear()
	if logger.String() != "" {
		t.Error("Clear should empty the buffer")
	}
}

func TestNewContextWithRequestID(t *testing.T) {
	ctx := NewContextWithRequestID(t, "req-1")
	id, ok := identity.RequestIDFrom(ctx)
	if !ok || id != "req-1" {
		t.Errorf("RequestIDFrom = %q, %v", id, ok)
	}
}

func TestNewContextWithMeta(t *testing.T) {
	ctx := NewContextWithMeta(t, &identity.RequestMeta{RequestID: "req-2", UserAgent: "cli"})
	meta, ok := identity.MetaFrom(ctx)
	if !ok || meta.UserAgent != "cli" {
		t.Errorf("MetaFrom = %+v, %v", meta, ok)
	}

	if _, ok := identity.MetaFrom(NewContextWithMeta(t, nil)); ok {
		t.Error("nil meta should leave the context empty")
	}
}

func TestAssertError(t *testing.T) {
	AssertError(t, connect.NewError(connect.CodeNotFound, errors.New("missing")), coreerrors.CodeNotFound)
	AssertError(t, context.Canceled, coreerrors.CodeCanceled)

	mockT := &recordingTB{}
	AssertError(mockT, coreerrors.New(coreerrors.CodeInternal, "x"), coreerrors.CodeNotFound)
	if !mockT.failed {
		t.Error("AssertError should fail on a code mismatch")
	}
}

func TestAssertNoError(t *testing.T) {
	AssertNoError(t, nil)
}
