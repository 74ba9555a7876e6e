package testingx

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/openstatushq/openstatus-go/core/log"
)

// LogEntry is one recorded log call with its fields flattened into
// alternating keys and values.
type LogEntry struct {
	Level   string
	Message string
	Fields  []any
	Error   error
}

// Field returns the value logged under key and whether it was present.
func (e LogEntry) Field(key string) (any, bool) {
	for i := 0; i+1 < len(e.Fields); i += 2 {
		if k, ok := e.Fields[i].(string); ok && k == key {
			return e.Fields[i+1], true
		}
	}
	return nil, false
}

// String renders e as "LEVEL: msg error=... k=v".
func (e LogEntry) String() string {
	var b strings.Builder
	b.WriteString(e.Level)
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Error != nil {
		b.WriteString(" error=")
		b.WriteString(e.Error.Error())
	}
	for i := 0; i+1 < len(e.Fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", e.Fields[i], e.Fields[i+1])
	}
	return b.String()
}

// journal is shared by a logger and every logger derived from it by With.
type journal struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (j *journal) snapshot() []LogEntry {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]LogEntry(nil), j.entries...)
}

func (j *journal) reset() {
	j.mu.Lock()
	j.entries = nil
	j.mu.Unlock()
}

// recorder implements log.Logger on top of a journal.
type recorder struct {
	journal *journal
	fields  []any
}

func newRecorder() recorder {
	return recorder{journal: &journal{}}
}

func (r recorder) with(kv []any) recorder {
	return recorder{journal: r.journal, fields: append(append([]any(nil), r.fields...), flatten(kv)...)}
}

func (r recorder) record(level, msg string, err error, kv []any) {
	e := LogEntry{
		Level:   level,
		Message: msg,
		Fields:  append(append([]any(nil), r.fields...), flatten(kv)...),
		Error:   err,
	}
	r.journal.mu.Lock()
	r.journal.entries = append(r.journal.entries, e)
	r.journal.mu.Unlock()
}

func (r recorder) Debug(msg string, kv ...any)            { r.record("DEBUG", msg, nil, kv) }
func (r recorder) Info(msg string, kv ...any)             { r.record("INFO", msg, nil, kv) }
func (r recorder) Warn(msg string, kv ...any)             { r.record("WARN", msg, nil, kv) }
func (r recorder) Error(err error, msg string, kv ...any) { r.record("ERROR", msg, err, kv) }

// flatten expands the []any pairs built by log.Str and friends.
func flatten(kv []any) []any {
	out := make([]any, 0, len(kv))
	for _, v := range kv {
		if pair, ok := v.([]any); ok {
			out = append(out, pair...)
			continue
		}
		out = append(out, v)
	}
	return out
}

// MockLogger records entries for assertions. Safe for concurrent use.
type MockLogger struct {
	recorder
	t testing.TB
}

var _ log.Logger = (*MockLogger)(nil)

// NewMockLogger returns an empty MockLogger reporting failures to t.
func NewMockLogger(t testing.TB) *MockLogger {
	return &MockLogger{recorder: newRecorder(), t: t}
}

// With returns a logger that records into the same entries with kv
// prepended to every entry's fields.
func (m *MockLogger) With(kv ...any) log.Logger {
	return &MockLogger{recorder: m.with(kv), t: m.t}
}

// Entries returns a copy of the recorded entries.
func (m *MockLogger) Entries() []LogEntry {
	return m.journal.snapshot()
}

// AssertLogged fails the test unless an entry with level and msg exists.
func (m *MockLogger) AssertLogged(level, msg string) {
	m.t.Helper()
	for _, e := range m.Entries() {
		if e.Level == level && e.Message == msg {
			return
		}
	}
	m.t.Errorf("no log entry level=%s msg=%q", level, msg)
}

// Clear drops the recorded entries.
func (m *MockLogger) Clear() {
	m.journal.reset()
}

// CaptureLogger renders every entry as one text line.
type CaptureLogger struct {
	recorder
}

var _ log.Logger = (*CaptureLogger)(nil)

// NewCaptureLogger returns an empty CaptureLogger.
func NewCaptureLogger() *CaptureLogger {
	return &CaptureLogger{recorder: newRecorder()}
}

// With returns a logger writing to the same output with kv attached.
func (c *CaptureLogger) With(kv ...any) log.Logger {
	return &CaptureLogger{recorder: c.with(kv)}
}

// String returns the captured lines, each ending in a newline.
func (c *CaptureLogger) String() string {
	var b strings.Builder
	for _, e := range c.journal.snapshot() {
		b.WriteString(e.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Clear drops the captured output.
func (c *CaptureLogger) Clear() {
	c.journal.reset()
}
