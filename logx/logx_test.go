package logx

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstatushq/openstatus-go/core/identity"
	"github.com/openstatushq/openstatus-go/core/log"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithColor(false))

	logger.Info("test message", "key", "value")

	assert.Equal(t, `level=INFO msg="test message" key="value"`+"\n", buf.String())
}

func TestFieldSorting(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithColor(false))

	logger.Info("test", "zebra", "z", "alpha", "a", "beta", "b")

	output := buf.String()
	alphaPos := strings.Index(output, `alpha="a"`)
	betaPos := strings.Index(output, `beta="b"`)
	zebraPos := strings.Index(output, `zebra="z"`)

	require.True(t, alphaPos >= 0 && betaPos >= 0 && zebraPos >= 0, output)
	assert.Less(t, alphaPos, betaPos)
	assert.Less(t, betaPos, zebraPos)
}

func TestColor(t *testing.T) {
	var buf bytes.Buffer
	New(WithWriter(&buf), WithColor(true)).Info("test")
	assert.Contains(t, buf.String(), "\033[36mINFO\033[0m")

	// A bytes.Buffer is never a terminal.
	buf.Reset()
	New(WithWriter(&buf)).Info("test")
	assert.NotContains(t, buf.String(), "\033[")

	buf.Reset()
	New(WithWriter(&buf), WithFormat(FormatJSON), WithColor(true)).Info("test")
	assert.NotContains(t, buf.String(), "\033[")
}

func TestCoreLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithColor(false))

	logger.Info("rpc completed",
		log.Str("procedure", "/openstatus.monitor.v1.MonitorService/ListMonitors"),
		log.Int("attempt", 1),
		log.Dur("duration", 250*time.Millisecond),
		log.Bool("ok", true),
	)

	assert.Equal(t,
		`level=INFO msg="rpc completed" attempt=1 duration=250 ok=true procedure="/openstatus.monitor.v1.MonitorService/ListMonitors"`+"\n",
		buf.String())
}

func TestRedaction(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithColor(false), WithSensitiveFields("secret"))

	logger.Info("request", "x-openstatus-key", "abc123", "Authorization", "Bearer abc123", "secret", "s3cr3t", "procedure", "/p")

	output := buf.String()
	assert.NotContains(t, output, "abc123")
	assert.NotContains(t, output, "s3cr3t")
	assert.Contains(t, output, `x-openstatus-key="***REDACTED***"`)
	assert.Contains(t, output, `procedure="/p"`)
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithColor(false), WithLevel(slog.LevelWarn))

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error(errors.New("boom"), "error")

	output := buf.String()
	assert.NotContains(t, output, `msg="debug"`)
	assert.NotContains(t, output, `msg="info"`)
	assert.Contains(t, output, `level=WARN msg="warn"`)
	assert.Contains(t, output, `level=ERROR msg="error" error="boom"`)
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	base := New(WithWriter(&buf), WithColor(false))
	child := base.With("service", "monitor")

	child.Info("first")
	base.Info("second")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `service="monitor"`)
	assert.NotContains(t, lines[1], "service")
}

func TestFormats(t *testing.T) {
	var buf bytes.Buffer

	New(WithWriter(&buf), WithFormat(FormatJSON)).Info("hello", "n", 1)
	assert.Equal(t, `{"level":"INFO","msg":"hello","n":1}`+"\n", buf.String())

	buf.Reset()
	New(WithWriter(&buf), WithFormat(FormatConsole), WithColor(false)).Info("hello", "n", 1)
	assert.Equal(t, "INFO  hello\n        n: 1\n", buf.String())

	buf.Reset()
	New(WithWriter(&buf), WithTimestamp(), WithColor(false)).Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "time="))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatLogfmt, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestSlog(t *testing.T) {
	var buf bytes.Buffer
	logger := New(WithWriter(&buf), WithColor(false)).With("component", "cli").(*Logger)

	logger.Slog().Warn("via slog", "k", "v")

	assert.Equal(t, `level=WARN msg="via slog" component="cli" k="v"`+"\n", buf.String())
}

func TestFromContext(t *testing.T) {
	var buf bytes.Buffer
	base := New(WithWriter(&buf), WithColor(false))

	ctx := identity.WithRequestID(context.Background(), "req-abc")
	FromContext(ctx, base).Info("test message")
	assert.Contains(t, buf.String(), `request_id="req-abc"`)

	assert.Same(t, base, FromContext(context.Background(), base))
}

func BenchmarkLogger(b *testing.B) {
	logger := New(WithWriter(&bytes.Buffer{}), WithColor(false))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark", "iteration", i)
	}
}
