// Package logx provides a structured logging implementation based on slog.
//
// Overview:
//   - Responsibility: SDK and CLI logging with logfmt, JSON or console output, sorted fields and redaction
//   - Key Types: Logger implementation, Options for configuration
//   - Concurrency Model: All loggers are safe for concurrent use
//   - Error Semantics: No errors returned; write failures are dropped
//
// The API key header and common credential field names are always redacted.
//
// Usage:
//
//	logger := logx.New(logx.WithFormat(logx.FormatConsole), logx.WithLevel(slog.LevelDebug))
//	logger.Info("rpc completed", log.Str("procedure", p))
package logx

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/openstatushq/openstatus-go/core/identity"
	"github.com/openstatushq/openstatus-go/core/log"
	"github.com/openstatushq/openstatus-go/logx/internal"
)

// Format specifies the output format for logs.
type Format string

const (
	// FormatLogfmt outputs logs in logfmt format (key=value pairs).
	FormatLogfmt Format = internal.FormatLogfmt
	// FormatJSON outputs one JSON object per line.
	FormatJSON Format = internal.FormatJSON
	// FormatConsole outputs a human readable block per record.
	FormatConsole Format = internal.FormatConsole
)

// DefaultSensitiveFields are masked by every logger in addition to any
// fields passed through WithSensitiveFields.
var DefaultSensitiveFields = []string{
	"x-openstatus-key",
	"api_key",
	"apikey",
	"authorization",
	"password",
	"token",
}

// Options configures the logger behavior.
type Options struct {
	Format           Format     // Output format: logfmt, json or console
	Level            slog.Level // Minimum log level
	Color            *bool      // Level colorization; nil detects a terminal writer
	Writer           io.Writer  // Output writer (default: os.Stderr)
	SensitiveFields  []string   // Extra field names to mask
	DisableTimestamp bool       // Disable timestamp in output
}

// Logger implements the core/log.Logger interface using slog.
type Logger struct {
	handler *internal.Handler
	attrs   []slog.Attr
}

// New creates a new Logger with the given options.
func New(opts ...Option) log.Logger {
	options := Options{
		Format:           FormatLogfmt,
		Level:            slog.LevelInfo,
		Writer:           os.Stderr,
		DisableTimestamp: true,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Writer == nil {
		options.Writer = os.Stderr
	}

	color := isTerminal(options.Writer)
	if options.Color != nil {
		color = *options.Color
	}
	// JSON output is for machines.
	if options.Format == FormatJSON {
		color = false
	}

	sensitive := append([]string{}, DefaultSensitiveFields...)
	sensitive = append(sensitive, options.SensitiveFields...)

	handler := internal.NewHandler(internal.Options{
		Format:           string(options.Format),
		Level:            options.Level,
		Color:            color,
		Writer:           options.Writer,
		SensitiveFields:  sensitive,
		DisableTimestamp: options.DisableTimestamp,
	}, options.Writer)

	return &Logger{
		handler: handler,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ParseLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatLogfmt, FormatJSON, FormatConsole:
		return f, nil
	case "":
		return FormatLogfmt, nil
	default:
		return FormatLogfmt, fmt.Errorf("unknown log format %q", s)
	}
}

// Option configures logger behavior.
type Option func(*Options)

// WithFormat sets the output format.
func WithFormat(format Format) Option {
	return func(o *Options) {
		o.Format = format
	}
}

// WithLevel sets the minimum log level.
func WithLevel(level slog.Level) Option {
	return func(o *Options) {
		o.Level = level
	}
}

// WithColor forces colorization of the level field on or off.
func WithColor(enabled bool) Option {
	return func(o *Options) {
		o.Color = &enabled
	}
}

// WithWriter sets the output writer.
func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}

// WithTimestamp prefixes each record with the current time.
func WithTimestamp() Option {
	return func(o *Options) {
		o.DisableTimestamp = false
	}
}

// WithSensitiveFields adds field names to mask in logs.
func WithSensitiveFields(fields ...string) Option {
	return func(o *Options) {
		o.SensitiveFields = append(o.SensitiveFields, fields...)
	}
}

// With returns a new Logger with the given key-value pairs attached.
func (l *Logger) With(kv ...any) log.Logger {
	attrs := internal.KVToAttrs(kv)
	newAttrs := append([]slog.Attr{}, l.attrs...)
	newAttrs = append(newAttrs, attrs...)

	return &Logger{
		handler: l.handler,
		attrs:   newAttrs,
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, kv ...any) {
	l.log(slog.LevelDebug, msg, kv...)
}

// Info logs an informational message.
func (l *Logger) Info(msg string, kv ...any) {
	l.log(slog.LevelInfo, msg, kv...)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, kv ...any) {
	l.log(slog.LevelWarn, msg, kv...)
}

// Error logs an error message.
func (l *Logger) Error(err error, msg string, kv ...any) {
	attrs := internal.KVToAttrs(kv)
	if err != nil {
		attrs = append([]slog.Attr{slog.Any("error", err)}, attrs...)
	}
	l.logWithAttrs(slog.LevelError, msg, attrs)
}

func (l *Logger) log(level slog.Level, msg string, kv ...any) {
	l.logWithAttrs(level, msg, internal.KVToAttrs(kv))
}

func (l *Logger) logWithAttrs(level slog.Level, msg string, attrs []slog.Attr) {
	allAttrs := append([]slog.Attr{}, l.attrs...)
	allAttrs = append(allAttrs, attrs...)

	l.handler.LogRecord(level, msg, allAttrs)
}

// Slog returns a *slog.Logger writing through the same handler.
func (l *Logger) Slog() *slog.Logger {
	return slog.New(l.handler.WithAttrs(l.attrs))
}

// FromContext returns base with the request ID carried by ctx attached.
func FromContext(ctx context.Context, base log.Logger) log.Logger {
	if id, ok := identity.RequestIDFrom(ctx); ok {
		return base.With("request_id", id)
	}
	return base
}
