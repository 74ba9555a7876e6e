// Package internal provides internal implementation details for logx.
package internal

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	json "github.com/goccy/go-json"
)

// Output formats understood by Handler.
const (
	FormatLogfmt  = "logfmt"
	FormatJSON    = "json"
	FormatConsole = "console"
)

const redacted = "***REDACTED***"

// Options configures the logger behavior.
type Options struct {
	Format           string     // Output format: logfmt, json or console
	Level            slog.Level // Minimum log level
	Color            bool       // Enable colorization for level field only
	Writer           io.Writer  // Output writer (default: os.Stderr)
	SensitiveFields  []string   // Field names to mask (e.g., "x-openstatus-key", "token")
	DisableTimestamp bool       // Disable timestamp in output
}

// Handler is a slog.Handler writing one record per line with sorted fields.
type Handler struct {
	opts   Options
	mu     *sync.Mutex
	writer io.Writer
	attrs  []slog.Attr
	group  string
}

// NewHandler creates a new Handler with the given options.
func NewHandler(opts Options, writer io.Writer) *Handler {
	return &Handler{
		opts:   opts,
		mu:     &sync.Mutex{},
		writer: writer,
	}
}

func (h *Handler) handle(level slog.Level, msg string, attrs []slog.Attr) {
	if level < h.opts.Level {
		return
	}

	allAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	allAttrs = append(allAttrs, h.attrs...)
	allAttrs = append(allAttrs, attrs...)
	if h.group != "" {
		for i := range allAttrs {
			allAttrs[i].Key = h.group + "." + allAttrs[i].Key
		}
	}
	sorted := SortAttrs(allAttrs)

	var buf bytes.Buffer
	switch h.opts.Format {
	case FormatJSON:
		h.writeJSON(&buf, level, msg, sorted)
	case FormatConsole:
		h.writeConsole(&buf, level, msg, sorted)
	default:
		h.writeLogfmt(&buf, level, msg, sorted)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	_, _ = h.writer.Write(buf.Bytes())
}

func (h *Handler) writeLogfmt(buf *bytes.Buffer, level slog.Level, msg string, attrs []slog.Attr) {
	if !h.opts.DisableTimestamp {
		buf.WriteString("time=")
		buf.WriteString(time.Now().Format(time.RFC3339))
		buf.WriteString(" ")
	}

	levelStr := LevelString(level)
	buf.WriteString("level=")
	if h.opts.Color {
		buf.WriteString(ColorizeLevel(levelStr))
	} else {
		buf.WriteString(levelStr)
	}

	buf.WriteString(" msg=")
	buf.WriteString(strconv.Quote(msg))

	for _, attr := range attrs {
		buf.WriteString(" ")
		buf.WriteString(attr.Key)
		buf.WriteString("=")
		buf.WriteString(FormatValue(attr.Key, attr.Value, h.opts))
	}
	buf.WriteString("\n")
}

// writeConsole prints the level and message on one line and every attribute
// indented on its own line below.
func (h *Handler) writeConsole(buf *bytes.Buffer, level slog.Level, msg string, attrs []slog.Attr) {
	if !h.opts.DisableTimestamp {
		buf.WriteString(time.Now().Format("15:04:05"))
		buf.WriteString(" ")
	}

	levelStr := fmt.Sprintf("%-5s", LevelString(level))
	if h.opts.Color {
		levelStr = ColorizeLevel(LevelString(level)) + strings.Repeat(" ", len(levelStr)-len(LevelString(level)))
	}
	buf.WriteString(levelStr)
	buf.WriteString(" ")
	buf.WriteString(msg)
	buf.WriteString("\n")

	for _, attr := range attrs {
		buf.WriteString("        ")
		buf.WriteString(attr.Key)
		buf.WriteString(": ")
		buf.WriteString(FormatConsoleValue(attr.Key, attr.Value, h.opts))
		buf.WriteString("\n")
	}
}

func (h *Handler) writeJSON(buf *bytes.Buffer, level slog.Level, msg string, attrs []slog.Attr) {
	buf.WriteString("{")
	if !h.opts.DisableTimestamp {
		buf.WriteString(`"time":`)
		writeJSONValue(buf, time.Now().Format(time.RFC3339))
		buf.WriteString(",")
	}
	buf.WriteString(`"level":`)
	writeJSONValue(buf, LevelString(level))
	buf.WriteString(`,"msg":`)
	writeJSONValue(buf, msg)

	for _, attr := range attrs {
		buf.WriteString(",")
		writeJSONValue(buf, attr.Key)
		buf.WriteString(":")
		writeJSONValue(buf, JSONValue(attr.Key, attr.Value, h.opts))
	}
	buf.WriteString("}\n")
}

func writeJSONValue(buf *bytes.Buffer, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		data, _ = json.Marshal(fmt.Sprint(v))
	}
	buf.Write(data)
}

// LogRecord writes a log record (public method for logx package).
func (h *Handler) LogRecord(level slog.Level, msg string, attrs []slog.Attr) {
	h.handle(level, msg, attrs)
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

// Handle implements slog.Handler.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	attrs := make([]slog.Attr, 0, r.NumAttrs())
	r.Attrs(func(a slog.Attr) bool {
		attrs = append(attrs, a)
		return true
	})
	h.handle(r.Level, r.Message, attrs)
	return nil
}

// WithAttrs returns a new Handler with the given attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := append([]slog.Attr{}, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	return &Handler{
		opts:   h.opts,
		mu:     h.mu,
		writer: h.writer,
		attrs:  newAttrs,
		group:  h.group,
	}
}

// WithGroup returns a new Handler whose attribute keys are prefixed with name.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{
		opts:   h.opts,
		mu:     h.mu,
		writer: h.writer,
		attrs:  h.attrs,
		group:  name,
	}
}

// KVToAttrs converts key-value pairs to slog.Attr slice. Pairs built by
// core/log helpers arrive as two-element []any values.
func KVToAttrs(kv []any) []slog.Attr {
	flat := make([]any, 0, len(kv))
	for _, item := range kv {
		if v, ok := item.([]any); ok && len(v) == 2 {
			flat = append(flat, v[0], v[1])
			continue
		}
		flat = append(flat, item)
	}

	// A trailing key without a value is dropped.
	attrs := make([]slog.Attr, 0, len(flat)/2)
	for i := 0; i < len(flat)-1; i += 2 {
		attrs = append(attrs, slog.Any(fmt.Sprintf("%v", flat[i]), flat[i+1]))
	}
	return attrs
}

// SortAttrs sorts attributes by key.
func SortAttrs(attrs []slog.Attr) []slog.Attr {
	sorted := make([]slog.Attr, len(attrs))
	copy(sorted, attrs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Key < sorted[j].Key
	})
	return sorted
}

// IsSensitive reports whether key names a masked field.
func IsSensitive(key string, opts Options) bool {
	for _, field := range opts.SensitiveFields {
		if strings.EqualFold(key, field) {
			return true
		}
	}
	return false
}

func formatFloat(f float64) string {
	if f == float64(int64(f)) {
		return fmt.Sprintf("%.0f", f)
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", f), "0"), ".")
}

// FormatValue formats a slog.Value for logfmt output.
func FormatValue(key string, v slog.Value, opts Options) string {
	if IsSensitive(key, opts) {
		return strconv.Quote(redacted)
	}

	switch v.Kind() {
	case slog.KindString:
		return strconv.Quote(v.String())
	case slog.KindInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case slog.KindUint64:
		return strconv.FormatUint(v.Uint64(), 10)
	case slog.KindFloat64:
		return formatFloat(v.Float64())
	case slog.KindBool:
		return strconv.FormatBool(v.Bool())
	case slog.KindDuration:
		// Milliseconds.
		return strconv.FormatInt(v.Duration().Milliseconds(), 10)
	case slog.KindTime:
		return strconv.Quote(v.Time().Format(time.RFC3339))
	default:
		return strconv.Quote(v.String())
	}
}

// FormatConsoleValue formats a slog.Value for the console format. Values are
// unquoted and durations keep their unit.
func FormatConsoleValue(key string, v slog.Value, opts Options) string {
	if IsSensitive(key, opts) {
		return redacted
	}

	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindFloat64:
		return formatFloat(v.Float64())
	case slog.KindDuration:
		return v.Duration().String()
	case slog.KindTime:
		return v.Time().Format("2006-01-02 15:04:05")
	default:
		return v.String()
	}
}

// JSONValue converts a slog.Value into a value suitable for JSON encoding.
// Durations are milliseconds and errors their message.
func JSONValue(key string, v slog.Value, opts Options) any {
	if IsSensitive(key, opts) {
		return redacted
	}

	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindInt64:
		return v.Int64()
	case slog.KindUint64:
		return v.Uint64()
	case slog.KindFloat64:
		return v.Float64()
	case slog.KindBool:
		return v.Bool()
	case slog.KindDuration:
		return v.Duration().Milliseconds()
	case slog.KindTime:
		return v.Time().Format(time.RFC3339)
	default:
		switch a := v.Any().(type) {
		case error:
			return a.Error()
		case fmt.Stringer:
			return a.String()
		default:
			return a
		}
	}
}

// LevelString returns the string representation of a log level.
func LevelString(level slog.Level) string {
	switch level {
	case slog.LevelDebug:
		return "DEBUG"
	case slog.LevelInfo:
		return "INFO"
	case slog.LevelWarn:
		return "WARN"
	case slog.LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", level)
	}
}

// ColorizeLevel adds ANSI color codes to the level value only.
func ColorizeLevel(level string) string {
	const (
		reset   = "\033[0m"
		red     = "\033[31m"
		yellow  = "\033[33m"
		cyan    = "\033[36m"
		magenta = "\033[35m"
	)

	switch level {
	case "DEBUG":
		return magenta + level + reset
	case "INFO":
		return cyan + level + reset
	case "WARN":
		return yellow + level + reset
	case "ERROR":
		return red + level + reset
	default:
		return level
	}
}
