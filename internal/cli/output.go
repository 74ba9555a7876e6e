package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/openstatushq/openstatus-go/core/errors"
)

// Output formats.
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

const notAvailable = "-"

// printer renders command results in the configured format.
type printer struct {
	w      io.Writer
	format string
}

func newPrinter(w io.Writer, format string) *printer {
	if format == "" {
		format = OutputTable
	}
	return &printer{w: w, format: format}
}

// render writes v as JSON or YAML. For the table format it calls human
// instead, which writes to the same writer.
func (p *printer) render(v any, human func(w io.Writer) error) error {
	switch p.format {
	case OutputJSON:
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return errors.Wrapf(errors.CodeInternal, "", err, "encoding JSON")
		}
		_, err = fmt.Fprintln(p.w, string(data))
		return err
	case OutputYAML:
		// Go through JSON so that field and enum names match the API.
		data, err := json.Marshal(v)
		if err != nil {
			return errors.Wrapf(errors.CodeInternal, "", err, "encoding YAML")
		}
		var doc any
		if err := json.Unmarshal(data, &doc); err != nil {
			return errors.Wrapf(errors.CodeInternal, "", err, "encoding YAML")
		}
		enc := yaml.NewEncoder(p.w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrapf(errors.CodeInternal, "", err, "encoding YAML")
		}
		return enc.Close()
	default:
		return human(p.w)
	}
}

// table renders rows under header. With no rows it prints empty instead.
func table(w io.Writer, empty string, header []any, rows [][]any) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, empty)
		return err
	}
	t := tablewriter.NewWriter(w)
	t.Header(header...)
	for _, row := range rows {
		if err := t.Append(row...); err != nil {
			return err
		}
	}
	return t.Render()
}

// label turns an API enum name such as MONITOR_STATUS_ACTIVE into "active".
func label(name, prefix string) string {
	name = strings.TrimPrefix(name, prefix)
	if name == "" || name == "UNSPECIFIED" {
		return notAvailable
	}
	return strings.ToLower(strings.ReplaceAll(name, "_", " "))
}

func formatTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return notAvailable
	}
	return t.Local().Format("2006-01-02 15:04")
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}
