package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	monitorv1 "github.com/openstatushq/openstatus-go/api/openstatus/monitor/v1"
	"github.com/openstatushq/openstatus-go/codecx"
	"github.com/openstatushq/openstatus-go/core/errors"
)

const (
	monitorStatusPrefix = "MONITOR_STATUS_"
	regionPrefix        = "REGION_"
	periodicityPrefix   = "PERIODICITY_"
)

func newMonitorsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "monitors",
		Aliases: []string{"monitor", "m"},
		Short:   "Manage monitors",
	}
	cmd.AddCommand(
		newMonitorsListCommand(app),
		newMonitorsGetCommand(app),
		newMonitorsTriggerCommand(app),
		newMonitorsDeleteCommand(app),
		newMonitorsStatusCommand(app),
		newMonitorsSummaryCommand(app),
	)
	return cmd
}

func newMonitorsListCommand(app *App) *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the monitors of the workspace",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := lf.page(cmd)
			res, err := app.client.Monitor.ListMonitors(cmd.Context(), connect.NewRequest(&monitorv1.ListMonitorsRequest{
				Limit:  limit,
				Offset: offset,
			}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				return printMonitorList(w, res.Msg)
			})
		},
	}
	lf.register(cmd)
	return cmd
}

func printMonitorList(w io.Writer, m *monitorv1.ListMonitorsResponse) error {
	var rows [][]any
	for _, h := range m.HTTPMonitors {
		rows = append(rows, monitorRow(h.ID, "http", h.Name, h.URL, h.Periodicity, h.Active, h.Status))
	}
	for _, t := range m.TCPMonitors {
		rows = append(rows, monitorRow(t.ID, "tcp", t.Name, t.URI, t.Periodicity, t.Active, t.Status))
	}
	for _, d := range m.DNSMonitors {
		rows = append(rows, monitorRow(d.ID, "dns", d.Name, d.URI, d.Periodicity, d.Active, d.Status))
	}

	if err := table(w, "No monitors found.",
		[]any{"ID", "Kind", "Name", "Target", "Every", "Active", "Status"}, rows); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Total: %d (http %d, tcp %d, dns %d)\n",
		m.TotalSize, len(m.HTTPMonitors), len(m.TCPMonitors), len(m.DNSMonitors))
	return err
}

func monitorRow(id, kind, name, target string, every monitorv1.Periodicity, active bool, status monitorv1.MonitorStatus) []any {
	return []any{id, kind, name, orDash(target), label(every.String(), periodicityPrefix), yesNo(active), label(status.String(), monitorStatusPrefix)}
}

func newMonitorsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Monitor.GetMonitor(cmd.Context(), connect.NewRequest(&monitorv1.GetMonitorRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				return printMonitor(w, res.Msg.Monitor)
			})
		},
	}
}

func printMonitor(w io.Writer, m *monitorv1.MonitorConfig) error {
	var rows [][]any
	add := func(k, v string) { rows = append(rows, []any{k, v}) }

	switch m.Kind() {
	case "http":
		h := m.HTTP
		add("ID", h.ID)
		add("Kind", "http")
		add("Name", h.Name)
		add("URL", h.URL)
		add("Method", label(h.Method.String(), "HTTP_METHOD_"))
		add("Every", label(h.Periodicity.String(), periodicityPrefix))
		add("Timeout", strconv.FormatInt(int64(h.Timeout), 10)+"ms")
		add("Active", yesNo(h.Active))
		add("Public", yesNo(h.Public))
		add("Regions", regions(h.Regions))
		add("Status", label(h.Status.String(), monitorStatusPrefix))
	case "tcp":
		t := m.TCP
		add("ID", t.ID)
		add("Kind", "tcp")
		add("Name", t.Name)
		add("URI", t.URI)
		add("Every", label(t.Periodicity.String(), periodicityPrefix))
		add("Timeout", strconv.FormatInt(int64(t.Timeout), 10)+"ms")
		add("Active", yesNo(t.Active))
		add("Public", yesNo(t.Public))
		add("Regions", regions(t.Regions))
		add("Status", label(t.Status.String(), monitorStatusPrefix))
	case "dns":
		d := m.DNS
		add("ID", d.ID)
		add("Kind", "dns")
		add("Name", d.Name)
		add("URI", d.URI)
		add("Every", label(d.Periodicity.String(), periodicityPrefix))
		add("Timeout", strconv.FormatInt(int64(d.Timeout), 10)+"ms")
		add("Active", yesNo(d.Active))
		add("Public", yesNo(d.Public))
		add("Regions", regions(d.Regions))
		add("Records", strconv.Itoa(len(d.RecordAssertions))+" assertions")
		add("Status", label(d.Status.String(), monitorStatusPrefix))
	default:
		_, err := fmt.Fprintln(w, "Monitor has no configuration.")
		return err
	}
	return table(w, "", []any{"Field", "Value"}, rows)
}

func regions(rs []monitorv1.Region) string {
	if len(rs) == 0 {
		return notAvailable
	}
	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, label(r.String(), regionPrefix))
	}
	return strings.Join(names, ", ")
}

func newMonitorsTriggerCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "trigger <id>",
		Short: "Run a monitor now",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Monitor.TriggerMonitor(cmd.Context(), connect.NewRequest(&monitorv1.TriggerMonitorRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				return printOutcome(w, res.Msg.Success, "Monitor "+args[0]+" triggered.", "Monitor "+args[0]+" was not triggered.")
			})
		},
	}
}

func newMonitorsDeleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Monitor.DeleteMonitor(cmd.Context(), connect.NewRequest(&monitorv1.DeleteMonitorRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				return printOutcome(w, res.Msg.Success, "Monitor "+args[0]+" deleted.", "Monitor "+args[0]+" was not deleted.")
			})
		},
	}
}

func printOutcome(w io.Writer, ok bool, success, failure string) error {
	msg := failure
	if ok {
		msg = success
	}
	_, err := fmt.Fprintln(w, msg)
	return err
}

func newMonitorsStatusCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "status <id>",
		Short: "Show the per-region status of a monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Monitor.GetMonitorStatus(cmd.Context(), connect.NewRequest(&monitorv1.GetMonitorStatusRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				rows := make([][]any, 0, len(res.Msg.Regions))
				for _, r := range res.Msg.Regions {
					rows = append(rows, []any{label(r.Region.String(), regionPrefix), label(r.Status.String(), monitorStatusPrefix)})
				}
				return table(w, "No region status reported.", []any{"Region", "Status"}, rows)
			})
		},
	}
}

var timeRanges = map[string]monitorv1.TimeRange{
	"1d":  monitorv1.TimeRange1D,
	"7d":  monitorv1.TimeRange7D,
	"14d": monitorv1.TimeRange14D,
}

func newMonitorsSummaryCommand(app *App) *cobra.Command {
	var timeRange string
	cmd := &cobra.Command{
		Use:   "summary <id>",
		Short: "Show aggregated results of a monitor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tr, ok := timeRanges[strings.ToLower(timeRange)]
			if !ok {
				return errors.New(errors.CodeInvalidArgument, fmt.Sprintf("invalid range %q: use 1d, 7d or 14d", timeRange))
			}
			res, err := app.client.Monitor.GetMonitorSummary(cmd.Context(), connect.NewRequest(&monitorv1.GetMonitorSummaryRequest{
				ID:        args[0],
				TimeRange: tr,
			}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				s := res.Msg.Summary
				if s == nil {
					_, err := fmt.Fprintln(w, "No results in range.")
					return err
				}
				ms := func(v codecx.Int64) string { return strconv.FormatInt(int64(v), 10) + "ms" }
				return table(w, "", []any{"Field", "Value"}, [][]any{
					{"Last ping", formatTime(s.LastPingAt)},
					{"Successful", strconv.FormatInt(int64(s.TotalSuccessful), 10)},
					{"Degraded", strconv.FormatInt(int64(s.TotalDegraded), 10)},
					{"Failed", strconv.FormatInt(int64(s.TotalFailed), 10)},
					{"p50", ms(s.P50)},
					{"p75", ms(s.P75)},
					{"p90", ms(s.P90)},
					{"p95", ms(s.P95)},
					{"p99", ms(s.P99)},
				})
			})
		},
	}
	cmd.Flags().StringVar(&timeRange, "range", "1d", "time range: 1d, 7d or 14d")
	return cmd
}
