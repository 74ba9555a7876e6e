package cli

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	statusreportv1 "github.com/openstatushq/openstatus-go/api/openstatus/statusreport/v1"
)

const reportStatusPrefix = "STATUS_REPORT_STATUS_"

func newReportsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report", "incidents"},
		Short:   "Inspect status reports",
	}
	cmd.AddCommand(
		newReportsListCommand(app),
		newReportsGetCommand(app),
	)
	return cmd
}

func newReportsListCommand(app *App) *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List status reports",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := lf.page(cmd)
			res, err := app.client.StatusReport.ListStatusReports(cmd.Context(), connect.NewRequest(&statusreportv1.ListStatusReportsRequest{
				Limit:  limit,
				Offset: offset,
			}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				rows := make([][]any, 0, len(res.Msg.StatusReports))
				for _, r := range res.Msg.StatusReports {
					rows = append(rows, []any{
						r.ID, r.Title, label(r.Status.String(), reportStatusPrefix),
						orDash(r.PageID), formatTime(r.UpdatedAt),
					})
				}
				return table(w, "No status reports found.", []any{"ID", "Title", "Status", "Page", "Updated"}, rows)
			})
		},
	}
	lf.register(cmd)
	return cmd
}

func newReportsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a status report and its updates",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.StatusReport.GetStatusReport(cmd.Context(), connect.NewRequest(&statusreportv1.GetStatusReportRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				r := res.Msg.StatusReport
				if r == nil {
					_, err := fmt.Fprintln(w, "Status report not returned.")
					return err
				}
				if _, err := fmt.Fprintf(w, "%s [%s]\n", r.Title, label(r.Status.String(), reportStatusPrefix)); err != nil {
					return err
				}
				rows := make([][]any, 0, len(r.Updates))
				for _, u := range r.Updates {
					rows = append(rows, []any{formatTime(u.Date), label(u.Status.String(), reportStatusPrefix), u.Message})
				}
				return table(w, "No updates.", []any{"Date", "Status", "Message"}, rows)
			})
		},
	}
}
