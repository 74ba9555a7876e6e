package cli

import (
	"fmt"
	"io"
	"time"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	maintenancev1 "github.com/openstatushq/openstatus-go/api/openstatus/maintenance/v1"
)

func newMaintenancesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "maintenances",
		Aliases: []string{"maintenance"},
		Short:   "Inspect scheduled maintenance windows",
	}
	cmd.AddCommand(
		newMaintenancesListCommand(app),
		newMaintenancesGetCommand(app),
	)
	return cmd
}

func newMaintenancesListCommand(app *App) *cobra.Command {
	var (
		lf     listFlags
		pageID string
	)
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List maintenance windows",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := lf.page(cmd)
			req := &maintenancev1.ListMaintenancesRequest{Limit: limit, Offset: offset}
			if pageID != "" {
				req.PageID = &pageID
			}
			res, err := app.client.Maintenance.ListMaintenances(cmd.Context(), connect.NewRequest(req))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				now := time.Now()
				rows := make([][]any, 0, len(res.Msg.Maintenances))
				for _, m := range res.Msg.Maintenances {
					rows = append(rows, []any{
						m.ID, m.Title, formatTime(m.From), formatTime(m.To),
						orDash(m.PageID), yesNo(m.Active(now)),
					})
				}
				return table(w, "No maintenance windows found.", []any{"ID", "Title", "From", "To", "Page", "Active"}, rows)
			})
		},
	}
	lf.register(cmd)
	cmd.Flags().StringVar(&pageID, "page", "", "only windows of this status page")
	return cmd
}

func newMaintenancesGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one maintenance window",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Maintenance.GetMaintenance(cmd.Context(), connect.NewRequest(&maintenancev1.GetMaintenanceRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				m := res.Msg.Maintenance
				if m == nil {
					_, err := fmt.Fprintln(w, "Maintenance not returned.")
					return err
				}
				return table(w, "", []any{"Field", "Value"}, [][]any{
					{"ID", m.ID},
					{"Title", m.Title},
					{"Message", orDash(m.Message)},
					{"From", formatTime(m.From)},
					{"To", formatTime(m.To)},
					{"Page", orDash(m.PageID)},
					{"Active", yesNo(m.Active(time.Now()))},
				})
			})
		},
	}
}
