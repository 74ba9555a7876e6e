package cli

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	statuspagev1 "github.com/openstatushq/openstatus-go/api/openstatus/statuspage/v1"
)

const (
	overallStatusPrefix = "OVERALL_STATUS_"
	accessTypePrefix    = "PAGE_ACCESS_TYPE_"
)

func newPagesCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "pages",
		Aliases: []string{"page", "p"},
		Short:   "Inspect status pages",
	}
	cmd.AddCommand(
		newPagesListCommand(app),
		newPagesGetCommand(app),
		newPagesStatusCommand(app),
	)
	return cmd
}

func newPagesListCommand(app *App) *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List status pages",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := lf.page(cmd)
			res, err := app.client.StatusPage.ListStatusPages(cmd.Context(), connect.NewRequest(&statuspagev1.ListStatusPagesRequest{
				Limit:  limit,
				Offset: offset,
			}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				rows := make([][]any, 0, len(res.Msg.StatusPages))
				for _, p := range res.Msg.StatusPages {
					rows = append(rows, []any{
						p.ID, p.Title, p.Slug, orDash(p.CustomDomain),
						yesNo(p.Published), label(p.AccessType.String(), accessTypePrefix),
					})
				}
				return table(w, "No status pages found.", []any{"ID", "Title", "Slug", "Domain", "Published", "Access"}, rows)
			})
		},
	}
	lf.register(cmd)
	return cmd
}

func newPagesGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a status page and its components",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.StatusPage.GetStatusPage(cmd.Context(), connect.NewRequest(&statuspagev1.GetStatusPageRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				p := res.Msg.StatusPage
				if p == nil {
					_, err := fmt.Fprintln(w, "Status page not returned.")
					return err
				}
				if _, err := fmt.Fprintf(w, "%s (%s)\n", p.Title, p.Slug); err != nil {
					return err
				}
				groups := make(map[string]string, len(res.Msg.ComponentGroups))
				for _, g := range res.Msg.ComponentGroups {
					groups[g.ID] = g.Name
				}
				rows := make([][]any, 0, len(res.Msg.Components))
				for _, c := range res.Msg.Components {
					rows = append(rows, []any{
						c.ID, c.Name, label(c.Type.String(), "PAGE_COMPONENT_TYPE_"),
						orDash(c.MonitorID), orDash(groups[c.GroupID]),
					})
				}
				return table(w, "No components.", []any{"ID", "Component", "Type", "Monitor", "Group"}, rows)
			})
		},
	}
}

func newPagesStatusCommand(app *App) *cobra.Command {
	var slug bool
	cmd := &cobra.Command{
		Use:   "status <id|slug>",
		Short: "Show the overall status of a page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var sel statuspagev1.PageSelector
			if slug {
				sel.Slug = args[0]
			} else {
				sel.ID = args[0]
			}
			res, err := app.client.StatusPage.GetOverallStatus(cmd.Context(), connect.NewRequest(&statuspagev1.GetOverallStatusRequest{PageSelector: sel}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				if _, err := fmt.Fprintf(w, "Overall: %s\n", label(res.Msg.OverallStatus.String(), overallStatusPrefix)); err != nil {
					return err
				}
				rows := make([][]any, 0, len(res.Msg.ComponentStatus))
				for _, c := range res.Msg.ComponentStatus {
					rows = append(rows, []any{c.ComponentID, label(c.Status.String(), overallStatusPrefix)})
				}
				return table(w, "No component status reported.", []any{"Component", "Status"}, rows)
			})
		},
	}
	cmd.Flags().BoolVar(&slug, "slug", false, "treat the argument as a page slug")
	return cmd
}
