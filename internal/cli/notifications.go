package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	notificationv1 "github.com/openstatushq/openstatus-go/api/openstatus/notification/v1"
)

const providerPrefix = "NOTIFICATION_PROVIDER_"

func newNotificationsCommand(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notification", "n"},
		Short:   "Inspect notification channels",
	}
	cmd.AddCommand(
		newNotificationsListCommand(app),
		newNotificationsGetCommand(app),
		newNotificationsLimitCommand(app),
	)
	return cmd
}

func newNotificationsListCommand(app *App) *cobra.Command {
	var lf listFlags
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List notification channels",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, offset := lf.page(cmd)
			res, err := app.client.Notification.ListNotifications(cmd.Context(), connect.NewRequest(&notificationv1.ListNotificationsRequest{
				Limit:  limit,
				Offset: offset,
			}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				rows := make([][]any, 0, len(res.Msg.Notifications))
				for _, n := range res.Msg.Notifications {
					rows = append(rows, []any{
						n.ID, n.Name, label(n.Provider.String(), providerPrefix),
						strconv.Itoa(int(n.MonitorCount)), formatTime(n.CreatedAt),
					})
				}
				return table(w, "No notifications found.", []any{"ID", "Name", "Provider", "Monitors", "Created"}, rows)
			})
		},
	}
	lf.register(cmd)
	return cmd
}

func newNotificationsGetCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one notification channel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.client.Notification.GetNotification(cmd.Context(), connect.NewRequest(&notificationv1.GetNotificationRequest{ID: args[0]}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				n := res.Msg.Notification
				if n == nil {
					_, err := fmt.Fprintln(w, "Notification not returned.")
					return err
				}
				monitors := notAvailable
				if len(n.MonitorIDs) > 0 {
					monitors = strings.Join(n.MonitorIDs, ", ")
				}
				return table(w, "", []any{"Field", "Value"}, [][]any{
					{"ID", n.ID},
					{"Name", n.Name},
					{"Provider", label(n.Provider.String(), providerPrefix)},
					{"Monitors", monitors},
					{"Created", formatTime(n.CreatedAt)},
					{"Updated", formatTime(n.UpdatedAt)},
				})
			})
		},
	}
}

func newNotificationsLimitCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "limit",
		Short: "Show how many notification channels the plan allows",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.client.Notification.CheckNotificationLimit(cmd.Context(), connect.NewRequest(&notificationv1.CheckNotificationLimitRequest{}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				m := res.Msg
				suffix := ""
				if m.LimitReached {
					suffix = " (limit reached)"
				}
				_, err := fmt.Fprintf(w, "Notifications: %d of %d%s\n", m.CurrentCount, m.MaxCount, suffix)
				return err
			})
		},
	}
}
