package cli

import (
	"fmt"
	"io"

	"connectrpc.com/connect"
	"github.com/spf13/cobra"

	healthv1 "github.com/openstatushq/openstatus-go/api/openstatus/health/v1"
)

func newHealthCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check that the API is serving",
		Long:  "Check that the API is serving. No API key is needed.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			res, err := app.client.Health.Check(cmd.Context(), connect.NewRequest(&healthv1.CheckRequest{}))
			if err != nil {
				return err
			}
			return app.printer.render(res.Msg, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "API status: %s\n", label(res.Msg.Status.String(), ""))
				return err
			})
		},
	}
}

// listFlags are the paging flags shared by the list commands.
type listFlags struct {
	limit  int32
	offset int32
}

func (l *listFlags) register(cmd *cobra.Command) {
	cmd.Flags().Int32Var(&l.limit, "limit", 0, "maximum number of results, 0 uses the server default")
	cmd.Flags().Int32Var(&l.offset, "offset", 0, "number of results to skip")
}

// page returns the limit and offset to send. Unset flags stay nil so the
// server applies its defaults.
func (l *listFlags) page(cmd *cobra.Command) (limit, offset *int32) {
	if cmd.Flags().Changed("limit") {
		limit = &l.limit
	}
	if cmd.Flags().Changed("offset") {
		offset = &l.offset
	}
	return limit, offset
}
