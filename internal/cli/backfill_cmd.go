package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hollomarton/naplo/internal/cli/formatter"
)

func newBackfillParamsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "backfill-params",
		Short: "Register label values found on historical entries",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Params.Backfill(cmd.Context())
			if err != nil {
				return fmt.Errorf("backfilling params: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatBackfillResult(res))
			return nil
		},
	}
}
