package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hollomarton/naplo/internal/cli/formatter"
)

func newDayCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day [yyyy-mm-dd]",
		Short: "Show one day's journal with totals and rankings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var date *time.Time
			if len(args) == 1 {
				t, err := time.ParseInLocation("2006-01-02", args[0], time.UTC)
				if err != nil {
					return fmt.Errorf("invalid date %q, want yyyy-mm-dd", args[0])
				}
				date = &t
			}

			overview, err := app.Reports.DayOverview(cmd.Context(), date)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDayOverview(overview))
			return nil
		},
	}
}
