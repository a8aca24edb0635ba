// Package cli implements the naplo command line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/hollomarton/naplo/internal/config"
	"github.com/hollomarton/naplo/internal/service"
)

// App holds references to the service interfaces used by CLI commands.
type App struct {
	Entries service.EntryService
	Reports service.ReportService
	Search  service.SearchService
	Params  service.ParamService
	Import  service.ImportService

	Config config.Config
}

// NewRootCmd creates the top-level "naplo" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "naplo",
		Short:         "Personal time and activity journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCmd(app),
		newImportCmd(app),
		newBackfillParamsCmd(app),
		newDayCmd(app),
	)

	return root
}
