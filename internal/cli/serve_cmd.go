package cli

import (
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/hollomarton/naplo/internal/httpapi"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the journal HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			srv := httpapi.NewServer(app.Entries, app.Reports, app.Search, app.Params, log.Default())

			log.Printf("listening on %s", addr)
			return http.ListenAndServe(addr, srv.Handler())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.Config.Addr, "Listen address")

	return cmd
}
