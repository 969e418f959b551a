package cli

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Fiszh/7TVPaintsViewer/internal/server"
)

func newServeCmd(opts *globalOptions) *cobra.Command {
	var listen string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the paints page over HTTP",
		Long: `Start an HTTP server that fetches paints and renders the page on every
request. Nothing is cached between requests.

Routes:
  GET /             HTML page
  GET /api/styles   derived styles as JSON
  GET /api/version  build information
  GET /health       liveness check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd, opts)
			if err != nil {
				return err
			}

			addr := a.config.Listen
			if listen != "" {
				addr = listen
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(a.viewer, a.config.ViewerUsers(), a.config.Title, a.logger)
			return srv.ListenAndServe(ctx, addr)
		},
	}

	cmd.Flags().StringVarP(&listen, "listen", "l", "", "listen address (default from config, 127.0.0.1:8080)")
	return cmd
}
