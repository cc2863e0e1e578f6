package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sherine-k/schedsim/pkg/api"
	"github.com/sherine-k/schedsim/pkg/config"
	"github.com/sherine-k/schedsim/pkg/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the simulator over HTTP",
	Long: `Serve the simulator over HTTP.

  GET  /api/v1/algorithms
  POST /api/v1/schedule/{sjn|npp|rr|srt}
  POST /api/v1/compare`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		app := api.NewApp(api.NewHandler(settings.Quantum, settings.MaxHorizon, logger))
		logger.Info("listening",
			log.StringAttr("addr", settings.Listen),
			log.IntAttr("max_horizon", settings.MaxHorizon),
		)
		cmd.Printf("schedsim API listening on %s\n", settings.Listen)
		return api.Serve(ctx, app, settings.Listen)
	},
}

func init() {
	serveCmd.Flags().String("listen", ":9095", "Address to listen on")
	serveCmd.Flags().Int("max-horizon", config.DefaultMaxHorizon, "Reject workloads whose latest arrival plus total burst exceeds this (0 disables)")
}
