package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/hero"
	"github.com/Zachkp/portfolio/internal/metrics"
	"github.com/Zachkp/portfolio/internal/realtime"
	"github.com/Zachkp/portfolio/internal/server"
)

// streamBuffer is how many frames a slow stream client may fall behind.
const streamBuffer = 16

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if cfg.Mode != "" {
				gin.SetMode(cfg.Mode)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return serve(ctx, cfg)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "Port to listen on (overrides PORT)")
	return cmd
}

func serve(ctx context.Context, cfg *config.Config) error {
	reg := metrics.NewRegistry()
	hub := realtime.NewBroadcaster[hero.Frame](streamBuffer)

	runner, err := hero.Run(ctx, cfg.HeroConfig(), func(f hero.Frame) {
		dropped := hub.Publish(f)
		reg.RecordFrame(len(f.Active), f.PhraseIndex, dropped)
	})
	if err != nil {
		return err
	}
	defer runner.Close()

	srv, err := server.New(cfg, runner, hub, reg)
	if err != nil {
		return err
	}
	return srv.Run(ctx)
}
