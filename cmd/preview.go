package cmd

import (
	"context"
	"io"
	"log"
	"time"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/preview"
)

func previewCmd() *cobra.Command {
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Play the hero animation in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			// Log lines would tear the alt screen.
			log.SetOutput(io.Discard)

			ctx := cmd.Context()
			if duration > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, duration)
				defer cancel()
			}
			return preview.Run(ctx, cfg.HeroConfig())
		},
	}

	cmd.Flags().DurationVarP(&duration, "duration", "d", 0, "Stop after this long (0 runs until q)")
	return cmd
}
