// Package cmd is the portfolio command line.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/ui"
)

var version = "0.3.0"

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "portfolio site with an animated neural-network hero",
	Long: ui.Brand.Sprint("portfolio") + " serves the personal site and its hero animation\n" +
		ui.Subtle.Sprint("Run `portfolio serve` to start the site"),
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("portfolio {{ .Version }}\n")
	rootCmd.AddCommand(
		serveCmd(),
		layoutCmd(),
		previewCmd(),
	)
}

// Execute runs the root command and reports a failure in red.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		ui.Bad.Fprintf(rootCmd.ErrOrStderr(), "portfolio: %v\n", err)
	}
	return err
}
