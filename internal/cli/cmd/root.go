// Package cmd provides Cobra CLI commands for favicache.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/bnema/favicache/internal/cli"
	"github.com/bnema/favicache/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	stopSignal context.CancelFunc
	rootCmd    = &cobra.Command{
		Use:   "favicache",
		Short: "Fetch, normalize and cache website favicons",
		Long: `favicache - a two-tier favicon cache.

Icons are looked up in memory, then on disk, then fetched from a chain of
network sources (DuckDuckGo, /favicon.ico, /apple-touch-icon.png, Google).
Every icon is normalized to a square PNG of a fixed size and written
through to the disk cache, so later lookups work offline.

Examples:
  favicache fetch github.com
  favicache color https://go.dev
  favicache warm -f bookmarks.txt -j 8`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "schema":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{ConfigFile: configFile})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			stopSignal = stop
			app.WithContext(ctx)
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if stopSignal != nil {
				stopSignal()
			}
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/favicache/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
