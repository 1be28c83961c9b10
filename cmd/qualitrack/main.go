package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/polyforma/qualitrack/internal/interfaces/cli/migrate"
	"github.com/polyforma/qualitrack/internal/interfaces/cli/seed"
	"github.com/polyforma/qualitrack/internal/interfaces/cli/server"
	"github.com/polyforma/qualitrack/internal/interfaces/cli/token"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "qualitrack",
		Short: "QualiTrack - quality assurance for production lots",
		Long: `QualiTrack records production lots and their inspections, raises waste
alerts, issues quality certificates and tracks non-conformities.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		seed.NewCommand(),
		token.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
