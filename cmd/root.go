package cmd

import (
	"github.com/spf13/cobra"

	"github.com/securebank/fraudflow/cmd/cases"
	"github.com/securebank/fraudflow/cmd/seed"
	"github.com/securebank/fraudflow/cmd/serve"
	"github.com/securebank/fraudflow/internal/conf"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fraudflow",
		Short: "FraudFlow fraud-alert case workflow service",
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		serve.Command(settings),
		seed.Command(settings),
		cases.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags configures the global flags for the root command.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", settings.Debug, "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Output.SQLite.Path, "db", settings.Output.SQLite.Path, "Path to SQLite database")
}
