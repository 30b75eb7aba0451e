package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/securebank/fraudflow/cmd"
	"github.com/securebank/fraudflow/internal/conf"
	"github.com/securebank/fraudflow/internal/logging"
)

// Populated by the build.
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	logging.Init(slog.LevelInfo)

	settings, err := conf.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	settings.Version = version
	settings.BuildDate = buildDate

	level := slog.LevelInfo
	if settings.Debug {
		level = slog.LevelDebug
	}
	if settings.Main.Log.Enabled && settings.Main.Log.Path != "" {
		closeLog, err := logging.InitFile(level, settings.Main.Log.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
			logging.Init(level)
		} else {
			defer closeLog()
		}
	} else if settings.Debug {
		logging.Init(level)
	}

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
