// Package serve implements the HTTP API server command.
package serve

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/securebank/fraudflow/internal/api"
	"github.com/securebank/fraudflow/internal/conf"
	"github.com/securebank/fraudflow/internal/datastore"
	"github.com/securebank/fraudflow/internal/logging"
	"github.com/securebank/fraudflow/internal/observability"
	"github.com/securebank/fraudflow/internal/workflow"
)

// Command creates the serve command.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the fraud workflow HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(settings)
		},
	}

	cmd.PersistentFlags().StringVar(&settings.WebServer.Port, "port", settings.WebServer.Port, "Port for the HTTP API")

	return cmd
}

func runServer(settings *conf.Settings) error {
	logger := logging.ForService("serve")

	store := datastore.New(settings)
	if store == nil {
		return fmt.Errorf("no storage backend enabled")
	}
	if err := store.Open(); err != nil {
		return fmt.Errorf("opening case store: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close case store", "error", err)
		}
	}()

	if settings.Workflow.SeedDemoCases {
		seeded, err := datastore.SeedDemoCases(store)
		if err != nil {
			return fmt.Errorf("seeding demo cases: %w", err)
		}
		if seeded > 0 {
			logger.Info("Seeded demo cases", "count", seeded)
		}
	}

	registry := prometheus.NewRegistry()
	metrics, err := observability.NewWorkflowMetrics(registry)
	if err != nil {
		return fmt.Errorf("initializing metrics: %w", err)
	}

	svc := workflow.NewService(store, metrics)
	sessionTTL := time.Duration(settings.Workflow.SessionTTL) * time.Minute
	facade := workflow.NewFacade(svc, sessionTTL, metrics)

	controller := api.New(settings, svc, facade, registry)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting fraud workflow service",
		"bank", settings.Bank.Name,
		"port", settings.WebServer.Port,
		"session_ttl", sessionTTL)

	return controller.Start(ctx, settings.WebServer.Port)
}
