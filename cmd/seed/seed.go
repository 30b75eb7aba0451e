// Package seed implements the demo dataset seeding command.
package seed

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/securebank/fraudflow/internal/conf"
	"github.com/securebank/fraudflow/internal/datastore"
)

// Command creates the seed command.
func Command(settings *conf.Settings) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed the demo fraud cases into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := datastore.New(settings)
			if store == nil {
				return fmt.Errorf("no storage backend enabled")
			}
			if err := store.Open(); err != nil {
				return fmt.Errorf("opening case store: %w", err)
			}
			defer func() { _ = store.Close() }()

			seeded, err := datastore.SeedDemoCases(store)
			if err != nil {
				return fmt.Errorf("seeding demo cases: %w", err)
			}

			if seeded == 0 {
				fmt.Println("Database already contains cases, nothing seeded")
			} else {
				fmt.Printf("Seeded %d demo fraud cases\n", seeded)
			}
			return nil
		},
	}
}
