// Package cases implements the case table inspection command.
package cases

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/securebank/fraudflow/internal/conf"
	"github.com/securebank/fraudflow/internal/datastore"
)

// Command creates the cases command.
func Command(settings *conf.Settings) *cobra.Command {
	var statusFilter string

	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List fraud cases and their current status",
		RunE: func(cmd *cobra.Command, args []string) error {
			store := datastore.New(settings)
			if store == nil {
				return fmt.Errorf("no storage backend enabled")
			}
			if err := store.Open(); err != nil {
				return fmt.Errorf("opening case store: %w", err)
			}
			defer func() { _ = store.Close() }()

			all, err := store.GetAllCases()
			if err != nil {
				return fmt.Errorf("listing cases: %w", err)
			}

			return printCases(all, statusFilter)
		},
	}

	cmd.Flags().StringVar(&statusFilter, "status", "", "Only show cases with this status")

	return cmd
}

// printCases writes a sanitized table of cases to stdout. The security
// answer never appears here.
func printCases(all []datastore.FraudCase, statusFilter string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tHOLDER\tSTATUS\tAMOUNT\tMERCHANT\tUPDATED\tNOTE")

	shown := 0
	for i := range all {
		c := &all[i]
		if statusFilter != "" && c.Status != statusFilter {
			continue
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.HolderName, c.Status, c.Amount, c.Merchant,
			c.UpdatedAt.Format("2006-01-02 15:04:05"), c.OutcomeNote)
		shown++
	}

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d case(s)\n", shown)
	return nil
}
