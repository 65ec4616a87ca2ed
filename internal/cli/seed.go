package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/clerk/internal/wire"
)

// SeedCmd returns the seed command.
func SeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Populate the ledger with deterministic sample data",
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, _ := cmd.Flags().GetInt64("seed")

			if err := wire.SeedService().Seed(context.Background(), seed); err != nil {
				return fmt.Errorf("failed to seed: %w", err)
			}
			fmt.Println("✓ Seeded sample data")
			return nil
		},
	}
	cmd.Flags().Int64("seed", 1, "Random seed")
	return cmd
}
