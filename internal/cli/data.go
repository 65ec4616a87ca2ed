package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/clerk/internal/wire"
)

// DataCmd returns the data command group for snapshots and the archive.
func DataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Save, load, and archive the ledger",
	}

	cmd.AddCommand(dataSaveCmd())
	cmd.AddCommand(dataLoadCmd())
	cmd.AddCommand(dataArchiveCmd())

	return cmd
}

func dataSaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save",
		Short: "Snapshot every collection to the data directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.PersistenceService().SaveAll(context.Background()); err != nil {
				return fmt.Errorf("failed to save snapshots: %w", err)
			}
			fmt.Println("✓ Saved snapshots")
			return nil
		},
	}
}

func dataLoadCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "load",
		Short: "Restore every collection from snapshots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.PersistenceService().LoadAll(context.Background()); err != nil {
				return fmt.Errorf("failed to load snapshots: %w", err)
			}
			fmt.Println("✓ Loaded snapshots")
			return nil
		},
	}
}

func dataArchiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Export to or import from the sqlite archive",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "export",
		Short: "Copy every collection into the archive database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.PersistenceService().ExportArchive(context.Background()); err != nil {
				return fmt.Errorf("failed to export archive: %w", err)
			}
			fmt.Println("✓ Exported archive")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "import",
		Short: "Restore every collection from the archive database",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.PersistenceService().ImportArchive(context.Background()); err != nil {
				return fmt.Errorf("failed to import archive: %w", err)
			}
			fmt.Println("✓ Imported archive")
			return nil
		},
	})

	return cmd
}
