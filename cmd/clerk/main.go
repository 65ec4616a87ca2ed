package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/clerk/internal/cli"
	"github.com/example/clerk/internal/version"
	"github.com/example/clerk/internal/wire"
)

func main() {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:     "clerk",
		Short:   "clerk - records management for hotels, banks, universities, and leagues",
		Version: version.String(),
		Long: `clerk is a CLI tool for managing operational records across four desks:
hotel bookings, bank loans and accounts, university enrollments, and
league fixtures. State lives in memory and persists through JSON
snapshots or a sqlite archive.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			wire.SetConfigFile(cfgFile)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.clerk.yaml)")

	// Domain commands
	rootCmd.AddCommand(cli.HotelCmd())
	rootCmd.AddCommand(cli.BankCmd())
	rootCmd.AddCommand(cli.UniversityCmd())
	rootCmd.AddCommand(cli.ArenaCmd())

	// Persistence and tooling
	rootCmd.AddCommand(cli.DataCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
