package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for pokefetch.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pokefetch",
		Short: "Scrape the national Pokédex into a relational table",
		Long: `Pokefetch walks the national Pokédex listing page, fetches every
Pokémon detail page, extracts the basic data tables, and writes the merged
result into a relational database table.

By default the rows land in a SQLite file under the XDG data directory,
so a bare "pokefetch run" works without any database setup. Point it at
an Oracle instance with the --driver and --db-* flags or a config file.`,
		Version:       resolveBuildVersion().version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewRunCmd())
	cmd.AddCommand(NewInitCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
