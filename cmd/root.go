package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCommand builds the clinic command tree.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "clinic",
		Short: "Clinic management API for patients and appointments.",
		Long: `Clinic management API for patients and appointments.

Configuration is read from the environment, optionally seeded from a .env file.`,
		SilenceUsage: true,
	}

	// Global env file flag, available for all commands.
	root.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading the environment")

	root.AddCommand(NewServeCommand())
	root.AddCommand(NewMigrateCommand())
	root.AddCommand(NewSeedCommand())
	root.AddCommand(NewGenDocsCommand())
	return root
}

func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
