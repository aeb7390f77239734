package cmd

import (
	"fmt"

	"github.com/ariebrainware/clinic-api/util"
	"github.com/spf13/cobra"
)

func NewMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg, util.NewLogWriter(cfg))
			if err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
			defer closeDatabase(db)

			fmt.Fprintln(cmd.OutOrStdout(), "Migrations executed successfully.")
			return nil
		},
	}
}
