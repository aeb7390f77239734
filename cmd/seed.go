package cmd

import (
	"fmt"

	"github.com/ariebrainware/clinic-api/model"
	"github.com/ariebrainware/clinic-api/util"
	"github.com/spf13/cobra"
)

func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert a sample patient into an empty database",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			db, err := openDatabase(cfg, util.NewLogWriter(cfg))
			if err != nil {
				return err
			}
			defer closeDatabase(db)

			inserted, err := model.SeedPatients(db)
			if err != nil {
				return err
			}
			if inserted {
				fmt.Fprintln(cmd.OutOrStdout(), "Sample patient inserted.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Patients already present, nothing to seed.")
			}
			return nil
		},
	}
}
