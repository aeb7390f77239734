package cmd

import (
	"fmt"
	"io"

	"github.com/ariebrainware/clinic-api/config"
	"github.com/ariebrainware/clinic-api/model"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	envFile, err := cmd.Root().PersistentFlags().GetString("env-file")
	if err != nil {
		return nil, fmt.Errorf("failed to get env-file flag: %w", err)
	}
	return config.Load(envFile)
}

// openDatabase connects and brings the schema up to date.
func openDatabase(cfg *config.Config, out io.Writer) (*gorm.DB, error) {
	db, err := config.ConnectDatabase(cfg, out)
	if err != nil {
		return nil, err
	}
	if err := model.Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func closeDatabase(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// closeRedis releases the client when redis is enabled.
func closeRedis(rdb *redis.Client) {
	if rdb != nil {
		_ = rdb.Close()
	}
}
