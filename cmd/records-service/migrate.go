package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nurpe/factory-records/internal/config"
	"github.com/nurpe/factory-records/internal/db"
	"github.com/nurpe/factory-records/internal/logger"
)

func newMigrateCmd() *cobra.Command {
	var foreignKeys bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the record tables and exit",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			if cmd.Flags().Changed("foreign-keys") {
				cfg.DB.ForeignKeys = foreignKeys
			}
			cfg.DB.AutoMigrate = false

			log := logger.New(cfg.Environment, cfg.LogLevel)
			database, err := db.New(cfg, log)
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}
			defer func() { _ = db.Close(database) }()

			if err := db.Migrate(database, cfg.DB.ForeignKeys); err != nil {
				return err
			}
			log.Info().Str("driver", cfg.DB.Driver).Bool("foreign_keys", cfg.DB.ForeignKeys).Msg("migrations applied")
			return nil
		},
	}
	cmd.Flags().BoolVar(&foreignKeys, "foreign-keys", true, "create foreign key constraints (overrides DB_FOREIGN_KEYS)")
	return cmd
}
