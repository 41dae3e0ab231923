package cmd

import (
	"fmt"

	"fingenius/migrations"
	"fingenius/src/database"

	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status|reset]",
	Short:     "Apply the embedded database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status", "reset"},
	RunE: func(cmd *cobra.Command, args []string) error {
		command := "up"
		if len(args) == 1 {
			command = args[0]
		}

		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}
		if err := resolveSecrets(cmd.Context(), cfg); err != nil {
			return err
		}
		logger := newLogger(cfg)

		db, err := database.OpenSQLDB(cfg)
		if err != nil {
			return err
		}
		defer db.Close()

		goose.SetBaseFS(migrations.FS)
		goose.SetLogger(logger)
		if err := goose.SetDialect("postgres"); err != nil {
			return err
		}

		if err := goose.RunContext(cmd.Context(), command, db, "."); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		logger.WithField("command", command).Info("database migration completed successfully")
		return nil
	},
}
