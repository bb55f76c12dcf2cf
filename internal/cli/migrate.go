package cli

import (
	"github.com/KOFI-GYIMAH/uc-orb/internal/db"
	"github.com/KOFI-GYIMAH/uc-orb/pkg/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations to the Postgres mirror",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.RequireDB(); err != nil {
			return err
		}

		database, err := db.NewPostgresDB(cfg.DBURL)
		if err != nil {
			return err
		}
		defer database.Close()

		if err := database.Migrate(cfg.MigrationsURL); err != nil {
			return err
		}

		logger.Info("Successfully ran migrations")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
