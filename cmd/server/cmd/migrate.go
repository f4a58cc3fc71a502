package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"notekeeper/internal/app/server/config"
	"notekeeper/internal/infrastructure/migration"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Применить миграции PostgreSQL",
	Long:  `Применяет SQL-миграции к базе PostgreSQL. Для SurrealDB миграции не нужны: схема определяется при старте сервера.`,
	RunE: func(_ *cobra.Command, _ []string) error {
		cfg := config.MustLoad()
		if cfg.DB.Backend != config.BackendPostgres {
			return fmt.Errorf("миграции применимы только к backend %q, текущий %q", config.BackendPostgres, cfg.DB.Backend)
		}

		if err := migration.NewMigration(cfg, migration.DefaultEngine).Up(); err != nil {
			return fmt.Errorf("migration: %w", err)
		}

		color.Green("Миграции применены")
		return nil
	},
}
