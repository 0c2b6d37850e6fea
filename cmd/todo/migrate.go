package main

import (
	"fmt"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/todo/internal/todo/app"
	"github.com/aussiebroadwan/todo/internal/todo/store"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}

	cmd.AddCommand(newMigrateStepCmd("up", "Apply all pending migrations", func(cmd *cobra.Command, m store.Migrator) error {
		if err := m.ApplyMigrations(); err != nil {
			return oops.Code("MIGRATION_FAILED").With("operation", "apply migrations").Wrap(err)
		}
		cmd.Println("Migrations completed successfully")
		return nil
	}))
	cmd.AddCommand(newMigrateStepCmd("down", "Roll back the most recent migration", func(cmd *cobra.Command, m store.Migrator) error {
		if err := m.RollbackMigration(); err != nil {
			return oops.Code("MIGRATION_FAILED").With("operation", "roll back migration").Wrap(err)
		}
		cmd.Println("Rolled back one migration")
		return nil
	}))
	cmd.AddCommand(newMigrateStepCmd("version", "Print the current schema version", func(cmd *cobra.Command, m store.Migrator) error {
		version, dirty, err := m.MigrationVersion()
		if err != nil {
			return oops.Code("MIGRATION_FAILED").With("operation", "read version").Wrap(err)
		}
		cmd.Println(formatVersion(version, dirty))
		return nil
	}))

	return cmd
}

func newMigrateStepCmd(use, short string, step func(*cobra.Command, store.Migrator) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, _ []string) error {
			m, closeStore, err := openMigrator(cmd)
			if err != nil {
				return err
			}
			defer closeStore()
			return step(cmd, m)
		},
	}
	addStoreFlags(cmd)
	return cmd
}

func openMigrator(cmd *cobra.Command) (store.Migrator, func(), error) {
	cfg, err := app.LoadConfig(configFile, cmd.Flags())
	if err != nil {
		return nil, nil, oops.Code("CONFIG_INVALID").With("operation", "load config").Wrap(err)
	}

	cmd.Println("Connecting to database...")
	st, err := app.OpenStore(cmd.Context(), cfg.Database, app.NewLogger(cfg))
	if err != nil {
		return nil, nil, oops.Code("DB_CONNECT_FAILED").With("driver", cfg.Database.Driver).Wrap(err)
	}

	m, ok := st.(store.Migrator)
	if !ok {
		_ = st.Close()
		return nil, nil, oops.Code("MIGRATION_UNSUPPORTED").Errorf("driver %q cannot step migrations", cfg.Database.Driver)
	}
	return m, func() { _ = st.Close() }, nil
}

func formatVersion(version uint, dirty bool) string {
	if dirty {
		return fmt.Sprintf("version %d (dirty)", version)
	}
	return fmt.Sprintf("version %d", version)
}
