package postgres

import (
	"errors"
	"strings"

	"github.com/aussiebroadwan/todo/internal/todo/store/drivers/postgres/migrations"
	"github.com/golang-migrate/migrate/v4"
	// Register pgx/v5 database driver for golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/samber/oops"
)

// migrateURL rewrites postgres:// and postgresql:// to the pgx5:// scheme
// the golang-migrate pgx/v5 driver registers under.
func migrateURL(dsn string) string {
	if rest, found := strings.CutPrefix(dsn, "postgres://"); found {
		return "pgx5://" + rest
	}
	if rest, found := strings.CutPrefix(dsn, "postgresql://"); found {
		return "pgx5://" + rest
	}
	return dsn
}

func (s *Store) withMigrator(fn func(m *migrate.Migrate) error) error {
	if s.dsn == "" {
		return oops.Code("MIGRATION_INIT_FAILED").Errorf("postgres: store has no dsn to migrate")
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return oops.Code("MIGRATION_SOURCE_FAILED").Wrap(err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(s.dsn))
	if err != nil {
		_ = src.Close()
		return oops.Code("MIGRATION_INIT_FAILED").Wrap(err)
	}
	defer func() { _, _ = m.Close() }()

	return fn(m)
}

// ApplyMigrations applies any pending migrations.
func (s *Store) ApplyMigrations() error {
	return s.withMigrator(func(m *migrate.Migrate) error {
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return oops.Code("MIGRATION_UP_FAILED").Wrap(err)
		}
		return nil
	})
}

// RollbackMigration reverts the most recent migration.
func (s *Store) RollbackMigration() error {
	return s.withMigrator(func(m *migrate.Migrate) error {
		if err := m.Steps(-1); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			return oops.Code("MIGRATION_STEPS_FAILED").With("steps", -1).Wrap(err)
		}
		return nil
	})
}

// MigrationVersion reports the applied version. A fresh database reports 0.
func (s *Store) MigrationVersion() (version uint, dirty bool, err error) {
	err = s.withMigrator(func(m *migrate.Migrate) error {
		var verr error
		version, dirty, verr = m.Version()
		if errors.Is(verr, migrate.ErrNilVersion) {
			version, dirty = 0, false
			return nil
		}
		if verr != nil {
			return oops.Code("MIGRATION_VERSION_FAILED").Wrap(verr)
		}
		return nil
	})
	return version, dirty, err
}
