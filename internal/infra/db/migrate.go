package db

import (
	"errors"
	"log/slog"
	"strings"

	"petshop-checkout/internal/pkg/config"
	"petshop-checkout/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// Migrate applies every pending up migration found in dir.
func Migrate(cfg config.DBConfig, dir string) error {
	m, err := migrate.New("file://"+dir, migrateURL(cfg))
	if err != nil {
		return errs.Wrap(err, "failed to create migrator")
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if srcErr != nil || dbErr != nil {
			slog.Warn("failed to close migrator", "source_error", srcErr, "db_error", dbErr)
		}
	}()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return errs.Wrap(err, "failed to apply migrations")
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return errs.Wrap(err, "failed to read migration version")
	}
	slog.Info("database migrated", "version", version, "dirty", dirty)
	return nil
}

// the pgx/v5 driver registers itself under pgx5://
func migrateURL(cfg config.DBConfig) string {
	return strings.Replace(cfg.BuildDSN(), "postgres://", "pgx5://", 1)
}
