package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-insights/db/migrations"
)

// Migrate moves the database at addr to migrations.Version using the
// embedded SQL files. A database left dirty by an interrupted run is
// reported, not forced.
func Migrate(addr string) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("open embedded migrations: %w", err)
	}
	defer src.Close()

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate to version %d: %w", migrations.Version, err)
	}
	return nil
}
