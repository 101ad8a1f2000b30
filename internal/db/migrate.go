package db

import (
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-wizard/db/migrations"
)

// ErrDirty is returned when an earlier migration run was interrupted.
var ErrDirty = errors.New("database is in dirty state")

// Migrate moves the kv_store schema at addr to migrations.Version and
// reports the version found before migrating (0 for an empty database).
// A dirty database is reported instead of being forced.
func Migrate(addr string) (previous uint, err error) {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return 0, fmt.Errorf("open embedded migrations: %w", err)
	}

	mg, err := migrate.NewWithSourceInstance("iofs", src, addr)
	if err != nil {
		return 0, fmt.Errorf("connect migrator: %w", err)
	}
	defer mg.Close()

	previous, dirty, err := mg.Version()
	switch {
	case errors.Is(err, migrate.ErrNilVersion):
		previous = 0
	case err != nil:
		return 0, err
	case dirty:
		return previous, fmt.Errorf("%w at version %d", ErrDirty, previous)
	}

	if err = mg.Migrate(migrations.Version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return previous, err
	}
	return previous, nil
}
