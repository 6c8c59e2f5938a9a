package migrations

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// source
	"github.com/rs/zerolog"
)

// Migrator applies the SQL files of one directory to one database
type Migrator struct {
	dir    string
	dsn    string
	logger zerolog.Logger
}

// NewMigrator creates a new migrator for the migrations in dir
func NewMigrator(dir, dsn string, lgr zerolog.Logger) *Migrator {
	return &Migrator{dir: dir, dsn: dsn, logger: lgr}
}

// SourceURL returns the file:// URL of a migrations directory
func SourceURL(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolve path for %s: %w", dir, err)
	}
	return "file://" + filepath.ToSlash(abs), nil
}

func (m *Migrator) open() (*migrate.Migrate, error) {
	src, err := SourceURL(m.dir)
	if err != nil {
		return nil, err
	}

	mg, err := migrate.New(src, m.dsn)
	if err != nil {
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return mg, nil
}

func (m *Migrator) run(action string, fn func(*migrate.Migrate) error) error {
	mg, err := m.open()
	if err != nil {
		return err
	}
	defer func() {
		if srcErr, dbErr := mg.Close(); srcErr != nil || dbErr != nil {
			m.logger.Warn().AnErr("source_error", srcErr).AnErr("database_error", dbErr).Msg("Failed to close migrator")
		}
	}()

	if err := fn(mg); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			m.logger.Info().Str("action", action).Msg("Database schema already up to date")
			return nil
		}
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	m.logger.Info().Str("action", action).Msg("Database migration applied")
	return nil
}

// Up applies every pending migration
func (m *Migrator) Up() error {
	return m.run("up", func(mg *migrate.Migrate) error { return mg.Up() })
}

// Down reverts every applied migration
func (m *Migrator) Down() error {
	return m.run("down", func(mg *migrate.Migrate) error { return mg.Down() })
}

// Drop removes everything in the database, including the version table
func (m *Migrator) Drop() error {
	return m.run("drop", func(mg *migrate.Migrate) error { return mg.Drop() })
}

// Version reports the applied version. ok is false when nothing was applied.
func (m *Migrator) Version() (version uint, dirty bool, ok bool, err error) {
	mg, err := m.open()
	if err != nil {
		return 0, false, false, err
	}
	defer mg.Close()

	version, dirty, err = mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, false, nil
	}
	if err != nil {
		return 0, false, false, fmt.Errorf("read migration version: %w", err)
	}
	return version, dirty, true, nil
}
