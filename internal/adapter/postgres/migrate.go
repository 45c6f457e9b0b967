package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
)

// Migrate applies all pending goose migrations from fsys to the database at dsn.
func Migrate(ctx context.Context, dsn string, fsys fs.FS, logger *slog.Logger) error {
	provider, db, err := newProvider(dsn, fsys)
	if err != nil {
		return err
	}
	defer db.Close()

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, r := range results {
		logger.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration),
		)
	}
	return nil
}

// MigrationStatus reports the applied state of every known migration.
func MigrationStatus(ctx context.Context, dsn string, fsys fs.FS) ([]*goose.MigrationStatus, error) {
	provider, db, err := newProvider(dsn, fsys)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	status, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("goose status: %w", err)
	}
	return status, nil
}

// newProvider uses goose.NewProvider, which handles $$-delimited bodies
// unlike the legacy goose.Up.
func newProvider(dsn string, fsys fs.FS) (*goose.Provider, *sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("sql.Open: %w", err)
	}
	provider, err := goose.NewProvider(goose.DialectPostgres, db, fsys)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose new provider: %w", err)
	}
	return provider, db, nil
}
