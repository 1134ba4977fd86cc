package db

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

const sqliteDriverName = "sqlite"

//go:embed migrations/*.sql
var migrations embed.FS

var pragmas = []string{
	"PRAGMA journal_mode = WAL;",
	"PRAGMA foreign_keys = ON;", // contacts -> addresses cascade relies on this
	"PRAGMA busy_timeout = 5000;",
}

// InitDB opens/creates a SQLite DB file and migrates it to the latest schema.
// A nil log silences migration output.
func InitDB(ctx context.Context, path string, log goose.Logger) (*sql.DB, error) {
	db, err := sql.Open(sqliteDriverName, path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %q: %w", path, err)
	}

	// One connection: SQLite serialises writers anyway, and ":memory:" databases
	// live only as long as their connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	for _, p := range pragmas {
		if _, err := db.ExecContext(ctx, p); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("set %s: %w", p, err)
		}
	}

	if err := Migrate(ctx, db, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	// Fail fast if the DB cannot be reached
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	return db, nil
}

// gooseUp is swapped out in tests.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string) error {
	return goose.UpContext(ctx, db, dir)
}

// Migrate applies all embedded migrations that have not run yet.
func Migrate(ctx context.Context, db *sql.DB, log goose.Logger) error {
	if log == nil {
		log = goose.NopLogger()
	}
	goose.SetLogger(log)
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := gooseUp(ctx, db, "migrations"); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}
