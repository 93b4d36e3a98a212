package repo

import (
	"context"
	"database/sql"
	"time"
)

// Schema statements are idempotent so they can run on every startup.
var postgresSchema = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_cost NUMERIC NOT NULL,
		abc_class TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS thresholds (
		id SERIAL PRIMARY KEY,
		item_name TEXT NOT NULL UNIQUE,
		min_threshold INTEGER NOT NULL,
		max_threshold INTEGER NOT NULL
	)`,
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS inventory (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		quantity INTEGER NOT NULL,
		unit_cost REAL NOT NULL,
		abc_class TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS thresholds (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_name TEXT NOT NULL UNIQUE,
		min_threshold INTEGER NOT NULL,
		max_threshold INTEGER NOT NULL
	)`,
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func ensureSchema(ctx context.Context, db execer, statements []string, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return storageErr("ensure schema", err)
		}
	}
	return nil
}
