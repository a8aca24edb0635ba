package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations. Statements are idempotent and the full
// list is re-run on every startup.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS entries (
		id         TEXT PRIMARY KEY,
		entry_date TEXT NOT NULL,
		start_time TEXT,
		end_time   TEXT,
		duration_s INTEGER NOT NULL DEFAULT 0,
		activity   TEXT NOT NULL,
		value      INTEGER,
		category   TEXT NOT NULL DEFAULT '',
		related_to TEXT NOT NULL DEFAULT '',
		role       TEXT NOT NULL DEFAULT '',
		emotion    TEXT NOT NULL DEFAULT '',
		goal       TEXT NOT NULL DEFAULT '',
		focus_tags TEXT NOT NULL DEFAULT '[]',
		note       TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_entries_date ON entries(entry_date)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_category ON entries(category)`,
	`CREATE INDEX IF NOT EXISTS idx_entries_created ON entries(created_at)`,

	`CREATE TABLE IF NOT EXISTS params (
		id   TEXT PRIMARY KEY,
		type TEXT NOT NULL
		     CHECK(type IN ('kategoria','kapcsolodo','szerep','erzelem','cel')),
		name TEXT NOT NULL,
		UNIQUE(type, name)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_params_type ON params(type)`,
}
