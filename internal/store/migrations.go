package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS habits (
			id            TEXT PRIMARY KEY,
			name          TEXT NOT NULL,
			description   TEXT,
			category      TEXT NOT NULL,
			icon          TEXT,
			color         TEXT,
			frequency     TEXT NOT NULL,
			target_days   TEXT,
			priority      TEXT NOT NULL,
			tracking_type TEXT NOT NULL,
			target_value  REAL NOT NULL DEFAULT 0,
			unit          TEXT,
			sort_order    INTEGER NOT NULL DEFAULT 0,
			created_at    TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS completions (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			habit_id       TEXT NOT NULL REFERENCES habits(id) ON DELETE CASCADE,
			completed_date TEXT NOT NULL,
			note           TEXT,
			value          REAL NOT NULL DEFAULT 0,
			UNIQUE(habit_id, completed_date)
		)`,

		`CREATE INDEX IF NOT EXISTS idx_completions_date ON completions(completed_date)`,

		`CREATE TABLE IF NOT EXISTS profile (
			id             INTEGER PRIMARY KEY CHECK (id = 1),
			total_xp       INTEGER NOT NULL DEFAULT 0,
			current_streak INTEGER NOT NULL DEFAULT 0,
			longest_streak INTEGER NOT NULL DEFAULT 0,
			theme          TEXT NOT NULL DEFAULT 'dark'
		)`,

		`CREATE TABLE IF NOT EXISTS achievement_unlocks (
			achievement_id TEXT PRIMARY KEY,
			unlocked_at    TEXT NOT NULL
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.conn.Exec(stmt); err != nil {
			return err
		}
	}

	_, err := db.conn.Exec("DELETE FROM schema_version")
	if err != nil {
		return err
	}
	_, err = db.conn.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion)
	return err
}
