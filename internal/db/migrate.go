package db

import (
	"database/sql"
	"fmt"
)

// schemaVersion is stored in PRAGMA user_version once the schema exists.
const schemaVersion = 1

// Migrate creates the catalog schema in one transaction and stamps its
// version. A database already at schemaVersion is left untouched.
func Migrate(db *sql.DB) error {
	var version int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&version); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if version >= schemaVersion {
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning migration: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i, stmt := range migrations {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, schemaVersion)); err != nil {
		return fmt.Errorf("stamping schema version: %w", err)
	}
	return tx.Commit()
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS catalog_meta (
		id          INTEGER PRIMARY KEY CHECK(id = 1),
		source      TEXT NOT NULL,
		imported_at TEXT NOT NULL,
		checksum    TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS schedule_sections (
		id       INTEGER PRIMARY KEY,
		position INTEGER NOT NULL,
		date     TEXT NOT NULL,
		feature  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sections_feature ON schedule_sections(feature)`,

	`CREATE TABLE IF NOT EXISTS schedule_sessions (
		id          INTEGER PRIMARY KEY,
		section_id  INTEGER NOT NULL REFERENCES schedule_sections(id) ON DELETE CASCADE,
		position    INTEGER NOT NULL,
		start_min   INTEGER NOT NULL CHECK(start_min >= 0 AND start_min < 1440),
		end_min     INTEGER NOT NULL CHECK(end_min > start_min AND end_min < 1440),
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		kind        TEXT NOT NULL DEFAULT ''
		            CHECK(kind IN ('','speaker','panel','presentation','ceremony'))
	)`,

	`CREATE INDEX IF NOT EXISTS idx_sessions_section ON schedule_sessions(section_id)`,
	`CREATE INDEX IF NOT EXISTS idx_sessions_title ON schedule_sessions(title)`,

	`CREATE TABLE IF NOT EXISTS session_roles (
		session_id INTEGER NOT NULL REFERENCES schedule_sessions(id) ON DELETE CASCADE,
		role       TEXT NOT NULL
		           CHECK(role IN ('speaker','moderator','panelists','presenter','witness','exchange','organizations')),
		position   INTEGER NOT NULL,
		value      TEXT NOT NULL,
		PRIMARY KEY (session_id, role, position)
	)`,
}
