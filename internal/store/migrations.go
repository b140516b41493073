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
		// No rows: fresh database.
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}
	return nil
}

// migrateV1 creates the snapshot tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id   TEXT NOT NULL UNIQUE,
			taken_at TEXT NOT NULL,
			version  TEXT NOT NULL,
			source   TEXT NOT NULL
		)`,

		`CREATE TABLE IF NOT EXISTS kpi_snapshots (
			snapshot_id    INTEGER PRIMARY KEY REFERENCES snapshots(id),
			total          INTEGER NOT NULL,
			avg_demand     REAL NOT NULL,
			trending_count INTEGER NOT NULL,
			highest_id     TEXT,
			highest_name   TEXT,
			highest_score  REAL NOT NULL DEFAULT 0
		)`,

		`CREATE TABLE IF NOT EXISTS insight_log (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id    INTEGER NOT NULL REFERENCES snapshots(id),
			insight_id     TEXT NOT NULL,
			opportunity_id TEXT NOT NULL,
			type           TEXT NOT NULL,
			text           TEXT NOT NULL
		)`,

		`CREATE INDEX IF NOT EXISTS idx_insight_log_snapshot ON insight_log(snapshot_id)`,
		`CREATE INDEX IF NOT EXISTS idx_insight_log_opportunity ON insight_log(opportunity_id)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
