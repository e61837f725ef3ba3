package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.Tx) error
}

// LatestVersion is the version a fresh install starts at.
const LatestVersion = 2

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "create_journey_map_tables",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_cell_comments",
		Up:      migrationV2,
	},
}

// InitSchema creates the schema on a fresh database or migrates an existing one.
func InitSchema(database *sql.DB) error {
	var tableCount int
	err := database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'").Scan(&tableCount)
	if err != nil {
		return err
	}

	if tableCount == 0 {
		var existing int
		err = database.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='clients'").Scan(&existing)
		if err != nil {
			return err
		}
		if existing == 0 {
			return createFresh(database)
		}
	}

	return RunMigrations(database)
}

func createFresh(database *sql.DB) error {
	tx, err := database.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	if err := createVersionTable(tx); err != nil {
		return err
	}
	// Mark all migrations as applied for fresh installs
	for i := 1; i <= LatestVersion; i++ {
		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", i); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func createVersionTable(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}
	return nil
}

// RunMigrations applies every migration newer than the recorded schema version.
func RunMigrations(database *sql.DB) error {
	tx, err := database.Begin()
	if err != nil {
		return err
	}
	if err := createVersionTable(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	// Get current schema version
	var currentVersion int
	err = database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := database.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(tx); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// CurrentVersion returns the highest applied migration.
func CurrentVersion(database *sql.DB) (int, error) {
	var v int
	err := database.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&v)
	return v, err
}

// migrationV1 creates everything except cell comments. Tables use IF NOT EXISTS
// so databases created before versioning pass through.
func migrationV1(tx *sql.Tx) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS clients (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			description TEXT,
			website TEXT,
			logo TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS projects (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			created_at TEXT,
			updated_at TEXT,
			FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS journeys (
			id TEXT PRIMARY KEY,
			project_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			row_order TEXT,
			created_at TEXT,
			updated_at TEXT,
			FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS journey_custom_rows (
			journey_id TEXT NOT NULL,
			id TEXT NOT NULL,
			label TEXT NOT NULL DEFAULT '',
			position INTEGER NOT NULL,
			PRIMARY KEY (journey_id, id),
			FOREIGN KEY (journey_id) REFERENCES journeys(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS phases (
			id TEXT PRIMARY KEY,
			journey_id TEXT NOT NULL,
			position INTEGER NOT NULL DEFAULT 0,
			title TEXT NOT NULL DEFAULT '',
			description TEXT,
			struggles TEXT,
			internal_struggles TEXT,
			front_stage_actions TEXT,
			back_stage_actions TEXT,
			systems TEXT,
			related_processes TEXT,
			channels TEXT,
			related_documents TEXT,
			opportunities_text TEXT,
			created_at TEXT,
			updated_at TEXT,
			FOREIGN KEY (journey_id) REFERENCES journeys(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS phase_jobs (
			phase_id TEXT NOT NULL,
			job_id TEXT NOT NULL,
			position INTEGER NOT NULL,
			PRIMARY KEY (phase_id, position),
			FOREIGN KEY (phase_id) REFERENCES phases(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS phase_custom_values (
			phase_id TEXT NOT NULL,
			row_id TEXT NOT NULL,
			value TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (phase_id, row_id),
			FOREIGN KEY (phase_id) REFERENCES phases(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS jobs (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			name TEXT NOT NULL,
			description TEXT,
			tag TEXT NOT NULL CHECK(tag IN ('Functional', 'Social', 'Emotional', '')) DEFAULT '',
			priority TEXT,
			struggles TEXT,
			dimensions TEXT,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS insights (
			id TEXT PRIMARY KEY,
			client_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			priority TEXT NOT NULL DEFAULT '',
			display_order INTEGER
		)`,
		`CREATE TABLE IF NOT EXISTS opportunities (
			id TEXT PRIMARY KEY,
			client_id TEXT,
			project_id TEXT,
			journey_id TEXT,
			phase_id TEXT,
			stage TEXT NOT NULL DEFAULT 'Backlog',
			stage_order INTEGER NOT NULL DEFAULT 0,
			name TEXT NOT NULL,
			priority TEXT NOT NULL DEFAULT '',
			description TEXT,
			impact TEXT,
			linked_job_ids TEXT,
			is_priority INTEGER NOT NULL DEFAULT 0,
			created_at TEXT,
			updated_at TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_opportunities_phase ON opportunities(phase_id)`,
	}
	for _, s := range stmts {
		if _, err := tx.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

func migrationV2(tx *sql.Tx) error {
	_, err := tx.Exec(`
		CREATE TABLE IF NOT EXISTS cell_comments (
			id TEXT PRIMARY KEY,
			phase_id TEXT NOT NULL,
			row_id TEXT NOT NULL,
			author TEXT,
			body TEXT NOT NULL,
			created_at TEXT
		)
	`)
	return err
}
