package db

// SchemaSQL is the complete schema for fresh installs.
// It reflects the state after every migration in migrations.go.
//
// Tests load it through GetSchemaSQL() instead of declaring their own tables,
// so a column the adapters use but the schema lacks fails immediately.
//
// When adding columns or tables:
//  1. Add a migration in migrations.go
//  2. Update SchemaSQL here
//  3. Bump LatestVersion
//
// Ownership (client -> project -> journey -> phase) is enforced with foreign keys.
// Cross links (phase jobs, opportunity phases) are not: snapshots may reference
// entities that were deleted and readers skip those.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS clients (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	description TEXT,
	website TEXT,
	logo TEXT,
	created_at TEXT,
	updated_at TEXT
);

CREATE TABLE IF NOT EXISTS projects (
	id TEXT PRIMARY KEY,
	client_id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	created_at TEXT,
	updated_at TEXT,
	FOREIGN KEY (client_id) REFERENCES clients(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS journeys (
	id TEXT PRIMARY KEY,
	project_id TEXT NOT NULL,
	name TEXT NOT NULL,
	description TEXT,
	row_order TEXT,
	created_at TEXT,
	updated_at TEXT,
	FOREIGN KEY (project_id) REFERENCES projects(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS journey_custom_rows (
	journey_id TEXT NOT NULL,
	id TEXT NOT NULL,
	label TEXT NOT NULL DEFAULT '',
	position INTEGER NOT NULL,
	PRIMARY KEY (journey_id, id),
	FOREIGN KEY (journey_id) REFERENCES journeys(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS phases (
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
);

CREATE TABLE IF NOT EXISTS phase_jobs (
	phase_id TEXT NOT NULL,
	job_id TEXT NOT NULL,
	position INTEGER NOT NULL,
	PRIMARY KEY (phase_id, position),
	FOREIGN KEY (phase_id) REFERENCES phases(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS phase_custom_values (
	phase_id TEXT NOT NULL,
	row_id TEXT NOT NULL,
	value TEXT NOT NULL DEFAULT '',
	PRIMARY KEY (phase_id, row_id),
	FOREIGN KEY (phase_id) REFERENCES phases(id) ON DELETE CASCADE
);

CREATE TABLE IF NOT EXISTS jobs (
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
);

CREATE TABLE IF NOT EXISTS insights (
	id TEXT PRIMARY KEY,
	client_id TEXT NOT NULL,
	title TEXT NOT NULL,
	description TEXT,
	priority TEXT NOT NULL DEFAULT '',
	display_order INTEGER
);

CREATE TABLE IF NOT EXISTS opportunities (
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
);

CREATE INDEX IF NOT EXISTS idx_opportunities_phase ON opportunities(phase_id);

CREATE TABLE IF NOT EXISTS cell_comments (
	id TEXT PRIMARY KEY,
	phase_id TEXT NOT NULL,
	row_id TEXT NOT NULL,
	author TEXT,
	body TEXT NOT NULL,
	created_at TEXT
);
`

// GetSchemaSQL returns the authoritative schema.
func GetSchemaSQL() string {
	return SchemaSQL
}
