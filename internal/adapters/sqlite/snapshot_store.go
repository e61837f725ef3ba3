// Package sqlite contains SQLite implementations of the storage ports.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/example/journeymap/internal/models"
	"github.com/example/journeymap/internal/ports/secondary"
)

// SnapshotStore implements secondary.SnapshotStore with SQLite.
type SnapshotStore struct {
	db *sql.DB
}

// NewSnapshotStore creates a new SQLite snapshot store.
func NewSnapshotStore(db *sql.DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// Load reads every table into one snapshot.
func (s *SnapshotStore) Load(ctx context.Context) (*models.AppState, error) {
	state := &models.AppState{}

	loaders := []struct {
		name string
		fn   func(context.Context, *models.AppState) error
	}{
		{"clients", s.loadClients},
		{"projects", s.loadProjects},
		{"journeys", s.loadJourneys},
		{"phases", s.loadPhases},
		{"jobs", s.loadJobs},
		{"insights", s.loadInsights},
		{"opportunities", s.loadOpportunities},
		{"cell comments", s.loadCellComments},
	}
	for _, l := range loaders {
		if err := l.fn(ctx, state); err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", l.name, err)
		}
	}

	return state, nil
}

// Save replaces the stored snapshot in a single transaction.
func (s *SnapshotStore) Save(ctx context.Context, state *models.AppState) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Children first so ownership foreign keys never dangle mid-way.
	for _, table := range []string{
		"cell_comments", "opportunities", "insights", "jobs",
		"phase_custom_values", "phase_jobs", "phases",
		"journey_custom_rows", "journeys", "projects", "clients",
	} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	writers := []struct {
		name string
		fn   func(context.Context, *sql.Tx, *models.AppState) error
	}{
		{"clients", saveClients},
		{"projects", saveProjects},
		{"journeys", saveJourneys},
		{"phases", savePhases},
		{"jobs", saveJobs},
		{"insights", saveInsights},
		{"opportunities", saveOpportunities},
		{"cell comments", saveCellComments},
	}
	for _, w := range writers {
		if err := w.fn(ctx, tx, state); err != nil {
			return fmt.Errorf("failed to save %s: %w", w.name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit snapshot: %w", err)
	}
	return nil
}

func (s *SnapshotStore) loadClients(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, description, website, logo, created_at, updated_at FROM clients ORDER BY rowid",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c                    models.Client
			desc, website, logo  sql.NullString
			createdAt, updatedAt sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.Name, &desc, &website, &logo, &createdAt, &updatedAt); err != nil {
			return err
		}
		c.Description = desc.String
		c.Website = website.String
		c.Logo = logo.String
		c.CreatedAt = parseTime(createdAt)
		c.UpdatedAt = parseTime(updatedAt)
		state.Clients = append(state.Clients, c)
	}
	return rows.Err()
}

func (s *SnapshotStore) loadProjects(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, client_id, name, description, created_at, updated_at FROM projects ORDER BY rowid",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			p                    models.Project
			desc                 sql.NullString
			createdAt, updatedAt sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.ClientID, &p.Name, &desc, &createdAt, &updatedAt); err != nil {
			return err
		}
		p.Description = desc.String
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		state.Projects = append(state.Projects, p)
	}
	return rows.Err()
}

func (s *SnapshotStore) loadJourneys(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, project_id, name, description, row_order, created_at, updated_at FROM journeys ORDER BY rowid",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	index := map[string]int{}
	for rows.Next() {
		var (
			j                    models.Journey
			desc, rowOrder       sql.NullString
			createdAt, updatedAt sql.NullString
		)
		if err := rows.Scan(&j.ID, &j.ProjectID, &j.Name, &desc, &rowOrder, &createdAt, &updatedAt); err != nil {
			return err
		}
		j.Description = desc.String
		if j.RowOrder, err = decodeList(rowOrder); err != nil {
			return fmt.Errorf("journey %s row order: %w", j.ID, err)
		}
		j.CreatedAt = parseTime(createdAt)
		j.UpdatedAt = parseTime(updatedAt)
		index[j.ID] = len(state.Journeys)
		state.Journeys = append(state.Journeys, j)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	custom, err := s.db.QueryContext(ctx,
		"SELECT journey_id, id, label FROM journey_custom_rows ORDER BY journey_id, position",
	)
	if err != nil {
		return err
	}
	defer custom.Close()

	for custom.Next() {
		var journeyID string
		var r models.CustomRow
		if err := custom.Scan(&journeyID, &r.ID, &r.Label); err != nil {
			return err
		}
		if i, ok := index[journeyID]; ok {
			state.Journeys[i].CustomRows = append(state.Journeys[i].CustomRows, r)
		}
	}
	return custom.Err()
}

func (s *SnapshotStore) loadPhases(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, journey_id, position, title, description, struggles, internal_struggles,
			front_stage_actions, back_stage_actions, systems, related_processes, channels,
			related_documents, opportunities_text, created_at, updated_at
		FROM phases ORDER BY rowid`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	index := map[string]int{}
	for rows.Next() {
		var (
			p                                           models.Phase
			desc, struggles, internal, front, back      sql.NullString
			systems, processes, channels, docs, oppText sql.NullString
			createdAt, updatedAt                        sql.NullString
		)
		if err := rows.Scan(&p.ID, &p.JourneyID, &p.Order, &p.Title, &desc, &struggles, &internal,
			&front, &back, &systems, &processes, &channels, &docs, &oppText, &createdAt, &updatedAt); err != nil {
			return err
		}
		p.Description = desc.String
		p.Struggles = struggles.String
		p.InternalStruggles = internal.String
		p.FrontStageActions = front.String
		p.BackStageActions = back.String
		p.RelatedProcesses = processes.String
		p.RelatedDocuments = docs.String
		p.Opportunities = oppText.String
		if p.Systems, err = decodeList(systems); err != nil {
			return fmt.Errorf("phase %s systems: %w", p.ID, err)
		}
		if p.Channels, err = decodeList(channels); err != nil {
			return fmt.Errorf("phase %s channels: %w", p.ID, err)
		}
		p.CreatedAt = parseTime(createdAt)
		p.UpdatedAt = parseTime(updatedAt)
		index[p.ID] = len(state.Phases)
		state.Phases = append(state.Phases, p)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	jobs, err := s.db.QueryContext(ctx, "SELECT phase_id, job_id FROM phase_jobs ORDER BY phase_id, position")
	if err != nil {
		return err
	}
	defer jobs.Close()

	for jobs.Next() {
		var phaseID, jobID string
		if err := jobs.Scan(&phaseID, &jobID); err != nil {
			return err
		}
		if i, ok := index[phaseID]; ok {
			state.Phases[i].JobIDs = append(state.Phases[i].JobIDs, jobID)
		}
	}
	if err := jobs.Err(); err != nil {
		return err
	}

	values, err := s.db.QueryContext(ctx, "SELECT phase_id, row_id, value FROM phase_custom_values")
	if err != nil {
		return err
	}
	defer values.Close()

	for values.Next() {
		var phaseID, rowID, value string
		if err := values.Scan(&phaseID, &rowID, &value); err != nil {
			return err
		}
		i, ok := index[phaseID]
		if !ok {
			continue
		}
		if state.Phases[i].CustomRowValues == nil {
			state.Phases[i].CustomRowValues = map[string]string{}
		}
		state.Phases[i].CustomRowValues[rowID] = value
	}
	return values.Err()
}

func (s *SnapshotStore) loadJobs(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_id, name, description, tag, priority, struggles, dimensions, created_at, updated_at
		FROM jobs ORDER BY rowid`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			j                                     models.Job
			tag                                   string
			desc, priority, struggles, dimensions sql.NullString
			createdAt, updatedAt                  sql.NullString
		)
		if err := rows.Scan(&j.ID, &j.ClientID, &j.Name, &desc, &tag, &priority, &struggles, &dimensions, &createdAt, &updatedAt); err != nil {
			return err
		}
		j.Description = desc.String
		j.Tag = models.JobTag(tag)
		if priority.Valid {
			p := models.Priority(priority.String)
			j.Priority = &p
		}
		if j.Struggles, err = decodeList(struggles); err != nil {
			return fmt.Errorf("job %s struggles: %w", j.ID, err)
		}
		if j.Dimensions, err = decodeList(dimensions); err != nil {
			return fmt.Errorf("job %s dimensions: %w", j.ID, err)
		}
		j.CreatedAt = parseTime(createdAt)
		j.UpdatedAt = parseTime(updatedAt)
		state.Jobs = append(state.Jobs, j)
	}
	return rows.Err()
}

func (s *SnapshotStore) loadInsights(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, client_id, title, description, priority, display_order FROM insights ORDER BY rowid",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			in       models.Insight
			desc     sql.NullString
			priority string
			order    sql.NullInt64
		)
		if err := rows.Scan(&in.ID, &in.ClientID, &in.Title, &desc, &priority, &order); err != nil {
			return err
		}
		in.Description = desc.String
		in.Priority = models.Priority(priority)
		if order.Valid {
			o := int(order.Int64)
			in.Order = &o
		}
		state.Insights = append(state.Insights, in)
	}
	return rows.Err()
}

func (s *SnapshotStore) loadOpportunities(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, client_id, project_id, journey_id, phase_id, stage, stage_order, name, priority,
			description, impact, linked_job_ids, is_priority, created_at, updated_at
		FROM opportunities ORDER BY rowid`,
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			o                                       models.Opportunity
			clientID, projectID, journeyID, phaseID sql.NullString
			stage, priority                         string
			desc, impact, linked                    sql.NullString
			isPriority                              int
			createdAt, updatedAt                    sql.NullString
		)
		if err := rows.Scan(&o.ID, &clientID, &projectID, &journeyID, &phaseID, &stage, &o.StageOrder, &o.Name,
			&priority, &desc, &impact, &linked, &isPriority, &createdAt, &updatedAt); err != nil {
			return err
		}
		o.ClientID = clientID.String
		o.ProjectID = projectID.String
		o.JourneyID = journeyID.String
		o.PhaseID = phaseID.String
		o.Stage = models.Stage(stage)
		o.Priority = models.Priority(priority)
		o.Description = desc.String
		o.Impact = impact.String
		if o.LinkedJobIDs, err = decodeList(linked); err != nil {
			return fmt.Errorf("opportunity %s linked jobs: %w", o.ID, err)
		}
		o.IsPriority = isPriority == 1
		o.CreatedAt = parseTime(createdAt)
		o.UpdatedAt = parseTime(updatedAt)
		state.Opportunities = append(state.Opportunities, o)
	}
	return rows.Err()
}

func (s *SnapshotStore) loadCellComments(ctx context.Context, state *models.AppState) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, phase_id, row_id, author, body, created_at FROM cell_comments ORDER BY rowid",
	)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c                 models.CellComment
			author, createdAt sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.PhaseID, &c.RowID, &author, &c.Body, &createdAt); err != nil {
			return err
		}
		c.Author = author.String
		c.CreatedAt = parseTime(createdAt)
		state.CellComments = append(state.CellComments, c)
	}
	return rows.Err()
}

func saveClients(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO clients (id, name, description, website, logo, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range state.Clients {
		if _, err := stmt.ExecContext(ctx, c.ID, c.Name, nullString(c.Description), nullString(c.Website),
			nullString(c.Logo), formatTime(c.CreatedAt), formatTime(c.UpdatedAt)); err != nil {
			return fmt.Errorf("client %s: %w", c.ID, err)
		}
	}
	return nil
}

func saveProjects(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO projects (id, client_id, name, description, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, p := range state.Projects {
		if _, err := stmt.ExecContext(ctx, p.ID, p.ClientID, p.Name, nullString(p.Description),
			formatTime(p.CreatedAt), formatTime(p.UpdatedAt)); err != nil {
			return fmt.Errorf("project %s: %w", p.ID, err)
		}
	}
	return nil
}

func saveJourneys(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO journeys (id, project_id, name, description, row_order, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	customStmt, err := tx.PrepareContext(ctx,
		"INSERT INTO journey_custom_rows (journey_id, id, label, position) VALUES (?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer customStmt.Close()

	for _, j := range state.Journeys {
		rowOrder, err := encodeList(j.RowOrder)
		if err != nil {
			return fmt.Errorf("journey %s: %w", j.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, j.ID, j.ProjectID, j.Name, nullString(j.Description), rowOrder,
			formatTime(j.CreatedAt), formatTime(j.UpdatedAt)); err != nil {
			return fmt.Errorf("journey %s: %w", j.ID, err)
		}
		for i, r := range j.CustomRows {
			if _, err := customStmt.ExecContext(ctx, j.ID, r.ID, r.Label, i); err != nil {
				return fmt.Errorf("journey %s custom row %s: %w", j.ID, r.ID, err)
			}
		}
	}
	return nil
}

func savePhases(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO phases (id, journey_id, position, title, description, struggles, internal_struggles,
			front_stage_actions, back_stage_actions, systems, related_processes, channels,
			related_documents, opportunities_text, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	jobStmt, err := tx.PrepareContext(ctx, "INSERT INTO phase_jobs (phase_id, job_id, position) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer jobStmt.Close()

	valueStmt, err := tx.PrepareContext(ctx, "INSERT INTO phase_custom_values (phase_id, row_id, value) VALUES (?, ?, ?)")
	if err != nil {
		return err
	}
	defer valueStmt.Close()

	for _, p := range state.Phases {
		systems, err := encodeList(p.Systems)
		if err != nil {
			return fmt.Errorf("phase %s: %w", p.ID, err)
		}
		channels, err := encodeList(p.Channels)
		if err != nil {
			return fmt.Errorf("phase %s: %w", p.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, p.ID, p.JourneyID, p.Order, p.Title, nullString(p.Description),
			nullString(p.Struggles), nullString(p.InternalStruggles), nullString(p.FrontStageActions),
			nullString(p.BackStageActions), systems, nullString(p.RelatedProcesses), channels,
			nullString(p.RelatedDocuments), nullString(p.Opportunities),
			formatTime(p.CreatedAt), formatTime(p.UpdatedAt)); err != nil {
			return fmt.Errorf("phase %s: %w", p.ID, err)
		}
		for i, jobID := range p.JobIDs {
			if _, err := jobStmt.ExecContext(ctx, p.ID, jobID, i); err != nil {
				return fmt.Errorf("phase %s job %s: %w", p.ID, jobID, err)
			}
		}
		for rowID, value := range p.CustomRowValues {
			if _, err := valueStmt.ExecContext(ctx, p.ID, rowID, value); err != nil {
				return fmt.Errorf("phase %s row %s: %w", p.ID, rowID, err)
			}
		}
	}
	return nil
}

func saveJobs(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO jobs (id, client_id, name, description, tag, priority, struggles, dimensions, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, j := range state.Jobs {
		var priority sql.NullString
		if j.Priority != nil {
			priority = sql.NullString{String: string(*j.Priority), Valid: true}
		}
		struggles, err := encodeList(j.Struggles)
		if err != nil {
			return fmt.Errorf("job %s: %w", j.ID, err)
		}
		dimensions, err := encodeList(j.Dimensions)
		if err != nil {
			return fmt.Errorf("job %s: %w", j.ID, err)
		}
		if _, err := stmt.ExecContext(ctx, j.ID, j.ClientID, j.Name, nullString(j.Description), string(j.Tag),
			priority, struggles, dimensions, formatTime(j.CreatedAt), formatTime(j.UpdatedAt)); err != nil {
			return fmt.Errorf("job %s: %w", j.ID, err)
		}
	}
	return nil
}

func saveInsights(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO insights (id, client_id, title, description, priority, display_order) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, in := range state.Insights {
		var order sql.NullInt64
		if in.Order != nil {
			order = sql.NullInt64{Int64: int64(*in.Order), Valid: true}
		}
		if _, err := stmt.ExecContext(ctx, in.ID, in.ClientID, in.Title, nullString(in.Description),
			string(in.Priority), order); err != nil {
			return fmt.Errorf("insight %s: %w", in.ID, err)
		}
	}
	return nil
}

func saveOpportunities(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO opportunities (id, client_id, project_id, journey_id, phase_id, stage, stage_order, name,
			priority, description, impact, linked_job_ids, is_priority, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range state.Opportunities {
		linked, err := encodeList(o.LinkedJobIDs)
		if err != nil {
			return fmt.Errorf("opportunity %s: %w", o.ID, err)
		}
		isPriority := 0
		if o.IsPriority {
			isPriority = 1
		}
		if _, err := stmt.ExecContext(ctx, o.ID, nullString(o.ClientID), nullString(o.ProjectID),
			nullString(o.JourneyID), nullString(o.PhaseID), string(o.Stage), o.StageOrder, o.Name,
			string(o.Priority), nullString(o.Description), nullString(o.Impact), linked, isPriority,
			formatTime(o.CreatedAt), formatTime(o.UpdatedAt)); err != nil {
			return fmt.Errorf("opportunity %s: %w", o.ID, err)
		}
	}
	return nil
}

func saveCellComments(ctx context.Context, tx *sql.Tx, state *models.AppState) error {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO cell_comments (id, phase_id, row_id, author, body, created_at) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range state.CellComments {
		if _, err := stmt.ExecContext(ctx, c.ID, c.PhaseID, c.RowID, nullString(c.Author), c.Body,
			formatTime(c.CreatedAt)); err != nil {
			return fmt.Errorf("cell comment %s: %w", c.ID, err)
		}
	}
	return nil
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func formatTime(t time.Time) sql.NullString {
	if t.IsZero() {
		return sql.NullString{}
	}
	return sql.NullString{String: t.UTC().Format(time.RFC3339Nano), Valid: true}
}

func parseTime(ns sql.NullString) time.Time {
	if !ns.Valid {
		return time.Time{}
	}
	t, err := time.Parse(time.RFC3339Nano, ns.String)
	if err != nil {
		return time.Time{}
	}
	return t
}

// encodeList stores nil as NULL so an absent list stays distinguishable from an empty one.
func encodeList(list []string) (sql.NullString, error) {
	if list == nil {
		return sql.NullString{}, nil
	}
	data, err := json.Marshal(list)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(data), Valid: true}, nil
}

func decodeList(ns sql.NullString) ([]string, error) {
	if !ns.Valid {
		return nil, nil
	}
	var list []string
	if err := json.Unmarshal([]byte(ns.String), &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []string{}
	}
	return list, nil
}

// Ensure SnapshotStore implements the interface.
var _ secondary.SnapshotStore = (*SnapshotStore)(nil)
