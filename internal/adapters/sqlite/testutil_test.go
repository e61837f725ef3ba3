// Package sqlite_test contains integration tests for the SQLite adapters.
//
// All test databases are built from db.GetSchemaSQL(). Do not declare tables
// in test files; use setupTestDB() and the fixtures below.
package sqlite_test

import (
	"database/sql"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/journeymap/internal/db"
	"github.com/example/journeymap/internal/models"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	// Every pooled connection to :memory: is a separate database.
	testDB.SetMaxOpenConns(1)

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

var fixtureTime = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// fixtureState is a small but complete snapshot touching every table.
func fixtureState() *models.AppState {
	high := models.PriorityHigh
	order := 2
	return &models.AppState{
		Clients: []models.Client{
			{ID: "cl-1", Name: "Acme Homes", Website: "https://acme.example", CreatedAt: fixtureTime, UpdatedAt: fixtureTime},
		},
		Projects: []models.Project{
			{ID: "pr-1", ClientID: "cl-1", Name: "Buyers", Description: "First-time buyers", CreatedAt: fixtureTime},
		},
		Journeys: []models.Journey{
			{
				ID:         "jr-1",
				ProjectID:  "pr-1",
				Name:       "Buying a home",
				RowOrder:   []string{"struggles", "c1", "customerJobs"},
				CustomRows: []models.CustomRow{{ID: "c1", Label: "Emotions"}, {ID: "c2", Label: ""}},
			},
			{ID: "jr-2", ProjectID: "pr-1", Name: "Empty order", RowOrder: []string{}},
		},
		Phases: []models.Phase{
			{
				ID:              "ph-1",
				JourneyID:       "jr-1",
				Order:           0,
				Title:           "Search",
				Struggles:       "Too many listings",
				Systems:         []string{"CRM", "Portal"},
				Channels:        []string{},
				JobIDs:          []string{"j1", "gone", "j2"},
				CustomRowValues: map[string]string{"c1": "anxious", "c2": "x"},
				CreatedAt:       fixtureTime,
			},
			{ID: "ph-2", JourneyID: "jr-1", Order: 1, Title: "Visit", Opportunities: "legacy text"},
		},
		Jobs: []models.Job{
			{ID: "j1", ClientID: "cl-1", Name: "Find a home", Tag: models.JobTagFunctional, Priority: &high, Struggles: []string{"time"}},
			{ID: "j2", ClientID: "cl-1", Name: "Feel confident", Tag: models.JobTagEmotional},
		},
		Insights: []models.Insight{
			{ID: "in-1", ClientID: "cl-1", Title: "Buyers compare on mobile", Priority: models.PriorityMedium, Order: &order},
			{ID: "in-2", ClientID: "cl-1", Title: "Unordered", Priority: models.PriorityLow},
		},
		Opportunities: []models.Opportunity{
			{
				ID: "o1", ClientID: "cl-1", ProjectID: "pr-1", JourneyID: "jr-1", PhaseID: "ph-1",
				Stage: models.StageHorizon1, StageOrder: 2, Name: "Saved searches", Priority: models.PriorityHigh,
				LinkedJobIDs: []string{"j1"}, IsPriority: true, CreatedAt: fixtureTime,
			},
			{ID: "o2", PhaseID: "ph-404", Stage: models.StageBacklog, Name: "Orphan", Priority: models.PriorityLow},
		},
		CellComments: []models.CellComment{
			{ID: "cc-1", PhaseID: "ph-1", RowID: "struggles", Author: "sam", Body: "Check with sales", CreatedAt: fixtureTime},
		},
	}
}
