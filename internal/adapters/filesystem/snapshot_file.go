// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/example/journeymap/internal/models"
	"github.com/example/journeymap/internal/ports/secondary"
)

// SnapshotFile implements secondary.SnapshotStore on a single JSON file.
// The layout matches the AppState export of the hosted app.
type SnapshotFile struct {
	path string
}

// NewSnapshotFile creates a snapshot store backed by path.
func NewSnapshotFile(path string) *SnapshotFile {
	return &SnapshotFile{path: path}
}

// OpenSnapshotFile adapts NewSnapshotFile to secondary.SnapshotLocator.
func OpenSnapshotFile(path string) secondary.SnapshotStore {
	return NewSnapshotFile(path)
}

// Path returns the backing file path.
func (f *SnapshotFile) Path() string {
	return f.path
}

// Load reads the snapshot. A missing file is an empty snapshot.
func (f *SnapshotFile) Load(ctx context.Context) (*models.AppState, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return &models.AppState{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	var state models.AppState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", f.path, err)
	}
	return &state, nil
}

// Save writes the snapshot through a temp file so readers never see half a file.
func (f *SnapshotFile) Save(ctx context.Context, state *models.AppState) error {
	if err := os.MkdirAll(filepath.Dir(f.path), 0755); err != nil {
		return fmt.Errorf("failed to create snapshot dir: %w", err)
	}

	data, err := json.MarshalIndent(withEmptySlices(state), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".snapshot-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		return fmt.Errorf("failed to replace snapshot: %w", err)
	}
	return nil
}

// withEmptySlices keeps "[]" rather than "null" in the written file.
func withEmptySlices(s *models.AppState) models.AppState {
	out := *s
	if out.Clients == nil {
		out.Clients = []models.Client{}
	}
	if out.Projects == nil {
		out.Projects = []models.Project{}
	}
	if out.Journeys == nil {
		out.Journeys = []models.Journey{}
	}
	if out.Phases == nil {
		out.Phases = []models.Phase{}
	}
	if out.Jobs == nil {
		out.Jobs = []models.Job{}
	}
	if out.Insights == nil {
		out.Insights = []models.Insight{}
	}
	if out.Opportunities == nil {
		out.Opportunities = []models.Opportunity{}
	}
	if out.CellComments == nil {
		out.CellComments = []models.CellComment{}
	}
	return out
}

// Ensure SnapshotFile implements the interface.
var _ secondary.SnapshotStore = (*SnapshotFile)(nil)
