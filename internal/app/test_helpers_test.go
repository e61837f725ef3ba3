package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/journeymap/internal/models"
	"github.com/example/journeymap/internal/ports/secondary"
)

// Ensure mocks implement the interfaces
var (
	_ secondary.SnapshotStore = (*mockSnapshotStore)(nil)
	_ secondary.ExportSink    = (*mockExportSink)(nil)
)

// mockSnapshotStore implements secondary.SnapshotStore for testing.
type mockSnapshotStore struct {
	state   *models.AppState
	saved   *models.AppState
	loadErr error
	saveErr error
}

func newMockSnapshotStore(state *models.AppState) *mockSnapshotStore {
	return &mockSnapshotStore{state: state}
}

func (m *mockSnapshotStore) Load(ctx context.Context) (*models.AppState, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.state == nil {
		return &models.AppState{}, nil
	}
	return m.state, nil
}

func (m *mockSnapshotStore) Save(ctx context.Context, state *models.AppState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saved = state
	m.state = state
	return nil
}

// mockExportSink implements secondary.ExportSink for testing.
type mockExportSink struct {
	files    map[string][]byte
	mimeType string
	writeErr error
}

func newMockExportSink() *mockExportSink {
	return &mockExportSink{files: make(map[string][]byte)}
}

func (m *mockExportSink) Write(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	if m.writeErr != nil {
		return "", m.writeErr
	}
	m.files[filename] = data
	m.mimeType = mimeType
	return "/tmp/exports/" + filename, nil
}

// sequentialIDs returns an id generator yielding id-1, id-2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

var demoTime = time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

func demoState() *models.AppState {
	return DemoState(sequentialIDs(), demoTime)
}

func journeyByName(s *models.AppState, name string) *models.Journey {
	for i := range s.Journeys {
		if s.Journeys[i].Name == name {
			return &s.Journeys[i]
		}
	}
	return nil
}

func testLogger() *zap.Logger {
	return zap.NewNop()
}
