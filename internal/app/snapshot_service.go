package app

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/example/journeymap/internal/models"
	"github.com/example/journeymap/internal/ports/primary"
	"github.com/example/journeymap/internal/ports/secondary"
)

// SnapshotServiceImpl implements the SnapshotService interface.
type SnapshotServiceImpl struct {
	store  secondary.SnapshotStore
	open   secondary.SnapshotLocator
	newID  func() string
	now    func() time.Time
	logger *zap.Logger
}

// NewSnapshotService creates a new SnapshotService with injected dependencies.
func NewSnapshotService(store secondary.SnapshotStore, open secondary.SnapshotLocator, logger *zap.Logger) *SnapshotServiceImpl {
	return &SnapshotServiceImpl{
		store:  store,
		open:   open,
		newID:  NewID,
		now:    time.Now,
		logger: logger,
	}
}

// Import replaces the workspace with the snapshot file at path.
func (s *SnapshotServiceImpl) Import(ctx context.Context, path string) (*primary.SnapshotStats, error) {
	state, err := s.open(path).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot %s: %w", path, err)
	}
	if err := s.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save snapshot: %w", err)
	}
	stats := statsOf(state)
	s.logger.Info("snapshot imported",
		zap.String("path", path),
		zap.Int("clients", stats.Clients),
		zap.Int("journeys", stats.Journeys))
	return stats, nil
}

// Dump writes the workspace to a snapshot file at path.
func (s *SnapshotServiceImpl) Dump(ctx context.Context, path string) (*primary.SnapshotStats, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}
	if err := s.open(path).Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	s.logger.Info("snapshot dumped", zap.String("path", path))
	return statsOf(state), nil
}

// SeedDemo replaces the workspace with generated sample data.
func (s *SnapshotServiceImpl) SeedDemo(ctx context.Context) (*primary.SnapshotStats, error) {
	state := DemoState(s.newID, s.now().UTC())
	if err := s.store.Save(ctx, state); err != nil {
		return nil, fmt.Errorf("failed to save demo snapshot: %w", err)
	}
	s.logger.Info("demo data seeded")
	return statsOf(state), nil
}

func statsOf(state *models.AppState) *primary.SnapshotStats {
	return &primary.SnapshotStats{
		Clients:       len(state.Clients),
		Projects:      len(state.Projects),
		Journeys:      len(state.Journeys),
		Phases:        len(state.Phases),
		Jobs:          len(state.Jobs),
		Insights:      len(state.Insights),
		Opportunities: len(state.Opportunities),
		CellComments:  len(state.CellComments),
	}
}

// Ensure SnapshotServiceImpl implements the interface.
var _ primary.SnapshotService = (*SnapshotServiceImpl)(nil)
