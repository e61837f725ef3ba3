package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/journeymap/internal/core/rows"
	"github.com/example/journeymap/internal/models"
	"github.com/example/journeymap/internal/ports/primary"
	"github.com/example/journeymap/internal/ports/secondary"
)

// JourneyServiceImpl implements the JourneyService interface.
type JourneyServiceImpl struct {
	store  secondary.SnapshotStore
	logger *zap.Logger
}

// NewJourneyService creates a new JourneyService with injected dependencies.
func NewJourneyService(store secondary.SnapshotStore, logger *zap.Logger) *JourneyServiceImpl {
	return &JourneyServiceImpl{
		store:  store,
		logger: logger,
	}
}

// ListClients returns every client with its project and journey counts.
func (s *JourneyServiceImpl) ListClients(ctx context.Context) ([]*primary.ClientSummary, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]*primary.ClientSummary, len(state.Clients))
	for i, c := range state.Clients {
		summary := &primary.ClientSummary{ID: c.ID, Name: c.Name}
		for _, p := range state.ProjectsForClient(c.ID) {
			summary.ProjectCount++
			summary.JourneyCount += len(state.JourneysForProject(p.ID))
		}
		out[i] = summary
	}
	return out, nil
}

// ClientTree returns a client with its projects and journeys.
func (s *JourneyServiceImpl) ClientTree(ctx context.Context, clientID string) (*primary.ClientTree, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}

	client := state.Client(clientID)
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", clientID, secondary.ErrNotFound)
	}

	tree := &primary.ClientTree{ID: client.ID, Name: client.Name}
	for _, p := range state.ProjectsForClient(client.ID) {
		node := &primary.ProjectNode{ID: p.ID, Name: p.Name}
		for _, j := range state.JourneysForProject(p.ID) {
			node.Journeys = append(node.Journeys, &primary.JourneyNode{
				ID:         j.ID,
				Name:       j.Name,
				PhaseCount: len(state.PhasesForJourney(j.ID)),
			})
		}
		tree.Projects = append(tree.Projects, node)
	}
	return tree, nil
}

// ResolveRows returns the row layout of a journey.
func (s *JourneyServiceImpl) ResolveRows(ctx context.Context, journeyID string) (*primary.RowLayout, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}

	journey := state.Journey(journeyID)
	if journey == nil {
		return nil, fmt.Errorf("journey %s: %w", journeyID, secondary.ErrNotFound)
	}

	descriptors := rows.ResolveRowOrder(journey)
	if dropped := droppedRowIDs(journey, descriptors); len(dropped) > 0 {
		s.logger.Debug("stored row order references unknown rows",
			zap.String("journey", journeyID),
			zap.Strings("dropped", dropped))
	}

	layout := &primary.RowLayout{JourneyID: journey.ID, JourneyName: journey.Name}
	for _, d := range descriptors {
		layout.Rows = append(layout.Rows, &primary.Row{ID: d.ID, Label: d.Label, IsCustom: d.IsCustom})
	}
	return layout, nil
}

// droppedRowIDs lists stored row ids that did not survive resolution.
func droppedRowIDs(journey *models.Journey, descriptors []rows.Descriptor) []string {
	kept := make(map[string]bool, len(descriptors))
	for _, d := range descriptors {
		kept[d.ID] = true
	}
	var dropped []string
	for _, id := range journey.RowOrder {
		if !kept[id] {
			dropped = append(dropped, id)
		}
	}
	return dropped
}

func loadState(ctx context.Context, store secondary.SnapshotStore) (*models.AppState, error) {
	state, err := store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}
	return state, nil
}

// Ensure JourneyServiceImpl implements the interface.
var _ primary.JourneyService = (*JourneyServiceImpl)(nil)
