package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/example/journeymap/internal/core/health"
	"github.com/example/journeymap/internal/models"
	"github.com/example/journeymap/internal/ports/primary"
	"github.com/example/journeymap/internal/ports/secondary"
)

// HealthServiceImpl implements the HealthService interface.
type HealthServiceImpl struct {
	store  secondary.SnapshotStore
	logger *zap.Logger
}

// NewHealthService creates a new HealthService with injected dependencies.
func NewHealthService(store secondary.SnapshotStore, logger *zap.Logger) *HealthServiceImpl {
	return &HealthServiceImpl{
		store:  store,
		logger: logger,
	}
}

// JourneyHealth scores each phase of a journey and their average.
func (s *HealthServiceImpl) JourneyHealth(ctx context.Context, journeyID string) (*primary.JourneyHealth, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}

	journey := state.Journey(journeyID)
	if journey == nil {
		return nil, fmt.Errorf("journey %s: %w", journeyID, secondary.ErrNotFound)
	}
	return journeyHealth(state, journey), nil
}

// ClientHealth aggregates journey averages per project and for the client.
func (s *HealthServiceImpl) ClientHealth(ctx context.Context, clientID string) (*primary.ClientHealth, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}

	client := state.Client(clientID)
	if client == nil {
		return nil, fmt.Errorf("client %s: %w", clientID, secondary.ErrNotFound)
	}
	return clientHealth(state, client), nil
}

// Report returns ClientHealth for every client.
func (s *HealthServiceImpl) Report(ctx context.Context) ([]*primary.ClientHealth, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}

	out := make([]*primary.ClientHealth, len(state.Clients))
	for i := range state.Clients {
		out[i] = clientHealth(state, &state.Clients[i])
	}
	s.logger.Debug("health report built", zap.Int("clients", len(out)))
	return out, nil
}

func clientHealth(state *models.AppState, client *models.Client) *primary.ClientHealth {
	out := &primary.ClientHealth{
		ClientID: client.ID,
		Name:     client.Name,
		Average:  toScore(health.ClientHealth(state, client.ID)),
	}
	for _, p := range state.ProjectsForClient(client.ID) {
		ph := &primary.ProjectHealth{
			ProjectID: p.ID,
			Name:      p.Name,
			Average:   toScore(health.ProjectHealth(state, p.ID)),
		}
		for _, j := range state.JourneysForProject(p.ID) {
			ph.Journeys = append(ph.Journeys, journeyHealth(state, &j))
		}
		out.Projects = append(out.Projects, ph)
	}
	return out
}

func journeyHealth(state *models.AppState, journey *models.Journey) *primary.JourneyHealth {
	out := &primary.JourneyHealth{JourneyID: journey.ID, Name: journey.Name}

	phases := state.PhasesForJourney(journey.ID)
	scores := make([]int, 0, len(phases))
	for _, p := range phases {
		b := health.Explain(p, state.OpportunitiesForPhase(p.ID), state.JobsForPhase(p))
		scores = append(scores, b.Score)
		out.Phases = append(out.Phases, &primary.PhaseHealth{
			PhaseID:            p.ID,
			Title:              p.Title,
			Score:              primary.Score{Value: b.Score, Band: string(health.BandFor(b.Score))},
			StrugglesPenalty:   b.Struggles,
			InternalPenalty:    b.InternalStruggles,
			NoJobsPenalty:      b.NoJobs,
			OpportunityPenalty: b.OpportunityPenalty,
			JobCount:           b.JobCount,
			OpportunityCount:   b.Opportunities.Total(),
		})
	}
	out.Average = toScore(health.Average(scores))
	return out
}

func toScore(value int, ok bool) *primary.Score {
	if !ok {
		return nil
	}
	return &primary.Score{Value: value, Band: string(health.BandFor(value))}
}

// Ensure HealthServiceImpl implements the interface.
var _ primary.HealthService = (*HealthServiceImpl)(nil)
