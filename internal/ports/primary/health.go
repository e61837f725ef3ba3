package primary

import "context"

// HealthService defines the primary port for health reporting.
type HealthService interface {
	// JourneyHealth scores each phase of a journey and their average.
	JourneyHealth(ctx context.Context, journeyID string) (*JourneyHealth, error)

	// ClientHealth aggregates journey averages per project and for the client.
	ClientHealth(ctx context.Context, clientID string) (*ClientHealth, error)

	// Report returns ClientHealth for every client.
	Report(ctx context.Context) ([]*ClientHealth, error)
}

// Score is a health value with its display band. A nil *Score means there is
// nothing to average and no indicator should be shown.
type Score struct {
	Value int
	Band  string
}

// PhaseHealth is the scored breakdown of one phase.
type PhaseHealth struct {
	PhaseID            string
	Title              string
	Score              Score
	StrugglesPenalty   int
	InternalPenalty    int
	NoJobsPenalty      int
	OpportunityPenalty int
	JobCount           int
	OpportunityCount   int
}

// JourneyHealth is the health of one journey.
type JourneyHealth struct {
	JourneyID string
	Name      string
	Average   *Score
	Phases    []*PhaseHealth
}

// ProjectHealth is the health of one project.
type ProjectHealth struct {
	ProjectID string
	Name      string
	Average   *Score
	Journeys  []*JourneyHealth
}

// ClientHealth is the health of one client.
type ClientHealth struct {
	ClientID string
	Name     string
	Average  *Score
	Projects []*ProjectHealth
}
