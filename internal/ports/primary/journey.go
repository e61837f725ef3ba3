// Package primary defines the primary ports (driving adapters) of the application.
package primary

import "context"

// JourneyService defines the primary port for browsing the journey tree.
type JourneyService interface {
	// ListClients returns every client with its project and journey counts.
	ListClients(ctx context.Context) ([]*ClientSummary, error)

	// ClientTree returns a client with its projects and journeys.
	ClientTree(ctx context.Context, clientID string) (*ClientTree, error)

	// ResolveRows returns the row layout used to display and export a journey.
	ResolveRows(ctx context.Context, journeyID string) (*RowLayout, error)
}

// ClientSummary is a client at the port boundary.
type ClientSummary struct {
	ID           string
	Name         string
	ProjectCount int
	JourneyCount int
}

// ClientTree is a client with its nested projects.
type ClientTree struct {
	ID       string
	Name     string
	Projects []*ProjectNode
}

// ProjectNode is a project with its journeys.
type ProjectNode struct {
	ID       string
	Name     string
	Journeys []*JourneyNode
}

// JourneyNode is a journey leaf in the client tree.
type JourneyNode struct {
	ID         string
	Name       string
	PhaseCount int
}

// RowLayout is the resolved row order of a journey.
type RowLayout struct {
	JourneyID   string
	JourneyName string
	Rows        []*Row
}

// Row is one resolved row.
type Row struct {
	ID       string
	Label    string
	IsCustom bool
}
