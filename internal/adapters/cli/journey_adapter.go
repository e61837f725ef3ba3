// Package cli provides thin CLI adapters that translate between CLI concerns
// and application services. Adapters handle output formatting but delegate
// business logic to services.
package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/journeymap/internal/ports/primary"
)

// JourneyAdapter is a thin adapter that translates CLI operations to JourneyService calls.
type JourneyAdapter struct {
	service primary.JourneyService
	out     io.Writer
}

// NewJourneyAdapter creates a new JourneyAdapter with the given service.
func NewJourneyAdapter(service primary.JourneyService, out io.Writer) *JourneyAdapter {
	return &JourneyAdapter{
		service: service,
		out:     out,
	}
}

// ListClients prints every client with project and journey counts.
func (a *JourneyAdapter) ListClients(ctx context.Context) ([]*primary.ClientSummary, error) {
	clients, err := a.service.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	if len(clients) == 0 {
		fmt.Fprintln(a.out, "No clients found.")
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Import a snapshot or load sample data:")
		fmt.Fprintln(a.out, "  jmap import workspace.json")
		fmt.Fprintln(a.out, "  jmap demo")
		return clients, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPROJECTS\tJOURNEYS")
	fmt.Fprintln(w, "--\t----\t--------\t--------")
	for _, c := range clients {
		fmt.Fprintf(w, "%s\t%s\t%d\t%d\n", c.ID, c.Name, c.ProjectCount, c.JourneyCount)
	}
	w.Flush()
	return clients, nil
}

// ShowTree prints a client with its projects and journeys.
func (a *JourneyAdapter) ShowTree(ctx context.Context, clientID string) (*primary.ClientTree, error) {
	tree, err := a.service.ClientTree(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}

	fmt.Fprintf(a.out, "\nClient: %s (%s)\n", tree.Name, tree.ID)
	if len(tree.Projects) == 0 {
		fmt.Fprintln(a.out, "  (no projects)")
	}
	for _, p := range tree.Projects {
		fmt.Fprintf(a.out, "├── %s %s\n", p.Name, color.New(color.FgCyan).Sprintf("[%s]", p.ID))
		for _, j := range p.Journeys {
			fmt.Fprintf(a.out, "│   └── %s %s (%d phases)\n", j.Name, color.New(color.FgCyan).Sprintf("[%s]", j.ID), j.PhaseCount)
		}
	}
	fmt.Fprintln(a.out)
	return tree, nil
}

// ShowRows prints the resolved row layout of a journey.
func (a *JourneyAdapter) ShowRows(ctx context.Context, journeyID string) (*primary.RowLayout, error) {
	layout, err := a.service.ResolveRows(ctx, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve rows: %w", err)
	}

	fmt.Fprintf(a.out, "\nJourney: %s (%s)\n\n", layout.JourneyName, layout.JourneyID)
	w := tabwriter.NewWriter(a.out, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "#\tLABEL\tID\tKIND")
	fmt.Fprintln(w, "-\t-----\t--\t----")
	for i, r := range layout.Rows {
		kind := "built-in"
		if r.IsCustom {
			kind = "custom"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, r.Label, r.ID, kind)
	}
	w.Flush()
	return layout, nil
}
