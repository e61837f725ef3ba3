package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/journeymap/internal/ports/primary"
)

// SnapshotAdapter translates import, dump and demo commands to SnapshotService calls.
type SnapshotAdapter struct {
	service primary.SnapshotService
	out     io.Writer
}

// NewSnapshotAdapter creates a new SnapshotAdapter with the given service.
func NewSnapshotAdapter(service primary.SnapshotService, out io.Writer) *SnapshotAdapter {
	return &SnapshotAdapter{
		service: service,
		out:     out,
	}
}

// Import loads a snapshot file into the workspace.
func (a *SnapshotAdapter) Import(ctx context.Context, path string) error {
	stats, err := a.service.Import(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Imported %s\n", path)
	a.printStats(stats)
	return nil
}

// Dump writes the workspace to a snapshot file.
func (a *SnapshotAdapter) Dump(ctx context.Context, path string) error {
	stats, err := a.service.Dump(ctx, path)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "✓ Wrote %s\n", path)
	a.printStats(stats)
	return nil
}

// Demo replaces the workspace with sample data.
func (a *SnapshotAdapter) Demo(ctx context.Context) error {
	stats, err := a.service.SeedDemo(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, "✓ Loaded demo workspace")
	a.printStats(stats)
	return nil
}

func (a *SnapshotAdapter) printStats(s *primary.SnapshotStats) {
	fmt.Fprintf(a.out, "  %d clients, %d projects, %d journeys, %d phases\n",
		s.Clients, s.Projects, s.Journeys, s.Phases)
	fmt.Fprintf(a.out, "  %d jobs, %d insights, %d opportunities, %d comments\n",
		s.Jobs, s.Insights, s.Opportunities, s.CellComments)
}
