package primary

import "context"

// SnapshotService defines the primary port for moving whole snapshots in and out.
type SnapshotService interface {
	// Import replaces the workspace with the snapshot file at path.
	Import(ctx context.Context, path string) (*SnapshotStats, error)

	// Dump writes the workspace to a snapshot file at path.
	Dump(ctx context.Context, path string) (*SnapshotStats, error)

	// SeedDemo replaces the workspace with generated sample data.
	SeedDemo(ctx context.Context) (*SnapshotStats, error)
}

// SnapshotStats counts the entities in a snapshot.
type SnapshotStats struct {
	Clients       int
	Projects      int
	Journeys      int
	Phases        int
	Jobs          int
	Insights      int
	Opportunities int
	CellComments  int
}
