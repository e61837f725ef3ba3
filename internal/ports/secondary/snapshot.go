// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"

	"github.com/example/journeymap/internal/models"
)

// ErrNotFound is wrapped by adapters and services when an id does not resolve.
var ErrNotFound = errors.New("not found")

// SnapshotStore defines the secondary port for workspace persistence.
// The store deals in whole snapshots; there are no per-entity writes.
type SnapshotStore interface {
	// Load returns the current snapshot. An empty store yields an empty snapshot.
	Load(ctx context.Context) (*models.AppState, error)

	// Save replaces the stored snapshot with the given one.
	Save(ctx context.Context, state *models.AppState) error
}

// SnapshotLocator opens a file-backed snapshot store at path.
type SnapshotLocator func(path string) SnapshotStore

// ExportSink receives finished exports.
type ExportSink interface {
	// Write stores data under filename and returns where it ended up.
	Write(ctx context.Context, filename, mimeType string, data []byte) (string, error)
}
