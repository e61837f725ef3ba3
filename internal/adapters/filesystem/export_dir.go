package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/example/journeymap/internal/ports/secondary"
)

// ExportDir implements secondary.ExportSink by writing files into a directory.
type ExportDir struct {
	dir string
}

// NewExportDir creates an export sink rooted at dir.
func NewExportDir(dir string) *ExportDir {
	return &ExportDir{dir: dir}
}

// Write stores data as dir/filename, overwriting an existing file.
// The MIME type is not persisted; files carry it through their extension.
func (e *ExportDir) Write(ctx context.Context, filename, mimeType string, data []byte) (string, error) {
	name := filepath.Base(strings.TrimSpace(filename))
	if name == "" || name == "." || name == string(filepath.Separator) {
		return "", fmt.Errorf("invalid export filename %q", filename)
	}

	if err := os.MkdirAll(e.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create export dir: %w", err)
	}

	path := filepath.Join(e.dir, name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}

// Ensure ExportDir implements the interface.
var _ secondary.ExportSink = (*ExportDir)(nil)
