package app

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/example/journeymap/internal/core/rows"
	"github.com/example/journeymap/internal/core/tabular"
	"github.com/example/journeymap/internal/ports/primary"
	"github.com/example/journeymap/internal/ports/secondary"
)

// ExportServiceImpl implements the ExportService interface.
type ExportServiceImpl struct {
	store  secondary.SnapshotStore
	sink   secondary.ExportSink
	logger *zap.Logger
}

// NewExportService creates a new ExportService with injected dependencies.
func NewExportService(store secondary.SnapshotStore, sink secondary.ExportSink, logger *zap.Logger) *ExportServiceImpl {
	return &ExportServiceImpl{
		store:  store,
		sink:   sink,
		logger: logger,
	}
}

// ExportJourneyCSV renders a journey map as CSV.
func (s *ExportServiceImpl) ExportJourneyCSV(ctx context.Context, req primary.ExportRequest) (*primary.ExportResult, error) {
	state, err := loadState(ctx, s.store)
	if err != nil {
		return nil, err
	}

	journey := state.Journey(req.JourneyID)
	if journey == nil {
		return nil, fmt.Errorf("journey %s: %w", req.JourneyID, secondary.ErrNotFound)
	}

	phases := state.PhasesForJourney(journey.ID)
	data := tabular.BuildCSV(phases, journey, state.Opportunities, state.Jobs)

	filename := req.Filename
	if filename == "" {
		filename = exportFilename(journey.Name, journey.ID)
	}

	s.logger.Debug("journey exported",
		zap.String("journey", journey.ID),
		zap.Int("phases", len(phases)),
		zap.Int("bytes", len(data)))

	return &primary.ExportResult{
		Data:     []byte(data),
		Filename: filename,
		MimeType: tabular.MimeType,
		Rows:     len(rows.ResolveRowOrder(journey)),
		Phases:   len(phases),
	}, nil
}

// Download hands a finished export to the export sink and returns its location.
func (s *ExportServiceImpl) Download(ctx context.Context, result *primary.ExportResult) (string, error) {
	if result == nil {
		return "", fmt.Errorf("nothing to download")
	}
	path, err := s.sink.Write(ctx, result.Filename, result.MimeType, result.Data)
	if err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	s.logger.Info("export written", zap.String("path", path))
	return path, nil
}

// exportFilename turns a journey name into a file name, falling back to the id.
func exportFilename(name, id string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	slug := strings.TrimSuffix(b.String(), "-")
	if slug == "" {
		slug = id
	}
	return slug + ".csv"
}

// Ensure ExportServiceImpl implements the interface.
var _ primary.ExportService = (*ExportServiceImpl)(nil)
