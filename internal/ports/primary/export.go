package primary

import "context"

// ExportService defines the primary port for journey exports.
type ExportService interface {
	// ExportJourneyCSV renders a journey map as CSV.
	ExportJourneyCSV(ctx context.Context, req ExportRequest) (*ExportResult, error)

	// Download hands a finished export to the export sink and returns its location.
	Download(ctx context.Context, result *ExportResult) (string, error)
}

// ExportRequest contains parameters for a CSV export.
type ExportRequest struct {
	JourneyID string
	Filename  string // derived from the journey name when empty
}

// ExportResult contains the export output.
type ExportResult struct {
	Data     []byte
	Filename string
	MimeType string
	Rows     int
	Phases   int
}
