package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/example/journeymap/internal/core/tabular"
	"github.com/example/journeymap/internal/ports/primary"
)

// ExportOptions controls where an export goes.
type ExportOptions struct {
	Filename string
	Stdout   bool // write CSV to out instead of the export sink
	Verify   bool // re-parse the CSV and check its shape before writing
}

// ExportAdapter translates export commands to ExportService calls.
type ExportAdapter struct {
	service primary.ExportService
	out     io.Writer
}

// NewExportAdapter creates a new ExportAdapter with the given service.
func NewExportAdapter(service primary.ExportService, out io.Writer) *ExportAdapter {
	return &ExportAdapter{
		service: service,
		out:     out,
	}
}

// Export renders a journey as CSV and either prints it or writes it through the sink.
func (a *ExportAdapter) Export(ctx context.Context, journeyID string, opts ExportOptions) (*primary.ExportResult, error) {
	result, err := a.service.ExportJourneyCSV(ctx, primary.ExportRequest{
		JourneyID: journeyID,
		Filename:  opts.Filename,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to export journey: %w", err)
	}

	if opts.Verify {
		if err := verifyExport(result); err != nil {
			return nil, err
		}
	}

	if opts.Stdout {
		if _, err := a.out.Write(result.Data); err != nil {
			return nil, fmt.Errorf("failed to write export: %w", err)
		}
		return result, nil
	}

	path, err := a.service.Download(ctx, result)
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(a.out, "✓ Exported %d rows x %d phases to %s\n", result.Rows, result.Phases, path)
	return result, nil
}

// verifyExport parses the CSV back and checks it has a header plus one record
// per row, each with one cell per phase.
func verifyExport(result *primary.ExportResult) error {
	records, err := tabular.ParseCSV(string(result.Data))
	if err != nil {
		return fmt.Errorf("export failed verification: %w", err)
	}
	if len(records) != result.Rows+1 {
		return fmt.Errorf("export failed verification: %d records, expected %d", len(records), result.Rows+1)
	}
	for i, rec := range records {
		if len(rec) != result.Phases+1 {
			return fmt.Errorf("export failed verification: record %d has %d fields, expected %d", i, len(rec), result.Phases+1)
		}
	}
	return nil
}
