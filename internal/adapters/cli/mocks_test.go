package cli

import (
	"context"
	"os"
	"testing"

	"github.com/fatih/color"

	"github.com/example/journeymap/internal/ports/primary"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// mockJourneyService implements primary.JourneyService for testing
type mockJourneyService struct {
	listClientsFn func(ctx context.Context) ([]*primary.ClientSummary, error)
	clientTreeFn  func(ctx context.Context, clientID string) (*primary.ClientTree, error)
	resolveRowsFn func(ctx context.Context, journeyID string) (*primary.RowLayout, error)
}

func (m *mockJourneyService) ListClients(ctx context.Context) ([]*primary.ClientSummary, error) {
	if m.listClientsFn != nil {
		return m.listClientsFn(ctx)
	}
	return []*primary.ClientSummary{}, nil
}

func (m *mockJourneyService) ClientTree(ctx context.Context, clientID string) (*primary.ClientTree, error) {
	if m.clientTreeFn != nil {
		return m.clientTreeFn(ctx, clientID)
	}
	return &primary.ClientTree{ID: clientID, Name: "Acme"}, nil
}

func (m *mockJourneyService) ResolveRows(ctx context.Context, journeyID string) (*primary.RowLayout, error) {
	if m.resolveRowsFn != nil {
		return m.resolveRowsFn(ctx, journeyID)
	}
	return &primary.RowLayout{JourneyID: journeyID, JourneyName: "Checkout"}, nil
}

// mockHealthService implements primary.HealthService for testing
type mockHealthService struct {
	journeyHealthFn func(ctx context.Context, journeyID string) (*primary.JourneyHealth, error)
	clientHealthFn  func(ctx context.Context, clientID string) (*primary.ClientHealth, error)
	reportFn        func(ctx context.Context) ([]*primary.ClientHealth, error)
}

func (m *mockHealthService) JourneyHealth(ctx context.Context, journeyID string) (*primary.JourneyHealth, error) {
	if m.journeyHealthFn != nil {
		return m.journeyHealthFn(ctx, journeyID)
	}
	return &primary.JourneyHealth{JourneyID: journeyID}, nil
}

func (m *mockHealthService) ClientHealth(ctx context.Context, clientID string) (*primary.ClientHealth, error) {
	if m.clientHealthFn != nil {
		return m.clientHealthFn(ctx, clientID)
	}
	return &primary.ClientHealth{ClientID: clientID}, nil
}

func (m *mockHealthService) Report(ctx context.Context) ([]*primary.ClientHealth, error) {
	if m.reportFn != nil {
		return m.reportFn(ctx)
	}
	return nil, nil
}

// mockExportService implements primary.ExportService for testing
type mockExportService struct {
	exportFn   func(ctx context.Context, req primary.ExportRequest) (*primary.ExportResult, error)
	downloadFn func(ctx context.Context, result *primary.ExportResult) (string, error)

	lastRequest primary.ExportRequest
	downloaded  bool
}

func (m *mockExportService) ExportJourneyCSV(ctx context.Context, req primary.ExportRequest) (*primary.ExportResult, error) {
	m.lastRequest = req
	if m.exportFn != nil {
		return m.exportFn(ctx, req)
	}
	return &primary.ExportResult{
		Data:     []byte("Phase,A\r\nStruggles,x\r\n"),
		Filename: "checkout.csv",
		MimeType: "text/csv;charset=utf-8",
		Rows:     1,
		Phases:   1,
	}, nil
}

func (m *mockExportService) Download(ctx context.Context, result *primary.ExportResult) (string, error) {
	m.downloaded = true
	if m.downloadFn != nil {
		return m.downloadFn(ctx, result)
	}
	return "/tmp/exports/" + result.Filename, nil
}

// mockSnapshotService implements primary.SnapshotService for testing
type mockSnapshotService struct {
	err error
}

func (m *mockSnapshotService) stats() *primary.SnapshotStats {
	return &primary.SnapshotStats{Clients: 1, Projects: 2, Journeys: 3, Phases: 6}
}

func (m *mockSnapshotService) Import(ctx context.Context, path string) (*primary.SnapshotStats, error) {
	return m.stats(), m.err
}

func (m *mockSnapshotService) Dump(ctx context.Context, path string) (*primary.SnapshotStats, error) {
	return m.stats(), m.err
}

func (m *mockSnapshotService) SeedDemo(ctx context.Context) (*primary.SnapshotStats, error) {
	return m.stats(), m.err
}
