package tabular

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/journeymap/internal/core/rows"
	"github.com/example/journeymap/internal/models"
)

func TestEscapeField(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "hello world", "hello world"},
		{"empty", "", ""},
		{"comma", "a,b", `"a,b"`},
		{"quote", `say "hi"`, `"say ""hi"""`},
		{"newline", "a\nb", "\"a\nb\""},
		{"carriage return", "a\rb", "\"a\rb\""},
		{"everything", "a,b\"c\nd", "\"a,b\"\"c\nd\""},
		{"leading space stays bare", "  padded", "  padded"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EscapeField(tt.in))
		})
	}
}

func sampleJourney() ([]models.Phase, *models.Journey, []models.Opportunity, []models.Job) {
	journey := &models.Journey{
		ID:         "jr-1",
		Name:       "Buying a home",
		RowOrder:   []string{"customerJobs", "c1", "struggles", "ghost"},
		CustomRows: []models.CustomRow{{ID: "c1", Label: "Emotions"}},
	}
	phases := []models.Phase{
		{
			ID:              "ph-1",
			JourneyID:       "jr-1",
			Order:           0,
			Title:           "Discover",
			Struggles:       "Too many listings, no filters",
			Systems:         []string{"CRM", "Portal"},
			JobIDs:          []string{"j1", "missing", "j2"},
			CustomRowValues: map[string]string{"c1": "  anxious  "},
		},
		{
			ID:        "ph-2",
			JourneyID: "jr-1",
			Order:     1,
			Channels:  []string{"Email"},
		},
	}
	opps := []models.Opportunity{
		{ID: "o1", PhaseID: "ph-1", Name: "Saved searches", Priority: models.PriorityHigh},
		{ID: "o2", PhaseID: "ph-2", Name: "Price alerts", Priority: models.PriorityLow},
		{ID: "o3", PhaseID: "ph-1", Name: "Map view", Priority: models.PriorityMedium},
	}
	jobs := []models.Job{
		{ID: "j2", Name: "Compare prices"},
		{ID: "j1", Name: "Find a home"},
	}
	return phases, journey, opps, jobs
}

func TestBuildCSV_Shape(t *testing.T) {
	phases, journey, opps, jobs := sampleJourney()

	out := BuildCSV(phases, journey, opps, jobs)

	records, err := ParseCSV(out)
	require.NoError(t, err)

	descriptors := rows.ResolveRowOrder(journey)
	require.Len(t, records, len(descriptors)+1)
	for i, r := range records {
		assert.Len(t, r, len(phases)+1, "record %d", i)
	}

	// A standard reader agrees on the shape.
	std, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, std, len(descriptors)+1)

	assert.Equal(t, []string{"Phase", "Discover", "Untitled"}, records[0])
	for i, d := range descriptors {
		assert.Equal(t, d.Label, records[i+1][0])
	}
}

func TestBuildCSV_CellValues(t *testing.T) {
	phases, journey, opps, jobs := sampleJourney()

	records, err := ParseCSV(BuildCSV(phases, journey, opps, jobs))
	require.NoError(t, err)

	byLabel := map[string][]string{}
	for _, r := range records[1:] {
		byLabel[r[0]] = r[1:]
	}

	assert.Equal(t, []string{"Find a home\nCompare prices", ""}, byLabel["Customer Jobs"])
	assert.Equal(t, []string{"anxious", ""}, byLabel["Emotions"])
	assert.Equal(t, []string{"Too many listings, no filters", ""}, byLabel["Struggles"])
	assert.Equal(t, []string{"CRM\nPortal", ""}, byLabel["Systems"])
	assert.Equal(t, []string{"", "Email"}, byLabel["Channels"])
	assert.Equal(t, []string{"Saved searches [High]\nMap view [Medium]", "Price alerts [Low]"}, byLabel["Opportunities"])
	// ph-1: -20 struggles, -30 opportunity pressure. ph-2: -20 no jobs, -10 one low opportunity.
	assert.Equal(t, []string{"50", "70"}, byLabel["Phase Health"])
}

func TestBuildCSV_CustomerJobsCellUsesLF(t *testing.T) {
	phases := []models.Phase{{ID: "ph-1", Title: "Search", JobIDs: []string{"j1", "j2"}}}
	jobs := []models.Job{{ID: "j1", Name: "Find a home"}, {ID: "j2", Name: "Compare prices"}}

	out := BuildCSV(phases, nil, nil, jobs)

	assert.Contains(t, out, "Customer Jobs,\"Find a home\nCompare prices\"\r\n")
	assert.NotContains(t, out, "Find a home\r\nCompare prices")
}

func TestBuildCSV_NoPhases(t *testing.T) {
	out := BuildCSV(nil, nil, nil, nil)

	lines := strings.Split(out, "\r\n")
	require.Len(t, lines, len(rows.Canonical())+1)
	assert.Equal(t, "Phase", lines[0])
	assert.Equal(t, "Customer Jobs", lines[1])
	assert.Equal(t, "Phase Health", lines[len(lines)-1])
	assert.False(t, strings.HasSuffix(out, "\r\n"))
}

func TestBuildCSV_KeepsInputPhaseOrder(t *testing.T) {
	phases := []models.Phase{
		{ID: "b", Title: "Second", Order: 2},
		{ID: "a", Title: "First", Order: 1},
	}

	out := BuildCSV(phases, nil, nil, nil)

	assert.True(t, strings.HasPrefix(out, "Phase,Second,First\r\n"))
}

func TestBuildCSV_Deterministic(t *testing.T) {
	phases, journey, opps, jobs := sampleJourney()

	assert.Equal(t, BuildCSV(phases, journey, opps, jobs), BuildCSV(phases, journey, opps, jobs))
}
