// Package tabular serialises a journey map into CSV text.
//
// Rows follow the resolved row layout, columns follow the phase slice as given.
// Records end in CRLF; newlines inside a cell are kept as written.
package tabular

import (
	"strconv"
	"strings"

	"github.com/example/journeymap/internal/core/health"
	"github.com/example/journeymap/internal/core/rows"
	"github.com/example/journeymap/internal/models"
)

const (
	// MimeType is the content type of BuildCSV output.
	MimeType = "text/csv;charset=utf-8"

	headerLabel   = "Phase"
	untitledPhase = "Untitled"
	recordSep     = "\r\n"
	fieldSep      = ","
)

// BuildCSV renders the phase x row grid. Phases are not re-sorted.
func BuildCSV(phases []models.Phase, journey *models.Journey, opportunities []models.Opportunity, jobs []models.Job) string {
	return strings.Join(Records(phases, journey, opportunities, jobs), recordSep)
}

// Records returns the escaped CSV records without the record separator.
func Records(phases []models.Phase, journey *models.Journey, opportunities []models.Opportunity, jobs []models.Job) []string {
	descriptors := rows.ResolveRowOrder(journey)
	records := make([]string, 0, len(descriptors)+1)

	header := make([]string, 0, len(phases)+1)
	header = append(header, headerLabel)
	for _, p := range phases {
		title := p.Title
		if title == "" {
			title = untitledPhase
		}
		header = append(header, title)
	}
	records = append(records, joinFields(header))

	cells := make([]cellContext, len(phases))
	for i, p := range phases {
		cells[i] = cellContext{
			phase:         p,
			opportunities: models.FilterOpportunities(opportunities, p.ID),
			jobs:          models.ResolveJobs(p.JobIDs, jobs),
		}
	}

	for _, d := range descriptors {
		fields := make([]string, 0, len(phases)+1)
		fields = append(fields, d.Label)
		for _, c := range cells {
			fields = append(fields, c.value(d))
		}
		records = append(records, joinFields(fields))
	}
	return records
}

// EscapeField quotes s when it contains a comma, a double quote or a line break.
func EscapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\r\n") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func joinFields(fields []string) string {
	escaped := make([]string, len(fields))
	for i, f := range fields {
		escaped[i] = EscapeField(f)
	}
	return strings.Join(escaped, fieldSep)
}

type cellContext struct {
	phase         models.Phase
	opportunities []models.Opportunity
	jobs          []models.Job
}

func (c cellContext) value(d rows.Descriptor) string {
	if d.IsCustom {
		return strings.TrimSpace(c.phase.CustomRowValues[d.ID])
	}

	p := c.phase
	switch d.Key {
	case rows.KeyPhaseHealth:
		return strconv.Itoa(health.PhaseScore(p, c.opportunities, c.jobs))
	case rows.KeyOpportunities:
		return FormatOpportunities(c.opportunities)
	case rows.KeyCustomerJobs:
		names := make([]string, len(c.jobs))
		for i, j := range c.jobs {
			names[i] = j.Name
		}
		return strings.Join(names, "\n")
	case rows.KeyStruggles:
		return p.Struggles
	case rows.KeyInternalStruggles:
		return p.InternalStruggles
	case rows.KeyFrontStageActions:
		return p.FrontStageActions
	case rows.KeyBackStageActions:
		return p.BackStageActions
	case rows.KeySystems:
		return strings.Join(p.Systems, "\n")
	case rows.KeyRelatedProcesses:
		return p.RelatedProcesses
	case rows.KeyChannels:
		return strings.Join(p.Channels, "\n")
	case rows.KeyRelatedDocuments:
		return p.RelatedDocuments
	}
	return ""
}
