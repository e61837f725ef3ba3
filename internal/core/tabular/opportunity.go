package tabular

import (
	"strings"

	"github.com/example/journeymap/internal/models"
)

// OpportunityLine is one parsed entry of an opportunities cell.
type OpportunityLine struct {
	Name     string
	Priority models.Priority
}

// FormatOpportunities writes one line per opportunity as "<name> [<priority>]".
// Whitespace runs in a name, line breaks included, fold to one space so each
// opportunity stays on its own line. The bracket is always written, "[]" for an
// empty priority, so a name ending in "[...]" still reads back whole and an
// opportunity without a name keeps its line.
func FormatOpportunities(opps []models.Opportunity) string {
	lines := make([]string, len(opps))
	for i, o := range opps {
		lines[i] = formatOpportunity(o)
	}
	return strings.Join(lines, "\n")
}

func formatOpportunity(o models.Opportunity) string {
	name := strings.Join(strings.Fields(o.Name), " ")
	tag := "[" + priorityText(o.Priority) + "]"
	if name == "" {
		return tag
	}
	return name + " " + tag
}

// priorityText folds whitespace and drops brackets so the tag closes the line.
func priorityText(p models.Priority) string {
	cleaned := strings.Map(func(r rune) rune {
		if r == '[' || r == ']' {
			return -1
		}
		return r
	}, string(p))
	return strings.Join(strings.Fields(cleaned), " ")
}

// ParseOpportunities reads a cell written by FormatOpportunities.
// Blank lines are skipped. A line not ending in "]" is a bare name.
func ParseOpportunities(cell string) []OpportunityLine {
	var out []OpportunityLine
	for _, line := range strings.Split(cell, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, parseOpportunityLine(line))
	}
	return out
}

// parseOpportunityLine splits on the last "[": priorities never contain one.
func parseOpportunityLine(line string) OpportunityLine {
	if !strings.HasSuffix(line, "]") {
		return OpportunityLine{Name: line}
	}
	open := strings.LastIndex(line, "[")
	return OpportunityLine{
		Name:     strings.TrimSpace(line[:open]),
		Priority: models.Priority(line[open+1 : len(line)-1]),
	}
}
