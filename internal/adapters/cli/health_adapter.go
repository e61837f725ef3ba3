package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/example/journeymap/internal/core/health"
	"github.com/example/journeymap/internal/ports/primary"
)

// HealthAdapter prints health scores with colour-coded bands.
type HealthAdapter struct {
	service primary.HealthService
	out     io.Writer
}

// NewHealthAdapter creates a new HealthAdapter with the given service.
func NewHealthAdapter(service primary.HealthService, out io.Writer) *HealthAdapter {
	return &HealthAdapter{
		service: service,
		out:     out,
	}
}

// Journey prints the per-phase breakdown of a journey.
func (a *HealthAdapter) Journey(ctx context.Context, journeyID string) (*primary.JourneyHealth, error) {
	jh, err := a.service.JourneyHealth(ctx, journeyID)
	if err != nil {
		return nil, fmt.Errorf("failed to score journey: %w", err)
	}

	fmt.Fprintf(a.out, "\nJourney: %s  %s\n\n", jh.Name, formatScore(jh.Average))
	if len(jh.Phases) == 0 {
		fmt.Fprintln(a.out, "No phases yet.")
		return jh, nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PHASE\tSTRUGGLES\tINTERNAL\tNO JOBS\tOPPS\tJOBS\tSCORE")
	fmt.Fprintln(w, "-----\t---------\t--------\t-------\t----\t----\t-----")
	for _, p := range jh.Phases {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
			phaseTitle(p.Title),
			penalty(p.StrugglesPenalty),
			penalty(p.InternalPenalty),
			penalty(p.NoJobsPenalty),
			penalty(p.OpportunityPenalty),
			p.JobCount,
			formatScore(&p.Score),
		)
	}
	w.Flush()
	return jh, nil
}

// Client prints client, project and journey averages.
func (a *HealthAdapter) Client(ctx context.Context, clientID string) (*primary.ClientHealth, error) {
	ch, err := a.service.ClientHealth(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to score client: %w", err)
	}
	a.printClient(ch)
	return ch, nil
}

// Report prints the health of every client.
func (a *HealthAdapter) Report(ctx context.Context) ([]*primary.ClientHealth, error) {
	report, err := a.service.Report(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to build health report: %w", err)
	}

	if len(report) == 0 {
		fmt.Fprintln(a.out, "No clients found.")
		return report, nil
	}
	for _, ch := range report {
		a.printClient(ch)
	}
	return report, nil
}

func (a *HealthAdapter) printClient(ch *primary.ClientHealth) {
	fmt.Fprintf(a.out, "\n%s  %s\n", ch.Name, formatScore(ch.Average))
	for _, p := range ch.Projects {
		fmt.Fprintf(a.out, "├── %s  %s\n", p.Name, formatScore(p.Average))
		for _, j := range p.Journeys {
			fmt.Fprintf(a.out, "│   └── %s  %s\n", j.Name, formatScore(j.Average))
		}
	}
}

// formatScore renders a score with its band, or a dash when there is nothing to show.
func formatScore(s *primary.Score) string {
	if s == nil {
		return "-"
	}
	return bandColor(s.Band).Sprintf("%d (%s)", s.Value, s.Band)
}

func bandColor(band string) *color.Color {
	switch band {
	case string(health.BandGood):
		return color.New(color.FgGreen)
	case string(health.BandMid):
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

func penalty(n int) string {
	if n == 0 {
		return "-"
	}
	return fmt.Sprintf("-%d", n)
}

func phaseTitle(title string) string {
	if title == "" {
		return "Untitled"
	}
	return title
}
