// Package health computes the 0-100 health score of phases and its averages
// over journeys, projects and clients.
//
// Scoring weights:
//
//	start                       100
//	struggles recorded          -20
//	internal struggles recorded -10
//	no jobs linked              -20
//	opportunity pressure        -round(40 * (4*high + 2*medium + low) / (4*n))
//
// The result is clamped to [0, 100]. Only counts feed the score, so it does not
// depend on the order of the opportunity or job slices.
package health

import (
	"strings"

	"github.com/example/journeymap/internal/models"
)

const (
	maxScore = 100
	minScore = 0

	strugglesPenalty         = 20
	internalStrugglesPenalty = 10
	noJobsPenalty            = 20
	maxOpportunityPenalty    = 40
)

// Breakdown shows how a phase score was reached.
type Breakdown struct {
	Score              int
	Struggles          int
	InternalStruggles  int
	NoJobs             int
	OpportunityPenalty int
	JobCount           int
	Opportunities      PriorityMix
}

// PriorityMix counts opportunities by priority.
type PriorityMix struct {
	High   int
	Medium int
	Low    int
}

// Total is the number of opportunities counted.
func (m PriorityMix) Total() int {
	return m.High + m.Medium + m.Low
}

// PhaseScore returns the health of one phase given the opportunities and jobs linked to it.
func PhaseScore(phase models.Phase, opportunities []models.Opportunity, jobs []models.Job) int {
	return Explain(phase, opportunities, jobs).Score
}

// Explain computes the score together with each penalty applied.
func Explain(phase models.Phase, opportunities []models.Opportunity, jobs []models.Job) Breakdown {
	b := Breakdown{
		JobCount:      len(jobs),
		Opportunities: mixOf(opportunities),
	}

	if strings.TrimSpace(phase.Struggles) != "" {
		b.Struggles = strugglesPenalty
	}
	if strings.TrimSpace(phase.InternalStruggles) != "" {
		b.InternalStruggles = internalStrugglesPenalty
	}
	if len(jobs) == 0 {
		b.NoJobs = noJobsPenalty
	}
	b.OpportunityPenalty = opportunityPenalty(b.Opportunities)

	b.Score = clamp(maxScore - b.Struggles - b.InternalStruggles - b.NoJobs - b.OpportunityPenalty)
	return b
}

func mixOf(opportunities []models.Opportunity) PriorityMix {
	var m PriorityMix
	for _, o := range opportunities {
		switch o.Priority {
		case models.PriorityHigh:
			m.High++
		case models.PriorityMedium:
			m.Medium++
		default:
			m.Low++
		}
	}
	return m
}

// opportunityPenalty is round(40 * weighted / (4n)) in integer arithmetic.
func opportunityPenalty(m PriorityMix) int {
	n := m.Total()
	if n == 0 {
		return 0
	}
	weighted := 4*m.High + 2*m.Medium + m.Low
	num := maxOpportunityPenalty * weighted
	den := 4 * n
	return (2*num + den) / (2 * den)
}

func clamp(score int) int {
	if score > maxScore {
		return maxScore
	}
	if score < minScore {
		return minScore
	}
	return score
}
