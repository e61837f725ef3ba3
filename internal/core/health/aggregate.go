package health

import (
	"math"

	"github.com/example/journeymap/internal/models"
)

// Average returns the rounded mean of scores. ok is false for an empty input,
// in which case no health should be shown at all.
func Average(scores []int) (avg int, ok bool) {
	if len(scores) == 0 {
		return 0, false
	}
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return int(math.Round(float64(sum) / float64(len(scores)))), true
}

// PhaseScores scores each phase of a journey, in the order given.
func PhaseScores(phases []models.Phase, opportunities []models.Opportunity, jobs []models.Job) []int {
	scores := make([]int, len(phases))
	for i, p := range phases {
		scores[i] = PhaseScore(p, models.FilterOpportunities(opportunities, p.ID), models.ResolveJobs(p.JobIDs, jobs))
	}
	return scores
}

// JourneyHealth averages the scores of the journey's phases.
func JourneyHealth(state *models.AppState, journeyID string) (int, bool) {
	phases := state.PhasesForJourney(journeyID)
	return Average(PhaseScores(phases, state.Opportunities, state.Jobs))
}

// ProjectHealth averages the journey averages of a project.
func ProjectHealth(state *models.AppState, projectID string) (int, bool) {
	return Average(journeyAverages(state, state.JourneysForProject(projectID)))
}

// ClientHealth averages the journey averages across every project of the client.
// Each journey weighs the same regardless of how many phases it has, and journeys
// without phases are left out.
func ClientHealth(state *models.AppState, clientID string) (int, bool) {
	var journeys []models.Journey
	for _, p := range state.ProjectsForClient(clientID) {
		journeys = append(journeys, state.JourneysForProject(p.ID)...)
	}
	return Average(journeyAverages(state, journeys))
}

func journeyAverages(state *models.AppState, journeys []models.Journey) []int {
	var out []int
	for _, j := range journeys {
		if avg, ok := JourneyHealth(state, j.ID); ok {
			out = append(out, avg)
		}
	}
	return out
}
