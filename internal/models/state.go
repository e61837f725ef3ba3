package models

import "sort"

// AppState is a full snapshot of everything a workspace holds.
// Stores load and save it whole.
type AppState struct {
	Clients       []Client      `json:"clients"`
	Projects      []Project     `json:"projects"`
	Journeys      []Journey     `json:"journeys"`
	Phases        []Phase       `json:"phases"`
	Jobs          []Job         `json:"jobs"`
	Insights      []Insight     `json:"insights"`
	Opportunities []Opportunity `json:"opportunities"`
	CellComments  []CellComment `json:"cellComments"`
}

// Client returns the client with the given id, or nil.
func (s *AppState) Client(id string) *Client {
	for i := range s.Clients {
		if s.Clients[i].ID == id {
			return &s.Clients[i]
		}
	}
	return nil
}

// Project returns the project with the given id, or nil.
func (s *AppState) Project(id string) *Project {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			return &s.Projects[i]
		}
	}
	return nil
}

// Journey returns the journey with the given id, or nil.
func (s *AppState) Journey(id string) *Journey {
	for i := range s.Journeys {
		if s.Journeys[i].ID == id {
			return &s.Journeys[i]
		}
	}
	return nil
}

// ProjectsForClient returns the client's projects in snapshot order.
func (s *AppState) ProjectsForClient(clientID string) []Project {
	var out []Project
	for _, p := range s.Projects {
		if p.ClientID == clientID {
			out = append(out, p)
		}
	}
	return out
}

// JourneysForProject returns the project's journeys in snapshot order.
func (s *AppState) JourneysForProject(projectID string) []Journey {
	var out []Journey
	for _, j := range s.Journeys {
		if j.ProjectID == projectID {
			out = append(out, j)
		}
	}
	return out
}

// PhasesForJourney returns the journey's phases sorted by Order.
// Phases sharing an Order keep their snapshot order.
func (s *AppState) PhasesForJourney(journeyID string) []Phase {
	var out []Phase
	for _, p := range s.Phases {
		if p.JourneyID == journeyID {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, k int) bool { return out[i].Order < out[k].Order })
	return out
}

// OpportunitiesForPhase returns the opportunities linked to a phase.
func (s *AppState) OpportunitiesForPhase(phaseID string) []Opportunity {
	return FilterOpportunities(s.Opportunities, phaseID)
}

// JobsForPhase resolves the phase's job references, skipping ids that no longer exist.
func (s *AppState) JobsForPhase(phase Phase) []Job {
	return ResolveJobs(phase.JobIDs, s.Jobs)
}

// FilterOpportunities keeps the opportunities whose PhaseID matches, in input order.
func FilterOpportunities(opps []Opportunity, phaseID string) []Opportunity {
	var out []Opportunity
	for _, o := range opps {
		if o.PhaseID == phaseID {
			out = append(out, o)
		}
	}
	return out
}

// ResolveJobs maps job ids to jobs in id order. Unknown ids are dropped.
func ResolveJobs(ids []string, jobs []Job) []Job {
	if len(ids) == 0 {
		return nil
	}
	byID := make(map[string]Job, len(jobs))
	for _, j := range jobs {
		byID[j.ID] = j
	}
	out := make([]Job, 0, len(ids))
	for _, id := range ids {
		if j, ok := byID[id]; ok {
			out = append(out, j)
		}
	}
	return out
}
