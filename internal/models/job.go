package models

import "time"

// Priority is shared by jobs, insights and opportunities.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

// JobTag classifies a job-to-be-done.
type JobTag string

const (
	JobTagFunctional JobTag = "Functional"
	JobTagSocial     JobTag = "Social"
	JobTagEmotional  JobTag = "Emotional"
)

// Job is a customer job-to-be-done. Phases reference jobs through Phase.JobIDs.
type Job struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tag         JobTag    `json:"tag"`
	Priority    *Priority `json:"priority,omitempty"`
	Struggles   []string  `json:"struggles,omitempty"`
	Dimensions  []string  `json:"dimensions,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Stage is the pipeline position of an opportunity.
type Stage string

const (
	StageBacklog     Stage = "Backlog"
	StageInDiscovery Stage = "In discovery"
	StageHorizon1    Stage = "Horizon 1"
	StageHorizon2    Stage = "Horizon 2"
	StageHorizon3    Stage = "Horizon 3"
)

// StageOrder returns the pipeline position used when an opportunity has no stored order.
func StageOrder(s Stage) int {
	switch s {
	case StageBacklog:
		return 0
	case StageInDiscovery:
		return 1
	case StageHorizon1:
		return 2
	case StageHorizon2:
		return 3
	case StageHorizon3:
		return 4
	}
	return -1
}

// Opportunity is an improvement idea tied to one phase.
type Opportunity struct {
	ID           string    `json:"id"`
	ClientID     string    `json:"clientId"`
	ProjectID    string    `json:"projectId"`
	JourneyID    string    `json:"journeyId"`
	PhaseID      string    `json:"phaseId"`
	Stage        Stage     `json:"stage"`
	StageOrder   int       `json:"stageOrder"`
	Name         string    `json:"name"`
	Priority     Priority  `json:"priority"`
	Description  string    `json:"description,omitempty"`
	Impact       string    `json:"impact,omitempty"`
	LinkedJobIDs []string  `json:"linkedJobIds,omitempty"`
	IsPriority   bool      `json:"isPriority"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
