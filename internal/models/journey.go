package models

import "time"

// CustomRow is a user-defined row on a journey map.
type CustomRow struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// Journey owns an ordered set of phases and the row layout used to display them.
// RowOrder is nil when the journey never stored a preference.
type Journey struct {
	ID          string      `json:"id"`
	ProjectID   string      `json:"projectId"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	RowOrder    []string    `json:"rowOrder"`
	CustomRows  []CustomRow `json:"customRows,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CustomRowLabel returns the label for a custom row id.
func (j *Journey) CustomRowLabel(id string) (string, bool) {
	if j == nil {
		return "", false
	}
	for _, r := range j.CustomRows {
		if r.ID == id {
			return r.Label, true
		}
	}
	return "", false
}

// Phase is one column of a journey map.
type Phase struct {
	ID                string            `json:"id"`
	JourneyID         string            `json:"journeyId"`
	Order             int               `json:"order"`
	Title             string            `json:"title"`
	Description       string            `json:"description,omitempty"`
	Struggles         string            `json:"struggles,omitempty"`
	InternalStruggles string            `json:"internalStruggles,omitempty"`
	FrontStageActions string            `json:"frontStageActions,omitempty"`
	BackStageActions  string            `json:"backStageActions,omitempty"`
	Systems           []string          `json:"systems,omitempty"`
	RelatedProcesses  string            `json:"relatedProcesses,omitempty"`
	Channels          []string          `json:"channels,omitempty"`
	RelatedDocuments  string            `json:"relatedDocuments,omitempty"`
	Opportunities     string            `json:"opportunities,omitempty"`
	JobIDs            []string          `json:"jobIds,omitempty"`
	CustomRowValues   map[string]string `json:"customRowValues,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         time.Time         `json:"updatedAt"`
}
