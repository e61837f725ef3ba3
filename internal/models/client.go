// Package models contains the entity snapshot types for journey maps.
// Values are read-only snapshots; mutation belongs to whatever owns the store.
package models

import "time"

// Client is the top of the ownership tree.
type Client struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Website     string    `json:"website,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Project groups journeys for one client. The UI calls it a Meta-Journey.
type Project struct {
	ID          string    `json:"id"`
	ClientID    string    `json:"clientId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Insight is a research finding owned by a client.
type Insight struct {
	ID          string   `json:"id"`
	ClientID    string   `json:"clientId"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Priority    Priority `json:"priority"`
	Order       *int     `json:"order,omitempty"`
}

// CellComment is a note attached to one cell of the journey map.
type CellComment struct {
	ID        string    `json:"id"`
	PhaseID   string    `json:"phaseId"`
	RowID     string    `json:"rowId"`
	Author    string    `json:"author,omitempty"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"createdAt"`
}
