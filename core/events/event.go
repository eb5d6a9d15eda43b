package events

import (
	"context"
	"time"
)

// Type names an event.
type Type string

const (
	TypeItemCheckedOut Type = "ItemCheckedOut"
	TypeItemCheckedIn  Type = "ItemCheckedIn"
	TypeItemRemoved    Type = "ItemRemoved"
	TypeRosterImported Type = "RosterImported"
)

// Event describes a single ledger change.
type Event struct {
	Type         Type      `json:"type"`
	OccurredAt   time.Time `json:"occurredAt"`
	AssignmentID string    `json:"assignmentId,omitempty"`
	PlayerID     string    `json:"playerId,omitempty"`
	InventoryID  string    `json:"inventoryId,omitempty"`
	ProductName  string    `json:"productName,omitempty"`
	Quantity     int       `json:"quantity,omitempty"`
	// Players, Assigned and Issues summarize a roster import.
	Players  int `json:"players,omitempty"`
	Assigned int `json:"assigned,omitempty"`
	Issues   int `json:"issues,omitempty"`
}

// Publisher delivers events.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }
