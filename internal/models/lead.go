package models

import "time"

// Lead statuses. "Assigned" is only ever set by the assign flow.
const (
	LeadStatusNew       = "New"
	LeadStatusRequested = "Requested"
	LeadStatusAssigned  = "Assigned"
	LeadStatusContacted = "Contacted"
	LeadStatusReplied   = "Replied"
	LeadStatusBooked    = "Booked"
	LeadStatusNoAnswer  = "No Answer"
)

type Lead struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Contact     *string   `json:"contact"`
	Industry    string    `json:"industry"`
	Region      string    `json:"region"`
	Quantity    int       `json:"quantity"`
	Status      string    `json:"status"`
	AssignedTo  *int      `json:"assigned_to"`
	RequestedBy *int      `json:"requested_by"`
	Notes       *string   `json:"notes"`
	Tags        *string   `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
