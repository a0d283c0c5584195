package domain

import (
	"errors"
	"time"
)

// LeadStatus represents the processing state of a lead.
type LeadStatus string

const (
	LeadStatusNew        LeadStatus = "new"
	LeadStatusInProgress LeadStatus = "in_progress"
	LeadStatusCompleted  LeadStatus = "completed"
	LeadStatusRejected   LeadStatus = "rejected"
)

var ErrLeadNotFound = errors.New("lead not found")

// Lead is a request captured from the landing page or entered manually.
type Lead struct {
	ID           string     `json:"id"`
	Source       string     `json:"source"`
	Name         string     `json:"name"`
	Contact      string     `json:"contact"`
	Product      string     `json:"product"`
	Service      string     `json:"service"`
	Message      string     `json:"message"`
	Lang         string     `json:"lang"`
	Status       LeadStatus `json:"status"`
	Notes        string     `json:"notes"`
	AssignedTo   string     `json:"assigned_to"`
	AssignedName string     `json:"assigned_name"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
