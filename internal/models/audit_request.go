package models

import (
	"time"
)

// Audit request urgency levels
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
)

// Audit request statuses
const (
	AuditStatusPending    = "pending"
	AuditStatusInProgress = "in_progress"
	AuditStatusResolved   = "resolved"
)

// Audit request priorities, derived from urgency
const (
	PriorityNormal = "normal"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

type AuditRequest struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email"`
	Company          string    `json:"company"`
	Employees        int       `json:"employees"`
	Industry         string    `json:"industry,omitempty"`
	Description      string    `json:"description"`
	Urgency          string    `json:"urgency"`
	Budget           string    `json:"budget,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	PreferredContact string    `json:"preferred_contact"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
}

// PriorityForUrgency maps a request's urgency to its triage priority.
func PriorityForUrgency(urgency string) string {
	switch urgency {
	case UrgencyCritical:
		return PriorityHigh
	case UrgencyHigh:
		return PriorityMedium
	default:
		return PriorityNormal
	}
}
