package schema

import (
	"time"
)

const (
	HELP_REQUEST_PENDING     = "Pending"
	HELP_REQUEST_ASSIGNED    = "Assigned"
	HELP_REQUEST_IN_PROGRESS = "InProgress"
	HELP_REQUEST_COMPLETED   = "Completed"
	HELP_REQUEST_CANCELLED   = "Cancelled"
)

const (
	URGENCY_LOW    = "Low"
	URGENCY_MEDIUM = "Medium"
	URGENCY_HIGH   = "High"
)

// helpRequestTransitions is the closed transition table of the help request
// lifecycle. Assigned maps to itself to allow re-assignment to another
// responder before work starts.
var helpRequestTransitions = map[string][]string{
	HELP_REQUEST_PENDING:     {HELP_REQUEST_ASSIGNED, HELP_REQUEST_CANCELLED},
	HELP_REQUEST_ASSIGNED:    {HELP_REQUEST_ASSIGNED, HELP_REQUEST_IN_PROGRESS, HELP_REQUEST_COMPLETED, HELP_REQUEST_CANCELLED},
	HELP_REQUEST_IN_PROGRESS: {HELP_REQUEST_COMPLETED},
	HELP_REQUEST_COMPLETED:   {},
	HELP_REQUEST_CANCELLED:   {},
}

// ValidHelpRequestStatus reports whether a status is part of the closed
// lifecycle vocabulary. Unrecognized values are rejected at the API boundary.
func ValidHelpRequestStatus(status string) bool {
	_, ok := helpRequestTransitions[status]
	return ok
}

// ValidUrgency reports whether an urgency level is recognized.
func ValidUrgency(urgency string) bool {
	switch urgency {
	case URGENCY_LOW, URGENCY_MEDIUM, URGENCY_HIGH:
		return true
	}
	return false
}

// CanTransitionHelpRequest reports whether a help request may move from one
// lifecycle state to another.
func CanTransitionHelpRequest(from, to string) bool {
	for _, s := range helpRequestTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// HelpRequestTransitionSources returns every state from which a help request
// may legally enter the given state. Used to build guarded UPDATE clauses.
func HelpRequestTransitionSources(to string) []string {
	sources := []string{}
	for from, targets := range helpRequestTransitions {
		for _, s := range targets {
			if s == to {
				sources = append(sources, from)
			}
		}
	}
	return sources
}

// HelpRequestTerminal reports whether a state has no outgoing transitions.
func HelpRequestTerminal(status string) bool {
	return len(helpRequestTransitions[status]) == 0
}

// HelpRequest is a cry for assistance. The requester owns the record; status
// and assignment are driven by admins and responders. Version is bumped on
// every mutation so that concurrent updates fail instead of silently
// overwriting each other.
type HelpRequest struct {
	ID                  int        `json:"help_request_id" gorm:"primary_key"`
	Type                string     `json:"type"`
	Description         string     `json:"description"`
	Urgency             string     `json:"urgency" sql:"default:'Medium'"`
	Location            string     `json:"location"`
	Latitude            *float64   `json:"latitude"`
	Longitude           *float64   `json:"longitude"`
	RequesterID         int        `json:"requester_id"`
	ContactInfo         string     `json:"contact_info"`
	Status              string     `json:"status" sql:"default:'Pending'"`
	AssignedResponderID *int       `json:"assigned_responder_id"`
	CreatedDate         time.Time  `json:"created_date"`
	AssignedDate        *time.Time `json:"assigned_date"`
	CompletedDate       *time.Time `json:"completed_date"`
	Notes               string     `json:"notes"`
	Version             int        `json:"version" sql:"default:0"`
}
