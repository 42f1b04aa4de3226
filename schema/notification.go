package schema

import (
	"time"
)

const (
	NOTIFICATION_PENDING = "Pending"
	NOTIFICATION_SENT    = "Sent"
	NOTIFICATION_FAILED  = "Failed"
)

// Notification categories.
const (
	NOTIFICATION_TYPE_HELP_REQUEST = "HelpRequest"
	NOTIFICATION_TYPE_DONATION     = "Donation"
	NOTIFICATION_TYPE_ALERT        = "Alert"
)

// Notification is a lifecycle event recorded for a recipient. A nil UserID
// marks a broadcast. Status tracks the delivery attempt, not read state;
// recipients only ever read these rows.
type Notification struct {
	ID               int       `json:"notification_id" gorm:"primary_key"`
	Type             string    `json:"type"`
	Message          string    `json:"message"`
	UserID           *int      `json:"user_id"`
	RelatedRequestID *int      `json:"related_request_id"`
	Status           string    `json:"status" sql:"default:'Pending'"`
	CreatedDate      time.Time `json:"created_date"`
}
