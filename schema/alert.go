package schema

import (
	"time"
)

const (
	ALERT_ACTIVE   = "Active"
	ALERT_RESOLVED = "Resolved"
	ALERT_EXPIRED  = "Expired"
)

// Alert is an emergency broadcast created by an admin. Active alerts are
// visible to every authenticated user until resolved by an admin or expired
// by the background sweep.
type Alert struct {
	ID                 int        `json:"alert_id" gorm:"primary_key"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	AlertType          string     `json:"alert_type"`
	Priority           string     `json:"priority" sql:"default:'Medium'"`
	Status             string     `json:"status" sql:"default:'Active'"`
	CreatedBy          int        `json:"created_by"`
	CreatedDate        time.Time  `json:"created_date"`
	ExpiryDate         *time.Time `json:"expiry_date"`
	GeoTargeting       string     `json:"geo_targeting"`
	AffectedPopulation int        `json:"affected_population"`
}
