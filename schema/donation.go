package schema

import (
	"time"
)

const (
	DONATION_PENDING     = "Pending"
	DONATION_APPROVED    = "Approved"
	DONATION_DISTRIBUTED = "Distributed"
	DONATION_REJECTED    = "Rejected"
)

// donationTransitions restricts status changes to the review flow:
// a pending donation is approved or rejected, and only approved donations
// can be distributed.
var donationTransitions = map[string][]string{
	DONATION_PENDING:     {DONATION_APPROVED, DONATION_REJECTED},
	DONATION_APPROVED:    {DONATION_DISTRIBUTED},
	DONATION_DISTRIBUTED: {},
	DONATION_REJECTED:    {},
}

// ValidDonationStatus reports whether a status is part of the donation
// vocabulary.
func ValidDonationStatus(status string) bool {
	_, ok := donationTransitions[status]
	return ok
}

// CanTransitionDonation reports whether a donation may move between two
// review states.
func CanTransitionDonation(from, to string) bool {
	for _, s := range donationTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Donation is a monetary or in-kind contribution. Payment collection happens
// outside this system; donations always start Pending and are reviewed by an
// admin.
type Donation struct {
	ID               int       `json:"donation_id" gorm:"primary_key"`
	UserID           int       `json:"user_id"`
	Amount           float64   `json:"amount" gorm:"type:numeric(12,2)"`
	Type             string    `json:"type"`
	Message          string    `json:"message"`
	Status           string    `json:"status" sql:"default:'Pending'"`
	PaymentReference string    `json:"payment_reference"`
	PaymentMethod    string    `json:"payment_method"`
	CreatedDate      time.Time `json:"created_date"`
}
