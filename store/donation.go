package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/safe-response/safe-api/schema"
)

var ErrDonationNotFound = fmt.Errorf("donation not found")

// CreateDonation records a new contribution in the Pending state. Payment
// collection is external; the reference and method fields are opaque.
func (s *SafeStore) CreateDonation(donation *schema.Donation) error {
	donation.Status = schema.DONATION_PENDING
	donation.CreatedDate = time.Now().UTC()

	return s.ormDB.Create(donation).Error
}

// ListDonations returns every donation, newest first
func (s *SafeStore) ListDonations() ([]schema.Donation, error) {
	donations := []schema.Donation{}
	if err := s.ormDB.Order("created_date desc").Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// ListUserDonations returns the donations made by a user, newest first
func (s *SafeStore) ListUserDonations(userID int) ([]schema.Donation, error) {
	donations := []schema.Donation{}
	if err := s.ormDB.
		Where("user_id = ?", userID).
		Order("created_date desc").
		Find(&donations).Error; err != nil {
		return nil, err
	}
	return donations, nil
}

// UpdateDonationStatus moves a donation through the review flow. Only
// Pending -> Approved/Rejected and Approved -> Distributed are allowed.
func (s *SafeStore) UpdateDonationStatus(id int, status string) (*schema.Donation, error) {
	var donation schema.Donation
	if err := s.ormDB.Where("id = ?", id).First(&donation).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrDonationNotFound
		}
		return nil, err
	}

	if !schema.CanTransitionDonation(donation.Status, status) {
		return nil, ErrInvalidTransition
	}

	result := s.ormDB.Model(schema.Donation{}).
		Where("id = ? AND status = ?", id, donation.Status).
		Update("status", status)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		// the state moved under us and the transition no longer applies
		return nil, ErrInvalidTransition
	}

	donation.Status = status
	return &donation, nil
}
