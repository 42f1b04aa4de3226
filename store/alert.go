package store

import (
	"fmt"
	"time"

	"github.com/safe-response/safe-api/schema"
)

var ErrAlertNotFound = fmt.Errorf("alert not found")

// CreateAlert publishes a new active alert
func (s *SafeStore) CreateAlert(alert *schema.Alert) error {
	alert.Status = schema.ALERT_ACTIVE
	alert.CreatedDate = time.Now().UTC()

	return s.ormDB.Create(alert).Error
}

// ListActiveAlerts returns every active alert, newest first
func (s *SafeStore) ListActiveAlerts() ([]schema.Alert, error) {
	alerts := []schema.Alert{}
	if err := s.ormDB.
		Where("status = ?", schema.ALERT_ACTIVE).
		Order("created_date desc").
		Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// ResolveAlert closes an active alert
func (s *SafeStore) ResolveAlert(id int) error {
	result := s.ormDB.Model(schema.Alert{}).
		Where("id = ? AND status = ?", id, schema.ALERT_ACTIVE).
		Update("status", schema.ALERT_RESOLVED)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var alert schema.Alert
		if err := s.ormDB.Where("id = ?", id).First(&alert).Error; err != nil {
			return ErrAlertNotFound
		}
		return ErrInvalidTransition
	}

	return nil
}

// ExpireAlerts expires active alerts whose expiry date has passed
func (s *SafeStore) ExpireAlerts() error {
	return s.ormDB.Model(schema.Alert{}).Set("gorm:query_option", "FOR UPDATE").
		Where("status = ? AND expiry_date IS NOT NULL AND expiry_date <= now()", schema.ALERT_ACTIVE).
		Update("status", schema.ALERT_EXPIRED).Error
}
