package store

import (
	"fmt"
	"time"

	"github.com/jinzhu/gorm"

	"github.com/safe-response/safe-api/schema"
)

var ErrNotificationNotFound = fmt.Errorf("notification not found")

// CreateNotification appends a Pending notification row. Delivery happens
// later in the background worker; the caller never waits for it.
func (s *SafeStore) CreateNotification(notification *schema.Notification) error {
	notification.Status = schema.NOTIFICATION_PENDING
	notification.CreatedDate = time.Now().UTC()

	return s.ormDB.Create(notification).Error
}

// GetNotification returns a notification by id
func (s *SafeStore) GetNotification(id int) (*schema.Notification, error) {
	var notification schema.Notification
	if err := s.ormDB.Where("id = ?", id).First(&notification).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrNotificationNotFound
		}
		return nil, err
	}
	return &notification, nil
}

// ListUserNotifications returns the notifications addressed to a recipient,
// newest first. Broadcasts are not included here; clients read those through
// the alerts API.
func (s *SafeStore) ListUserNotifications(userID int) ([]schema.Notification, error) {
	notifications := []schema.Notification{}
	if err := s.ormDB.
		Where("user_id = ?", userID).
		Order("created_date desc").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// ListPendingNotifications returns the oldest undelivered notifications, used
// by the background sweep to catch up after worker downtime.
func (s *SafeStore) ListPendingNotifications(limit int) ([]schema.Notification, error) {
	notifications := []schema.Notification{}
	if err := s.ormDB.
		Where("status = ?", schema.NOTIFICATION_PENDING).
		Order("created_date asc").
		Limit(limit).
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// MarkNotificationResult records the outcome of a delivery attempt
func (s *SafeStore) MarkNotificationResult(id int, status string) error {
	result := s.ormDB.Model(schema.Notification{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
