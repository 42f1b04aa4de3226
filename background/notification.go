package background

import (
	"github.com/sirupsen/logrus"

	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/store"
)

// DeliverNotification attempts delivery of a single notification. The actual
// SMS/email gateways are external collaborators; delivery here records the
// attempt and its outcome. A recipient that no longer resolves to an active
// user marks the row Failed.
func (m *BackgroundManager) DeliverNotification(notificationID int64) error {
	notification, err := m.store.GetNotification(int(notificationID))
	if err != nil {
		if err == store.ErrNotificationNotFound {
			log.WithField("notification_id", notificationID).Warn("notification vanished before delivery")
			return nil
		}
		return err
	}

	if notification.Status != schema.NOTIFICATION_PENDING {
		// already handled by the sweep or a retried task
		return nil
	}

	status := schema.NOTIFICATION_SENT
	if notification.UserID != nil {
		recipient, err := m.store.GetUser(*notification.UserID)
		if err == store.ErrUserNotFound {
			status = schema.NOTIFICATION_FAILED
		} else if err != nil {
			return err
		} else if !recipient.IsActive {
			status = schema.NOTIFICATION_FAILED
		}
	}

	if status == schema.NOTIFICATION_SENT {
		log.WithFields(logrus.Fields{
			"notification_id": notification.ID,
			"type":            notification.Type,
		}).Info("notification delivered")
	}

	return m.store.MarkNotificationResult(notification.ID, status)
}

// DispatchPendingNotifications sweeps rows that never got a push delivery,
// e.g. because the worker was down when they were recorded.
func (m *BackgroundManager) DispatchPendingNotifications(limit int) error {
	notifications, err := m.store.ListPendingNotifications(limit)
	if err != nil {
		return err
	}

	for _, n := range notifications {
		if err := m.DeliverNotification(int64(n.ID)); err != nil {
			log.WithError(err).WithField("notification_id", n.ID).Error("dispatch pending notification")
		}
	}
	return nil
}
