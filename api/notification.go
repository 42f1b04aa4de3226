package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/spf13/viper"

	"github.com/safe-response/safe-api/background"
	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/utils"
)

// listMyNotifications returns the notifications addressed to the caller
func (s *Server) listMyNotifications(c *gin.Context) {
	claims := currentClaims(c)

	notifications, err := s.store.ListUserNotifications(claims.UserID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, notifications)
}

// notify records a lifecycle event for a recipient and hands delivery to the
// background worker. Fire-and-forget: failures are logged and never bubble up
// into the operation that triggered the event.
func (s *Server) notify(recipientID *int, notifType, messageID string, data map[string]interface{}, relatedRequestID *int) {
	notification := &schema.Notification{
		Type:             notifType,
		Message:          renderMessage(messageID, data),
		UserID:           recipientID,
		RelatedRequestID: relatedRequestID,
	}

	if err := s.store.CreateNotification(notification); err != nil {
		log.WithError(err).WithField("message_id", messageID).Error("record notification")
		return
	}

	s.enqueueDelivery(notification.ID)
}

// enqueueDelivery pushes a delivery job for a notification. Without an
// enqueuer the row stays Pending until the periodic sweep picks it up.
func (s *Server) enqueueDelivery(notificationID int) {
	if s.backgroundEnqueuer == nil {
		return
	}

	_, err := s.backgroundEnqueuer.SendTask(&tasks.Signature{
		Name: background.TaskDeliverNotification,
		Args: []tasks.Arg{
			{Type: "int64", Value: int64(notificationID)},
		},
	})
	if err != nil {
		log.WithError(err).WithField("notification_id", notificationID).Error("enqueue notification delivery")
	}
}

// renderMessage localizes a notification message. When the i18n bundle is not
// loaded or the message is missing, the raw message id is stored so the event
// is never lost.
func renderMessage(messageID string, data map[string]interface{}) string {
	loc := utils.NewLocalizer(viper.GetString("i18n.default_lang"))
	if loc == nil {
		return messageID
	}

	message, err := loc.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		return messageID
	}
	return message
}
