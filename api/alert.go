package api

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/store"
)

// createAlert publishes an emergency broadcast and records a broadcast
// notification for it.
func (s *Server) createAlert(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Title              string     `json:"title"`
		Description        string     `json:"description"`
		AlertType          string     `json:"alert_type"`
		Priority           string     `json:"priority"`
		ExpiryDate         *time.Time `json:"expiry_date"`
		GeoTargeting       string     `json:"geo_targeting"`
		AffectedPopulation int        `json:"affected_population"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Title) == "" ||
		strings.TrimSpace(params.Description) == "" ||
		strings.TrimSpace(params.AlertType) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if params.Priority == "" {
		params.Priority = schema.URGENCY_MEDIUM
	}
	if !schema.ValidUrgency(params.Priority) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidUrgency)
		return
	}

	alert := &schema.Alert{
		Title:              params.Title,
		Description:        params.Description,
		AlertType:          params.AlertType,
		Priority:           params.Priority,
		CreatedBy:          user.ID,
		ExpiryDate:         params.ExpiryDate,
		GeoTargeting:       params.GeoTargeting,
		AffectedPopulation: params.AffectedPopulation,
	}

	if err := s.store.CreateAlert(alert); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	// broadcast: no recipient
	s.notify(nil, schema.NOTIFICATION_TYPE_ALERT, "alert.broadcast",
		map[string]interface{}{"Title": alert.Title, "Description": alert.Description}, nil)

	c.JSON(http.StatusCreated, alert)
}

func (s *Server) listActiveAlerts(c *gin.Context) {
	alerts, err := s.store.ListActiveAlerts()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, alerts)
}

func (s *Server) resolveAlert(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("alertID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.ResolveAlert(id); err != nil {
		switch err {
		case store.ErrAlertNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorAlertNotFound)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
