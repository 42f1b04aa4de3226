package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"

	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/store"
)

// createHelpRequest opens a new help request for the calling user. When the
// request carries no coordinates and a geocoder is configured, the free-text
// location is geocoded best-effort so responders can find it on the nearby
// board.
func (s *Server) createHelpRequest(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Type        string   `json:"type"`
		Description string   `json:"description"`
		Urgency     string   `json:"urgency"`
		Location    string   `json:"location"`
		Latitude    *float64 `json:"latitude"`
		Longitude   *float64 `json:"longitude"`
		ContactInfo string   `json:"contact_info"`
		Notes       string   `json:"notes"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if strings.TrimSpace(params.Type) == "" ||
		strings.TrimSpace(params.Description) == "" ||
		strings.TrimSpace(params.Location) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if !schema.ValidUrgency(params.Urgency) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidUrgency)
		return
	}

	if (params.Latitude == nil || params.Longitude == nil) && s.geoClient != nil {
		lat, lng, err := s.geoClient.LookupCoordinates(params.Location)
		if err != nil {
			log.WithError(err).WithField("location", params.Location).Warn("geocode help request location")
		} else {
			params.Latitude = &lat
			params.Longitude = &lng
		}
	}

	request := &schema.HelpRequest{
		Type:        params.Type,
		Description: params.Description,
		Urgency:     params.Urgency,
		Location:    params.Location,
		Latitude:    params.Latitude,
		Longitude:   params.Longitude,
		RequesterID: user.ID,
		ContactInfo: params.ContactInfo,
		Notes:       params.Notes,
	}

	if err := s.store.CreateHelpRequest(request); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	s.notify(&user.ID, schema.NOTIFICATION_TYPE_HELP_REQUEST, "help_request.created",
		map[string]interface{}{"Type": request.Type}, &request.ID)

	c.JSON(http.StatusCreated, request)
}

// listHelpRequests returns the dispatch board for admins and responders and
// the caller's own requests for everyone else.
func (s *Server) listHelpRequests(c *gin.Context) {
	claims := currentClaims(c)

	var requests []schema.HelpRequest
	var err error
	if claims.Role == schema.RoleAdmin || claims.Role == schema.RoleResponder {
		requests, err = s.store.ListHelpRequests()
	} else {
		requests, err = s.store.ListUserHelpRequests(claims.UserID)
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) listMyHelpRequests(c *gin.Context) {
	claims := currentClaims(c)

	requests, err := s.store.ListUserHelpRequests(claims.UserID)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

// listNearbyHelpRequests returns pending requests within a radius of the
// caller's reported position.
func (s *Server) listNearbyHelpRequests(c *gin.Context) {
	latitude, latErr := strconv.ParseFloat(c.Query("latitude"), 64)
	longitude, lngErr := strconv.ParseFloat(c.Query("longitude"), 64)
	if latErr != nil || lngErr != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	radius, err := strconv.ParseFloat(c.Query("radius"), 64)
	if err != nil || radius <= 0 {
		radius = viper.GetFloat64("help.nearby_radius_km")
	}
	if radius <= 0 {
		radius = 50
	}

	requests, err := s.store.ListNearbyHelpRequests(latitude, longitude, radius)
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, requests)
}

func (s *Server) getHelpRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("helpRequestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	request, err := s.store.GetHelpRequest(id)
	if err != nil {
		if err == store.ErrHelpRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	claims := currentClaims(c)
	if claims.Role != schema.RoleAdmin &&
		request.RequesterID != claims.UserID &&
		(request.AssignedResponderID == nil || *request.AssignedResponderID != claims.UserID) {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	c.JSON(http.StatusOK, request)
}

// assignHelpRequest hands a pending or already assigned request to an active
// responder.
func (s *Server) assignHelpRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("helpRequestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		ResponderID int `json:"responder_id"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.store.GetHelpRequest(id)
	if err != nil {
		if err == store.ErrHelpRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	responder, err := s.store.GetUser(params.ResponderID)
	if err != nil && err != store.ErrUserNotFound {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}
	if responder == nil || !responder.IsActive ||
		(responder.Role != schema.RoleResponder && responder.Role != schema.RoleAdmin) {
		abortWithEncoding(c, http.StatusBadRequest, errorResponderNotEligible)
		return
	}

	if err := s.store.AssignHelpRequest(id, responder.ID, request.Version); err != nil {
		s.abortWithHelpRequestError(c, err)
		return
	}

	s.notify(&request.RequesterID, schema.NOTIFICATION_TYPE_HELP_REQUEST, "help_request.assigned",
		map[string]interface{}{"ID": request.ID}, &request.ID)
	s.notify(&responder.ID, schema.NOTIFICATION_TYPE_HELP_REQUEST, "help_request.assigned_responder",
		map[string]interface{}{"ID": request.ID, "Type": request.Type, "Urgency": request.Urgency}, &request.ID)

	c.Status(http.StatusNoContent)
}

// updateHelpRequestStatus applies a lifecycle transition. Admins may apply
// any legal transition, the assigned responder can move work forward, and the
// requester can only confirm completion of their own request.
func (s *Server) updateHelpRequestStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("helpRequestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Status string `json:"status"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidHelpRequestStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	// assignment carries a responder and goes through the assign endpoint;
	// accepting it here would produce an Assigned request with no responder
	if params.Status == schema.HELP_REQUEST_ASSIGNED {
		abortWithEncoding(c, http.StatusBadRequest, errorAssignmentViaStatus)
		return
	}

	request, err := s.store.GetHelpRequest(id)
	if err != nil {
		if err == store.ErrHelpRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	claims := currentClaims(c)
	switch {
	case claims.Role == schema.RoleAdmin:
	case request.AssignedResponderID != nil && *request.AssignedResponderID == claims.UserID:
		if params.Status != schema.HELP_REQUEST_IN_PROGRESS && params.Status != schema.HELP_REQUEST_COMPLETED {
			abortWithEncoding(c, http.StatusForbidden, errorForbidden)
			return
		}
	case request.RequesterID == claims.UserID:
		if params.Status != schema.HELP_REQUEST_COMPLETED {
			abortWithEncoding(c, http.StatusForbidden, errorForbidden)
			return
		}
	default:
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	if err := s.store.UpdateHelpRequestStatus(id, params.Status, request.Version); err != nil {
		s.abortWithHelpRequestError(c, err)
		return
	}

	switch params.Status {
	case schema.HELP_REQUEST_COMPLETED:
		s.notify(&request.RequesterID, schema.NOTIFICATION_TYPE_HELP_REQUEST, "help_request.completed",
			map[string]interface{}{"ID": request.ID}, &request.ID)
	case schema.HELP_REQUEST_CANCELLED:
		s.notify(&request.RequesterID, schema.NOTIFICATION_TYPE_HELP_REQUEST, "help_request.cancelled",
			map[string]interface{}{"ID": request.ID}, &request.ID)
	}

	c.Status(http.StatusNoContent)
}

// cancelHelpRequest closes a request before work starts. Only the requester
// and admins may cancel, and only from Pending or Assigned.
func (s *Server) cancelHelpRequest(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("helpRequestID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	request, err := s.store.GetHelpRequest(id)
	if err != nil {
		if err == store.ErrHelpRequestNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	claims := currentClaims(c)
	if claims.Role != schema.RoleAdmin && request.RequesterID != claims.UserID {
		abortWithEncoding(c, http.StatusForbidden, errorForbidden)
		return
	}

	notes := request.Notes
	if reason := strings.TrimSpace(params.Reason); reason != "" {
		if notes != "" {
			notes += "\n"
		}
		notes += "Cancelled: " + reason
	}

	if err := s.store.CancelHelpRequest(id, notes, request.Version); err != nil {
		s.abortWithHelpRequestError(c, err)
		return
	}

	s.notify(&request.RequesterID, schema.NOTIFICATION_TYPE_HELP_REQUEST, "help_request.cancelled",
		map[string]interface{}{"ID": request.ID}, &request.ID)

	c.Status(http.StatusNoContent)
}

// abortWithHelpRequestError maps guarded-update failures onto the wire
func (s *Server) abortWithHelpRequestError(c *gin.Context, err error) {
	switch err {
	case store.ErrHelpRequestNotFound:
		abortWithEncoding(c, http.StatusNotFound, errorHelpRequestNotFound)
	case store.ErrInvalidTransition:
		abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
	case store.ErrConcurrentModification:
		abortWithEncoding(c, http.StatusConflict, errorConcurrentModification)
	default:
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
	}
}
