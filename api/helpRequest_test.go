package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/safe-response/safe-api/api/mocks"
	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/store"
)

func TestCreateHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	requester := &schema.User{ID: 7, Email: "maria@example.com", Role: schema.RoleUser}

	m.EXPECT().CreateHelpRequest(gomock.Any()).DoAndReturn(func(r *schema.HelpRequest) error {
		assert.Equal(t, "Medical", r.Type)
		assert.Equal(t, schema.URGENCY_HIGH, r.Urgency)
		assert.Equal(t, 7, r.RequesterID)
		r.ID = 3
		r.Status = schema.HELP_REQUEST_PENDING
		return nil
	}).Times(1)
	m.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(func(n *schema.Notification) error {
		assert.Equal(t, schema.NOTIFICATION_TYPE_HELP_REQUEST, n.Type)
		if assert.NotNil(t, n.UserID) {
			assert.Equal(t, 7, *n.UserID)
		}
		return nil
	}).Times(1)

	router := gin.New()
	router.POST("/", withTestUser(requester), s.createHelpRequest)

	req := httptest.NewRequest("POST", "/", jsonBody(t, map[string]interface{}{
		"type":        "Medical",
		"description": "need insulin",
		"urgency":     schema.URGENCY_HIGH,
		"location":    "12 Main St, Springfield",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp schema.HelpRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.ID)
	assert.Equal(t, schema.HELP_REQUEST_PENDING, resp.Status)
}

func TestCreateHelpRequestValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockSafeCore(ctl)}
	requester := &schema.User{ID: 7, Role: schema.RoleUser}

	router := gin.New()
	router.POST("/", withTestUser(requester), s.createHelpRequest)

	// missing description
	req := httptest.NewRequest("POST", "/", jsonBody(t, map[string]interface{}{
		"type":     "Medical",
		"urgency":  schema.URGENCY_LOW,
		"location": "12 Main St",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)

	// unknown urgency
	req = httptest.NewRequest("POST", "/", jsonBody(t, map[string]interface{}{
		"type":        "Medical",
		"description": "need insulin",
		"urgency":     "Critical",
		"location":    "12 Main St",
	}))
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1205), decodeError(t, w).Code)
}

func TestListHelpRequestsScoped(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().ListUserHelpRequests(7).Return([]schema.HelpRequest{{ID: 1, RequesterID: 7}}, nil).Times(1)
	m.EXPECT().ListHelpRequests().Return([]schema.HelpRequest{{ID: 1}, {ID: 2}}, nil).Times(1)

	router := gin.New()
	router.GET("/mine", withTestUser(&schema.User{ID: 7, Role: schema.RoleUser}), s.listHelpRequests)
	router.GET("/board", withTestUser(&schema.User{ID: 12, Role: schema.RoleResponder}), s.listHelpRequests)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/mine", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var mine []schema.HelpRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &mine))
	assert.Len(t, mine, 1)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/board", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var board []schema.HelpRequest
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &board))
	assert.Len(t, board, 2)
}

func TestListNearbyHelpRequests(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().ListNearbyHelpRequests(40.7128, -74.0060, 25.0).
		Return([]schema.HelpRequest{{ID: 3}}, nil).Times(1)

	responder := &schema.User{ID: 12, Role: schema.RoleResponder}

	router := gin.New()
	router.GET("/nearby", withTestUser(responder), s.listNearbyHelpRequests)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/nearby?latitude=40.7128&longitude=-74.0060&radius=25", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	// coordinates are mandatory
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/nearby?latitude=40.7128", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestGetHelpRequestForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:          3,
		RequesterID: 99,
	}, nil).Times(1)

	router := gin.New()
	router.GET("/:helpRequestID", withTestUser(&schema.User{ID: 7, Role: schema.RoleUser}), s.getHelpRequest)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/3", nil))
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1104), decodeError(t, w).Code)
}

func TestAssignHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:          3,
		Type:        "Medical",
		Urgency:     schema.URGENCY_HIGH,
		RequesterID: 7,
		Status:      schema.HELP_REQUEST_PENDING,
		Version:     2,
	}, nil).Times(1)
	m.EXPECT().GetUser(12).Return(&schema.User{
		ID:       12,
		Role:     schema.RoleResponder,
		IsActive: true,
	}, nil).Times(1)
	m.EXPECT().AssignHelpRequest(3, 12, 2).Return(nil).Times(1)
	// requester and responder each get a notification
	m.EXPECT().CreateNotification(gomock.Any()).Return(nil).Times(2)

	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:helpRequestID/assign", withTestUser(admin), s.assignHelpRequest)

	req := httptest.NewRequest("PUT", "/3/assign", jsonBody(t, map[string]interface{}{
		"responder_id": 12,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestAssignHelpRequestNotEligible(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:          3,
		RequesterID: 7,
		Status:      schema.HELP_REQUEST_PENDING,
	}, nil).Times(1)
	m.EXPECT().GetUser(9).Return(&schema.User{
		ID:       9,
		Role:     schema.RoleUser,
		IsActive: true,
	}, nil).Times(1)

	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:helpRequestID/assign", withTestUser(admin), s.assignHelpRequest)

	req := httptest.NewRequest("PUT", "/3/assign", jsonBody(t, map[string]interface{}{
		"responder_id": 9,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1204), decodeError(t, w).Code)
}

func TestAssignHelpRequestConflict(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:          3,
		RequesterID: 7,
		Status:      schema.HELP_REQUEST_COMPLETED,
		Version:     5,
	}, nil).Times(1)
	m.EXPECT().GetUser(12).Return(&schema.User{
		ID:       12,
		Role:     schema.RoleResponder,
		IsActive: true,
	}, nil).Times(1)
	m.EXPECT().AssignHelpRequest(3, 12, 5).Return(store.ErrInvalidTransition).Times(1)

	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:helpRequestID/assign", withTestUser(admin), s.assignHelpRequest)

	req := httptest.NewRequest("PUT", "/3/assign", jsonBody(t, map[string]interface{}{
		"responder_id": 12,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1202), decodeError(t, w).Code)
}

func TestUpdateHelpRequestStatusByResponder(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	responderID := 12
	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:                  3,
		RequesterID:         7,
		Status:              schema.HELP_REQUEST_ASSIGNED,
		AssignedResponderID: &responderID,
		Version:             3,
	}, nil).Times(1)
	m.EXPECT().UpdateHelpRequestStatus(3, schema.HELP_REQUEST_IN_PROGRESS, 3).Return(nil).Times(1)

	responder := &schema.User{ID: 12, Role: schema.RoleResponder}

	router := gin.New()
	router.PUT("/:helpRequestID/status", withTestUser(responder), s.updateHelpRequestStatus)

	req := httptest.NewRequest("PUT", "/3/status", jsonBody(t, map[string]interface{}{
		"status": schema.HELP_REQUEST_IN_PROGRESS,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestUpdateHelpRequestStatusForbidden(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	// the requester may only confirm completion
	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:          3,
		RequesterID: 7,
		Status:      schema.HELP_REQUEST_ASSIGNED,
	}, nil).Times(1)

	requester := &schema.User{ID: 7, Role: schema.RoleUser}

	router := gin.New()
	router.PUT("/:helpRequestID/status", withTestUser(requester), s.updateHelpRequestStatus)

	req := httptest.NewRequest("PUT", "/3/status", jsonBody(t, map[string]interface{}{
		"status": schema.HELP_REQUEST_IN_PROGRESS,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1104), decodeError(t, w).Code)
}

func TestUpdateHelpRequestStatusUnknownValue(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockSafeCore(ctl)}
	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:helpRequestID/status", withTestUser(admin), s.updateHelpRequestStatus)

	req := httptest.NewRequest("PUT", "/3/status", jsonBody(t, map[string]interface{}{
		"status": "Resolved",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1201), decodeError(t, w).Code)
}

func TestUpdateHelpRequestStatusRejectsAssigned(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	// even an admin must go through the assign endpoint so the request
	// always carries a responder and an assigned timestamp
	s := Server{store: mocks.NewMockSafeCore(ctl)}
	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:helpRequestID/status", withTestUser(admin), s.updateHelpRequestStatus)

	req := httptest.NewRequest("PUT", "/3/status", jsonBody(t, map[string]interface{}{
		"status": schema.HELP_REQUEST_ASSIGNED,
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1206), decodeError(t, w).Code)
}

func TestCancelHelpRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:          3,
		RequesterID: 7,
		Status:      schema.HELP_REQUEST_PENDING,
		Version:     1,
	}, nil).Times(1)
	m.EXPECT().CancelHelpRequest(3, "Cancelled: found help elsewhere", 1).Return(nil).Times(1)
	m.EXPECT().CreateNotification(gomock.Any()).Return(nil).Times(1)

	requester := &schema.User{ID: 7, Role: schema.RoleUser}

	router := gin.New()
	router.PUT("/:helpRequestID/cancel", withTestUser(requester), s.cancelHelpRequest)

	req := httptest.NewRequest("PUT", "/3/cancel", jsonBody(t, map[string]interface{}{
		"reason": "found help elsewhere",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestCancelHelpRequestConcurrentModification(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().GetHelpRequest(3).Return(&schema.HelpRequest{
		ID:          3,
		RequesterID: 7,
		Status:      schema.HELP_REQUEST_PENDING,
		Version:     1,
	}, nil).Times(1)
	m.EXPECT().CancelHelpRequest(3, gomock.Any(), 1).Return(store.ErrConcurrentModification).Times(1)

	requester := &schema.User{ID: 7, Role: schema.RoleUser}

	router := gin.New()
	router.PUT("/:helpRequestID/cancel", withTestUser(requester), s.cancelHelpRequest)

	req := httptest.NewRequest("PUT", "/3/cancel", jsonBody(t, map[string]interface{}{}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1203), decodeError(t, w).Code)
}
