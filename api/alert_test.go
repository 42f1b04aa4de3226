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

func TestCreateAlert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().CreateAlert(gomock.Any()).DoAndReturn(func(a *schema.Alert) error {
		assert.Equal(t, "Flood warning", a.Title)
		assert.Equal(t, schema.URGENCY_MEDIUM, a.Priority, "priority defaults to Medium")
		assert.Equal(t, 1, a.CreatedBy)
		a.ID = 2
		a.Status = schema.ALERT_ACTIVE
		return nil
	}).Times(1)
	m.EXPECT().CreateNotification(gomock.Any()).DoAndReturn(func(n *schema.Notification) error {
		assert.Equal(t, schema.NOTIFICATION_TYPE_ALERT, n.Type)
		assert.Nil(t, n.UserID, "alert notifications are broadcasts")
		return nil
	}).Times(1)

	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.POST("/", withTestUser(admin), s.createAlert)

	req := httptest.NewRequest("POST", "/", jsonBody(t, map[string]interface{}{
		"title":       "Flood warning",
		"description": "River levels rising in the north district",
		"alert_type":  "Weather",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp schema.Alert
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.ID)
	assert.Equal(t, schema.ALERT_ACTIVE, resp.Status)
}

func TestCreateAlertValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s := Server{store: mocks.NewMockSafeCore(ctl)}
	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.POST("/", withTestUser(admin), s.createAlert)

	req := httptest.NewRequest("POST", "/", jsonBody(t, map[string]interface{}{
		"title": "Flood warning",
	}))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestListActiveAlerts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().ListActiveAlerts().Return([]schema.Alert{{ID: 2}, {ID: 3}}, nil).Times(1)

	user := &schema.User{ID: 7, Role: schema.RoleUser}

	router := gin.New()
	router.GET("/", withTestUser(user), s.listActiveAlerts)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []schema.Alert
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestResolveAlert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().ResolveAlert(2).Return(nil).Times(1)

	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:alertID/resolve", withTestUser(admin), s.resolveAlert)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PUT", "/2/resolve", nil))

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestResolveAlertAlreadyClosed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().ResolveAlert(2).Return(store.ErrInvalidTransition).Times(1)

	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:alertID/resolve", withTestUser(admin), s.resolveAlert)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PUT", "/2/resolve", nil))

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, int64(1202), decodeError(t, w).Code)
}

func TestResolveAlertNotFound(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	m := mocks.NewMockSafeCore(ctl)
	s := Server{store: m}

	m.EXPECT().ResolveAlert(42).Return(store.ErrAlertNotFound).Times(1)

	admin := &schema.User{ID: 1, Role: schema.RoleAdmin}

	router := gin.New()
	router.PUT("/:alertID/resolve", withTestUser(admin), s.resolveAlert)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("PUT", "/42/resolve", nil))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1400), decodeError(t, w).Code)
}
