package api

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/safe-response/safe-api/schema"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// withTestUser replaces the auth middlewares and injects a signed-in user
// straight into the request context.
func withTestUser(user *schema.User) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("claims", &UserClaims{
			UserID: user.ID,
			Email:  user.Email,
			Role:   user.Role,
			Name:   user.Name(),
		})
		c.Set("user", user)
		c.Next()
	}
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	b, err := json.Marshal(v)
	assert.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) ErrorResponse {
	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}
