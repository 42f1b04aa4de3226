package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/store"
)

// accountDetail is the API to query the calling user's own profile
func (s *Server) accountDetail(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": user,
	})
}

// listUsers returns every registered user for the admin console
func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.ListUsers()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, users)
}

// updateUserRole changes a user's role to another value of the closed set
func (s *Server) updateUserRole(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var params struct {
		Role string `json:"role"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if !schema.ValidRole(params.Role) {
		abortWithEncoding(c, http.StatusBadRequest, errorUnknownRole)
		return
	}

	if err := s.store.UpdateUserRole(id, params.Role); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// deactivateUser turns an account off without deleting it. The user's help
// requests and donations keep their ownership records.
func (s *Server) deactivateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("userID"))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err := s.store.DeactivateUser(id); err != nil {
		if err == store.ErrUserNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
