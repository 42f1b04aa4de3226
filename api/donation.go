package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/safe-response/safe-api/schema"
	"github.com/safe-response/safe-api/store"
)

// createDonation records a contribution. Payment collection happens in an
// external gateway; the donation is always stored as Pending.
func (s *Server) createDonation(c *gin.Context) {
	user := currentUser(c)

	var params struct {
		Amount           float64 `json:"amount"`
		Type             string  `json:"type"`
		Message          string  `json:"message"`
		PaymentReference string  `json:"payment_reference"`
		PaymentMethod    string  `json:"payment_method"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if params.Amount <= 0 {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidAmount)
		return
	}
	if strings.TrimSpace(params.Type) == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorMissingType)
		return
	}

	donation := &schema.Donation{
		UserID:           user.ID,
		Amount:           params.Amount,
		Type:             params.Type,
		Message:          params.Message,
		PaymentReference: params.PaymentReference,
		PaymentMethod:    params.PaymentMethod,
	}

	if err := s.store.CreateDonation(donation); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(http.StatusOK, donation)
}

// listMyDonations returns the caller's donations; admins get everything
func (s *Server) listMyDonations(c *gin.Context) {
	claims := currentClaims(c)

	var donations []schema.Donation
	var err error
	if claims.Role == schema.RoleAdmin {
		donations, err = s.store.ListDonations()
	} else {
		donations, err = s.store.ListUserDonations(claims.UserID)
	}
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, donations)
}

func (s *Server) listAllDonations(c *gin.Context) {
	donations, err := s.store.ListDonations()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, donations)
}

// updateDonationStatus moves a donation through the review flow and tells the
// donor about the outcome.
func (s *Server) updateDonationStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("donationID"))
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

	if !schema.ValidDonationStatus(params.Status) {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidStatus)
		return
	}

	donation, err := s.store.UpdateDonationStatus(id, params.Status)
	if err != nil {
		switch err {
		case store.ErrDonationNotFound:
			abortWithEncoding(c, http.StatusNotFound, errorDonationNotFound)
		case store.ErrInvalidTransition:
			abortWithEncoding(c, http.StatusConflict, errorInvalidTransition)
		default:
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	var messageID string
	switch params.Status {
	case schema.DONATION_APPROVED:
		messageID = "donation.approved"
	case schema.DONATION_REJECTED:
		messageID = "donation.rejected"
	case schema.DONATION_DISTRIBUTED:
		messageID = "donation.distributed"
	}
	if messageID != "" {
		s.notify(&donation.UserID, schema.NOTIFICATION_TYPE_DONATION, messageID,
			map[string]interface{}{"Amount": donation.Amount, "Type": donation.Type}, nil)
	}

	c.JSON(http.StatusOK, donation)
}
