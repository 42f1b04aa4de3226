package api

import "github.com/safe-response/safe-api/store"

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1001: "invalid authorization format",
		1003: "invalid token",
		1004: "token expired",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: store.ErrEmailTaken.Error(),
		1101: "invalid email or password",
		1102: "account not found",
		1103: "the account has been deactivated",
		1104: "operation not permitted for this role",
		1105: "unknown role",

		1200: store.ErrHelpRequestNotFound.Error(),
		1201: "unrecognized status value",
		1202: store.ErrInvalidTransition.Error(),
		1203: store.ErrConcurrentModification.Error(),
		1204: "the responder is not eligible for assignment",
		1205: "unrecognized urgency value",
		1206: "responder assignment must use the assign endpoint",

		1300: store.ErrDonationNotFound.Error(),
		1301: "donation amount must be greater than zero",
		1302: "donation type is required",

		1400: store.ErrAlertNotFound.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorInvalidToken               = errorJSON(1003)
	errorTokenExpired               = errorJSON(1004)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorEmailTaken         = errorJSON(1100)
	errorInvalidCredentials = errorJSON(1101)
	errorAccountNotFound    = errorJSON(1102)
	errorAccountDeactivated = errorJSON(1103)
	errorForbidden          = errorJSON(1104)
	errorUnknownRole        = errorJSON(1105)

	errorHelpRequestNotFound    = errorJSON(1200)
	errorInvalidStatus          = errorJSON(1201)
	errorInvalidTransition      = errorJSON(1202)
	errorConcurrentModification = errorJSON(1203)
	errorResponderNotEligible   = errorJSON(1204)
	errorInvalidUrgency         = errorJSON(1205)
	errorAssignmentViaStatus    = errorJSON(1206)

	errorDonationNotFound = errorJSON(1300)
	errorInvalidAmount    = errorJSON(1301)
	errorMissingType      = errorJSON(1302)

	errorAlertNotFound = errorJSON(1400)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
