package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func Forbidden(c *gin.Context, code, message string) {
	Write(c, http.StatusForbidden, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

// StatusFor maps a business code to its HTTP status.
func StatusFor(code string) int {
	switch code {
	case CodeInvalidRequest, CodeInvalidDates, CodeUnknownApartment, CodeTooManyGuests:
		return http.StatusBadRequest
	case CodeDatesUnavailable, CodeInvalidState:
		return http.StatusConflict
	case CodeAvailabilityUnverified, CodeExportDisabled:
		return http.StatusServiceUnavailable
	case CodeBookingNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// FromError writes a business error with its mapped status, or a generic
// failure for anything else. Raw faults never reach the client.
func FromError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	if be, ok := AsBusiness(err); ok {
		msg := be.Message
		if msg == "" {
			msg = DefaultMessage(be.Code)
		}
		Write(c, StatusFor(be.Code), be.Code, msg)
		return
	}
	Internal(c, fallbackCode, fallbackMessage)
}
