package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Business error codes shared by the use cases and the HTTP layer.
const (
	CodeInvalidRequest         = "invalid_request"
	CodeInvalidDates           = "invalid_dates"
	CodeUnknownApartment       = "unknown_apartment"
	CodeTooManyGuests          = "too_many_guests"
	CodeDatesUnavailable       = "dates_unavailable"
	CodeAvailabilityUnverified = "availability_unverified"
	CodeBookingNotFound        = "booking_not_found"
	CodeInvalidState           = "invalid_state"
	CodeExportDisabled         = "export_disabled"
)

type BusinessError struct {
	Code    string
	Message string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code, Message: DefaultMessage(code)}
}

// ErrBusinessMsg is ErrBusiness with a caller supplied user-facing message.
func ErrBusinessMsg(code, message string) error {
	return BusinessError{Code: code, Message: message}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

// AsBusiness unwraps err into a BusinessError if it is one.
func AsBusiness(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// IsExclusionConflict reports whether err is a postgres exclusion or unique
// constraint violation.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23P01" || pgErr.Code == "23505"
	}
	return false
}

// IsUniqueViolation reports whether err is a postgres unique violation.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func DefaultMessage(code string) string {
	switch code {
	case CodeInvalidRequest:
		return "Please fill in all required fields."
	case CodeInvalidDates:
		return "Check-out date must be after check-in date."
	case CodeUnknownApartment:
		return "The selected apartment does not exist."
	case CodeTooManyGuests:
		return "The number of guests exceeds the apartment capacity."
	case CodeDatesUnavailable:
		return "These dates are not available. Please choose different dates."
	case CodeAvailabilityUnverified:
		return "We could not verify availability right now. Please retry or contact us."
	case CodeBookingNotFound:
		return "Booking not found."
	case CodeInvalidState:
		return "This booking cannot be changed from its current status."
	case CodeExportDisabled:
		return "Export storage is not configured."
	default:
		return ""
	}
}
