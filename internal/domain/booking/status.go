package booking

import (
	"fmt"

	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
)

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPendingPayment Status = "pending_payment"
	StatusConfirmed      Status = "booking_successful"
	StatusCancelled      Status = "cancelled"
	StatusFailed         Status = "reservation_failed"
)

// legacyTemporary is how older records spell pending_payment.
const legacyTemporary = "temporary"

// ParseStatus translates a stored status string into the canonical enum.
// The legacy alias never survives past this point.
func ParseStatus(raw string) (Status, error) {
	switch raw {
	case string(StatusPendingPayment), legacyTemporary:
		return StatusPendingPayment, nil
	case string(StatusConfirmed):
		return StatusConfirmed, nil
	case string(StatusCancelled):
		return StatusCancelled, nil
	case string(StatusFailed):
		return StatusFailed, nil
	default:
		return "", fmt.Errorf("booking: unknown status %q", raw)
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsPending() bool {
	return s == StatusPendingPayment
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusFailed
}

// BlocksDates is true only for confirmed bookings.
func (s Status) BlocksDates() bool {
	return s == StatusConfirmed
}

func (s Status) Label() string {
	switch s {
	case StatusPendingPayment:
		return "Pending Payment"
	case StatusConfirmed:
		return "Booking Successful"
	case StatusCancelled:
		return "Cancelled"
	case StatusFailed:
		return "Reservation Not Successful"
	default:
		return string(s)
	}
}

// ===============================
// Validations
// ===============================

func CanConfirm(current Status) error {
	if current != StatusPendingPayment {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanCancel(current Status) error {
	if current.IsTerminal() {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanExpire(current Status) error {
	if current != StatusPendingPayment {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func CanExtend(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusPendingPayment
}
