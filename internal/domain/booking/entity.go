package booking

import (
	"strings"
	"time"
)

const (
	ReasonCancelledByAdmin = "Cancelled by admin"
	ReasonPaymentElapsed   = "Payment window elapsed"
)

type Guest struct {
	Title     string `validate:"required"`
	FirstName string `validate:"required"`
	LastName  string `validate:"required"`
	Email     string `validate:"required,email"`
	Phone     string `validate:"required"`
	Count     int    `validate:"min=1"`
}

func (g Guest) FullName() string {
	return strings.TrimSpace(g.FirstName + " " + g.LastName)
}

// Pricing is the price snapshot taken at submission. Amounts are kobo.
type Pricing struct {
	NightlyRate   int64 `json:"nightly_rate"`
	Nights        int   `json:"nights"`
	Subtotal      int64 `json:"subtotal"`
	VAT           int64 `json:"vat"`
	ServiceCharge int64 `json:"service_charge"`
	GrandTotal    int64 `json:"grand_total"`
}

type Booking struct {
	ID            string
	ApartmentID   string
	ApartmentName string
	UserID        *string

	Guest Guest

	CheckIn  time.Time
	CheckOut time.Time

	Status  Status
	Pricing Pricing
	Reason  string

	CreatedAt        time.Time
	UpdatedAt        time.Time
	PaymentDate      *time.Time
	CancellationDate *time.Time
	ExtendedAt       *time.Time
}

func (b *Booking) Range() DateRange {
	return DateRange{CheckIn: b.CheckIn, CheckOut: b.CheckOut}
}

// ===============================
// Domain Actions
// ===============================

func Confirm(b *Booking, now time.Time) error {
	if err := CanConfirm(b.Status); err != nil {
		return err
	}

	b.Status = StatusConfirmed
	b.PaymentDate = &now
	b.UpdatedAt = now
	return nil
}

func Cancel(b *Booking, reason string, now time.Time) error {
	if err := CanCancel(b.Status); err != nil {
		return err
	}
	if reason == "" {
		reason = ReasonCancelledByAdmin
	}

	release(b, StatusCancelled, reason, now)
	return nil
}

func Expire(b *Booking, reason string, now time.Time) error {
	if err := CanExpire(b.Status); err != nil {
		return err
	}
	if reason == "" {
		reason = ReasonPaymentElapsed
	}

	release(b, StatusFailed, reason, now)
	return nil
}

func release(b *Booking, to Status, reason string, now time.Time) {
	b.Status = to
	b.PaymentDate = nil
	b.CancellationDate = &now
	b.Reason = reason
	b.UpdatedAt = now
}

// Extend moves a confirmed stay to r. Pricing is left as it was quoted.
func Extend(b *Booking, r DateRange, now time.Time) error {
	if err := CanExtend(b.Status); err != nil {
		return err
	}

	b.CheckIn = r.CheckIn
	b.CheckOut = r.CheckOut
	b.UpdatedAt = now
	b.ExtendedAt = &now
	return nil
}

// IsStale reports whether a tentative booking has outlived the payment window.
func IsStale(b *Booking, window time.Duration, now time.Time) bool {
	if !b.Status.IsPending() || b.CreatedAt.IsZero() {
		return false
	}
	return now.Sub(b.CreatedAt) >= window
}
