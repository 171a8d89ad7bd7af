package notify

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

// Kind is the lifecycle transition a notification reports.
type Kind string

const (
	KindSubmitted Kind = "submitted"
	KindConfirmed Kind = "confirmed"
	KindCancelled Kind = "cancelled"
	KindExpired   Kind = "expired"
	KindExtended  Kind = "extended"
)

// Default booking_status texts.
const (
	StatusSubmitted = "Reservation received - awaiting payment"
	StatusConfirmed = "Booking Confirmed - Payment Received"
	StatusCancelled = "Booking cancelled - please contact support for more details."
	StatusExpired   = "Reservation not successful - payment was not received within 48 hours."
	StatusExtended  = "Stay extended successfully. New dates have been confirmed."
)

func (k Kind) defaultStatus() string {
	switch k {
	case KindSubmitted:
		return StatusSubmitted
	case KindConfirmed:
		return StatusConfirmed
	case KindCancelled:
		return StatusCancelled
	case KindExpired:
		return StatusExpired
	case KindExtended:
		return StatusExtended
	default:
		return ""
	}
}

// templates lists who hears about each transition. Confirmation only
// goes to the guest.
func (k Kind) templates() []Template {
	if k == KindConfirmed {
		return []Template{TemplateGuest}
	}
	return []Template{TemplateGuest, TemplateOperator}
}

// Params flattens a booking into the template variables.
func Params(b *booking.Booking, status string) map[string]string {
	p := b.Pricing

	return map[string]string{
		"user_title":      b.Guest.Title,
		"first_name":      b.Guest.FirstName,
		"last_name":       b.Guest.LastName,
		"user_email":      b.Guest.Email,
		"user_phone":      b.Guest.Phone,
		"checkin_date":    formatDay(b.CheckIn),
		"checkout_date":   formatDay(b.CheckOut),
		"guest_number":    strconv.Itoa(b.Guest.Count),
		"apartment_name":  b.ApartmentName,
		"room_rate":       FormatNaira(p.NightlyRate),
		"price_per_night": FormatNaira(p.NightlyRate) + "/night",
		"subtotal":        FormatNaira(p.Subtotal),
		"vat_amount":      FormatNaira(p.VAT),
		"service_charge":  FormatNaira(p.ServiceCharge),
		"grand_total":     FormatNaira(p.GrandTotal),
		"total_nights":    strconv.Itoa(p.Nights),
		"payment_date":    FormatPaymentDate(b.PaymentDate),
		"booking_status":  status,
	}
}

func formatDay(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timezone.FormatDay(t)
}

// Messages builds the messages for one transition. An empty status uses
// the transition's default text.
func Messages(kind Kind, b *booking.Booking, status string) []Message {
	if status == "" {
		status = kind.defaultStatus()
	}

	tpls := kind.templates()
	out := make([]Message, 0, len(tpls))
	for _, tpl := range tpls {
		out = append(out, Message{
			Kind:      kind,
			BookingID: b.ID,
			Template:  tpl,
			Params:    Params(b, status),
		})
	}
	return out
}

// ======================================================
// TRIGGER
// ======================================================

type Trigger struct {
	notifier Notifier
	log      *logrus.Logger
}

func NewTrigger(n Notifier, log *logrus.Logger) *Trigger {
	return &Trigger{notifier: n, log: log}
}

// Notify sends every message of the transition, even after a failure, and
// returns the joined delivery errors.
func (t *Trigger) Notify(
	ctx context.Context,
	kind Kind,
	b *booking.Booking,
	status string,
) error {

	var errs []error
	for _, msg := range Messages(kind, b, status) {
		if err := t.notifier.Send(ctx, msg); err != nil {
			t.log.WithFields(logrus.Fields{
				"booking_id": b.ID,
				"kind":       kind,
				"template":   msg.Template,
			}).WithError(err).Warn("notification failed")

			errs = append(errs, fmt.Errorf("%s %s: %w", kind, msg.Template, err))
		}
	}
	return errors.Join(errs...)
}
