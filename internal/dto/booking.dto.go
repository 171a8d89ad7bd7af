package dto

import (
	"time"

	"github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

type PricingDTO struct {
	NightlyRate   int64 `json:"nightly_rate"`
	Nights        int   `json:"total_nights"`
	Subtotal      int64 `json:"subtotal"`
	VAT           int64 `json:"vat_amount"`
	ServiceCharge int64 `json:"service_charge"`
	GrandTotal    int64 `json:"grand_total"`

	GrandTotalDisplay string `json:"grand_total_display"`
}

// BookingDTO is the admin view of a booking. Amounts are kobo, dates are
// YYYY-MM-DD.
type BookingDTO struct {
	ID            string  `json:"id"`
	ApartmentID   string  `json:"apartment_id"`
	ApartmentName string  `json:"apartment_name"`
	UserID        *string `json:"user_id"`

	UserTitle   string `json:"user_title"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	UserEmail   string `json:"user_email"`
	UserPhone   string `json:"user_phone"`
	GuestNumber int    `json:"guest_number"`

	CheckinDate  string `json:"checkin_date"`
	CheckoutDate string `json:"checkout_date"`

	Status      string     `json:"status"`
	StatusLabel string     `json:"status_label"`
	Pricing     PricingDTO `json:"pricing"`
	Reason      string     `json:"reason,omitempty"`

	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
	PaymentDate      *time.Time `json:"payment_date"`
	CancellationDate *time.Time `json:"cancellation_date"`
	ExtendedAt       *time.Time `json:"extended_at,omitempty"`
}

// PublicBookingDTO is what the confirmation page may show without a login.
type PublicBookingDTO struct {
	ID            string     `json:"id"`
	ApartmentID   string     `json:"apartment_id"`
	ApartmentName string     `json:"apartment_name"`
	FirstName     string     `json:"first_name"`
	CheckinDate   string     `json:"checkin_date"`
	CheckoutDate  string     `json:"checkout_date"`
	GuestNumber   int        `json:"guest_number"`
	Status        string     `json:"status"`
	StatusLabel   string     `json:"status_label"`
	Pricing       PricingDTO `json:"pricing"`
	CreatedAt     time.Time  `json:"created_at"`
}

func pricing(p booking.Pricing) PricingDTO {
	return PricingDTO{
		NightlyRate:       p.NightlyRate,
		Nights:            p.Nights,
		Subtotal:          p.Subtotal,
		VAT:               p.VAT,
		ServiceCharge:     p.ServiceCharge,
		GrandTotal:        p.GrandTotal,
		GrandTotalDisplay: notify.FormatNaira(p.GrandTotal),
	}
}

func day(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return timezone.FormatDay(t)
}

func FromBooking(b *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:               b.ID,
		ApartmentID:      b.ApartmentID,
		ApartmentName:    b.ApartmentName,
		UserID:           b.UserID,
		UserTitle:        b.Guest.Title,
		FirstName:        b.Guest.FirstName,
		LastName:         b.Guest.LastName,
		UserEmail:        b.Guest.Email,
		UserPhone:        b.Guest.Phone,
		GuestNumber:      b.Guest.Count,
		CheckinDate:      day(b.CheckIn),
		CheckoutDate:     day(b.CheckOut),
		Status:           string(b.Status),
		StatusLabel:      b.Status.Label(),
		Pricing:          pricing(b.Pricing),
		Reason:           b.Reason,
		CreatedAt:        b.CreatedAt,
		UpdatedAt:        b.UpdatedAt,
		PaymentDate:      b.PaymentDate,
		CancellationDate: b.CancellationDate,
		ExtendedAt:       b.ExtendedAt,
	}
}

func FromBookings(list []booking.Booking) []BookingDTO {
	out := make([]BookingDTO, 0, len(list))
	for i := range list {
		out = append(out, FromBooking(&list[i]))
	}
	return out
}

func PublicFromBooking(b *booking.Booking) PublicBookingDTO {
	return PublicBookingDTO{
		ID:            b.ID,
		ApartmentID:   b.ApartmentID,
		ApartmentName: b.ApartmentName,
		FirstName:     b.Guest.FirstName,
		CheckinDate:   day(b.CheckIn),
		CheckoutDate:  day(b.CheckOut),
		GuestNumber:   b.Guest.Count,
		Status:        string(b.Status),
		StatusLabel:   b.Status.Label(),
		Pricing:       pricing(b.Pricing),
		CreatedAt:     b.CreatedAt,
	}
}
