package models

import (
	"time"

	"gorm.io/datatypes"
)

// PricingSnapshot is stored as JSONB. Amounts are kobo.
type PricingSnapshot struct {
	NightlyRate   int64 `json:"nightly_rate"`
	Nights        int   `json:"nights"`
	Subtotal      int64 `json:"subtotal"`
	VAT           int64 `json:"vat_amount"`
	ServiceCharge int64 `json:"service_charge"`
	GrandTotal    int64 `json:"grand_total"`
}

// Booking is one document of the bookings collection. Status is kept as the
// raw stored string so legacy values can be read back.
type Booking struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	ApartmentID   string `gorm:"size:64;not null;index" json:"apartment_id"`
	ApartmentName string `gorm:"size:120" json:"apartment_name"`

	UserID *string `gorm:"size:36;index" json:"user_id"`

	UserTitle   string `gorm:"size:20" json:"user_title"`
	FirstName   string `gorm:"size:100;not null" json:"first_name"`
	LastName    string `gorm:"size:100;not null" json:"last_name"`
	UserEmail   string `gorm:"size:150;not null" json:"user_email"`
	UserPhone   string `gorm:"size:30;not null" json:"user_phone"`
	GuestNumber int    `json:"guest_number"`

	CheckinDate  time.Time `gorm:"type:date;not null" json:"checkin_date"`
	CheckoutDate time.Time `gorm:"type:date;not null" json:"checkout_date"`

	Status  string                              `gorm:"size:32;not null;index" json:"status"`
	Pricing datatypes.JSONType[PricingSnapshot] `json:"pricing"`
	Reason  string                              `gorm:"size:255" json:"reason"`

	PaymentDate      *time.Time `json:"payment_date"`
	CancellationDate *time.Time `json:"cancellation_date"`
	ExtendedAt       *time.Time `json:"extended_at"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;index" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updated_at"`
}
