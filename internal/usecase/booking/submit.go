package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/apartment"
	"github.com/BruksfildServices01/prestine-booking/internal/audit"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

const warnSubmitNotify = "Your reservation was received, but the confirmation email could not be sent. We will contact you shortly."

// ======================================================
// INPUT
// ======================================================

type SubmitInput struct {
	ApartmentID string
	UserID      *string
	Guest       domain.Guest
	CheckIn     time.Time
	CheckOut    time.Time
}

// ======================================================
// USE CASE
// ======================================================

type SubmitBooking struct {
	repo         domain.Repository
	catalog      *apartment.Catalog
	availability *Availability
	notifier     Notifier
	audit        *audit.Dispatcher
	validate     *validator.Validate
	now          Clock
	log          *logrus.Logger
}

func NewSubmitBooking(
	repo domain.Repository,
	catalog *apartment.Catalog,
	availability *Availability,
	notifier Notifier,
	audit *audit.Dispatcher,
	now Clock,
	log *logrus.Logger,
) *SubmitBooking {
	return &SubmitBooking{
		repo:         repo,
		catalog:      catalog,
		availability: availability,
		notifier:     notifier,
		audit:        audit,
		validate:     validator.New(),
		now:          now,
		log:          log,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *SubmitBooking) Execute(ctx context.Context, in SubmitInput) (*Result, error) {

	// --------------------------------------------------
	// Validation, before any store access
	// --------------------------------------------------
	if err := uc.validateGuest(in.Guest); err != nil {
		return nil, err
	}

	apt, ok := uc.catalog.Get(in.ApartmentID)
	if !ok {
		return nil, httperr.ErrBusiness(httperr.CodeUnknownApartment)
	}
	if in.Guest.Count > apt.MaxGuests {
		return nil, httperr.ErrBusiness(httperr.CodeTooManyGuests)
	}

	r, err := domain.NewDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// Authoritative check and write under the apartment lock
	// --------------------------------------------------
	now := uc.now()
	b := &domain.Booking{
		ApartmentID:   apt.ID,
		ApartmentName: apt.Name,
		UserID:        in.UserID,
		Guest:         in.Guest,
		CheckIn:       r.CheckIn,
		CheckOut:      r.CheckOut,
		Status:        domain.InitialStatus(),
		Pricing:       domain.Quote(apt.NightlyRate, r.Nights()),
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = uc.repo.WithApartmentLock(ctx, apt.ID, func(tx domain.Repository) error {
		if err := uc.availability.Verify(ctx, tx, domain.AvailabilityQuery{
			ApartmentID: apt.ID,
			Range:       r,
		}); err != nil {
			return err
		}
		return tx.Create(ctx, b)
	})
	if err != nil {
		return nil, err
	}

	uc.log.WithFields(logrus.Fields{
		"booking_id":   b.ID,
		"apartment_id": b.ApartmentID,
		"check_in":     timezone.FormatDay(r.CheckIn),
		"check_out":    timezone.FormatDay(r.CheckOut),
	}).Info("booking submitted")

	uc.audit.Dispatch(audit.Event{
		BookingID: b.ID,
		ActorID:   in.UserID,
		Action:    audit.ActionSubmitted,
		At:        now,
	})

	// --------------------------------------------------
	// Notification never rolls back the booking
	// --------------------------------------------------
	res := &Result{Booking: b}
	if err := uc.notifier.Notify(ctx, notify.KindSubmitted, b, ""); err != nil {
		res.Warning = warnSubmitNotify
	}
	return res, nil
}

func (uc *SubmitBooking) validateGuest(g domain.Guest) error {
	err := uc.validate.Struct(g)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return httperr.ErrBusiness(httperr.CodeInvalidRequest)
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Field() == "Email" && fe.Tag() == "email" {
			return httperr.ErrBusinessMsg(httperr.CodeInvalidRequest, "Please enter a valid email address.")
		}
		fields = append(fields, fieldLabel(fe.Field()))
	}

	return httperr.ErrBusinessMsg(
		httperr.CodeInvalidRequest,
		"Please fill in all required fields: "+strings.Join(fields, ", ")+".",
	)
}

func fieldLabel(field string) string {
	switch field {
	case "FirstName":
		return "first name"
	case "LastName":
		return "last name"
	case "Count":
		return "number of guests"
	default:
		return strings.ToLower(field)
	}
}
