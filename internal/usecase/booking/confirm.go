package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/audit"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
)

const warnConfirmNotify = "Booking confirmed, but the payment confirmation email could not be sent. Please notify the guest manually."

type ConfirmBooking struct {
	repo         domain.Repository
	availability *Availability
	notifier     Notifier
	audit        *audit.Dispatcher
	now          Clock
	log          *logrus.Logger
}

func NewConfirmBooking(
	repo domain.Repository,
	availability *Availability,
	notifier Notifier,
	audit *audit.Dispatcher,
	now Clock,
	log *logrus.Logger,
) *ConfirmBooking {
	return &ConfirmBooking{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		audit:        audit,
		now:          now,
		log:          log,
	}
}

// Execute confirms a pending booking. Its dates are checked again so two
// overlapping pending bookings can never both be confirmed.
func (uc *ConfirmBooking) Execute(
	ctx context.Context,
	id string,
	actorID *string,
) (*Result, error) {

	now := uc.now()

	b, err := mutateLocked(ctx, uc.repo, id, func(tx domain.Repository, b *domain.Booking) error {
		if err := domain.CanConfirm(b.Status); err != nil {
			return err
		}
		if err := uc.availability.Verify(ctx, tx, domain.AvailabilityQuery{
			ApartmentID:      b.ApartmentID,
			Range:            b.Range(),
			ExcludeBookingID: b.ID,
		}); err != nil {
			return err
		}
		return domain.Confirm(b, now)
	})
	if err != nil {
		return nil, err
	}

	uc.availability.Invalidate(ctx, b.ApartmentID)

	uc.log.WithFields(logrus.Fields{
		"booking_id":   b.ID,
		"apartment_id": b.ApartmentID,
		"status":       b.Status,
	}).Info("booking confirmed")

	uc.audit.Dispatch(audit.Event{
		BookingID: b.ID,
		ActorID:   actorID,
		Action:    audit.ActionConfirmed,
		At:        now,
	})

	res := &Result{Booking: b}
	if err := uc.notifier.Notify(ctx, notify.KindConfirmed, b, ""); err != nil {
		res.Warning = warnConfirmNotify
	}
	return res, nil
}
