package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/audit"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
)

const warnCancelNotify = "Booking cancelled, but the cancellation email could not be sent. Please notify the guest manually."

type CancelBooking struct {
	repo         domain.Repository
	availability *Availability
	notifier     Notifier
	audit        *audit.Dispatcher
	now          Clock
	log          *logrus.Logger
}

func NewCancelBooking(
	repo domain.Repository,
	availability *Availability,
	notifier Notifier,
	audit *audit.Dispatcher,
	now Clock,
	log *logrus.Logger,
) *CancelBooking {
	return &CancelBooking{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		audit:        audit,
		now:          now,
		log:          log,
	}
}

// Execute cancels any non-terminal booking. An empty reason records the
// admin default.
func (uc *CancelBooking) Execute(
	ctx context.Context,
	id string,
	reason string,
	actorID *string,
) (*Result, error) {

	now := uc.now()

	var previous domain.Status
	b, err := mutateLocked(ctx, uc.repo, id, func(_ domain.Repository, b *domain.Booking) error {
		previous = b.Status
		return domain.Cancel(b, reason, now)
	})
	if err != nil {
		return nil, err
	}

	uc.availability.Invalidate(ctx, b.ApartmentID)

	uc.log.WithFields(logrus.Fields{
		"booking_id":   b.ID,
		"apartment_id": b.ApartmentID,
		"from":         previous,
		"reason":       b.Reason,
	}).Info("booking cancelled")

	uc.audit.Dispatch(audit.Event{
		BookingID: b.ID,
		ActorID:   actorID,
		Action:    audit.ActionCancelled,
		Metadata:  map[string]string{"from": string(previous), "reason": b.Reason},
		At:        now,
	})

	res := &Result{Booking: b}
	if err := uc.notifier.Notify(ctx, notify.KindCancelled, b, ""); err != nil {
		res.Warning = warnCancelNotify
	}
	return res, nil
}
