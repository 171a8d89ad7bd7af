package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/audit"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
)

// ExpireBooking is the unattended variant of cancel. Delivery failures are
// only logged.
type ExpireBooking struct {
	repo         domain.Repository
	availability *Availability
	notifier     Notifier
	audit        *audit.Dispatcher
	now          Clock
	log          *logrus.Logger
}

func NewExpireBooking(
	repo domain.Repository,
	availability *Availability,
	notifier Notifier,
	audit *audit.Dispatcher,
	now Clock,
	log *logrus.Logger,
) *ExpireBooking {
	return &ExpireBooking{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		audit:        audit,
		now:          now,
		log:          log,
	}
}

func (uc *ExpireBooking) Execute(
	ctx context.Context,
	id string,
	reason string,
) (*domain.Booking, error) {

	now := uc.now()

	b, err := mutateLocked(ctx, uc.repo, id, func(_ domain.Repository, b *domain.Booking) error {
		return domain.Expire(b, reason, now)
	})
	if err != nil {
		return nil, err
	}

	uc.availability.Invalidate(ctx, b.ApartmentID)

	uc.log.WithFields(logrus.Fields{
		"booking_id":   b.ID,
		"apartment_id": b.ApartmentID,
		"reason":       b.Reason,
	}).Info("booking expired")

	uc.audit.Dispatch(audit.Event{
		BookingID: b.ID,
		Action:    audit.ActionExpired,
		Metadata:  map[string]string{"reason": b.Reason},
		At:        now,
	})

	// The trigger already logs each failed delivery.
	_ = uc.notifier.Notify(ctx, notify.KindExpired, b, notify.StatusExpired)

	return b, nil
}
