package booking

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/audit"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

const warnExtendNotify = "Stay extended, but the notification email could not be sent. Please notify the guest manually."

type ExtendInput struct {
	ID       string
	CheckIn  time.Time
	CheckOut time.Time
	ActorID  *string
}

type ExtendBooking struct {
	repo         domain.Repository
	availability *Availability
	notifier     Notifier
	audit        *audit.Dispatcher
	now          Clock
	log          *logrus.Logger
}

func NewExtendBooking(
	repo domain.Repository,
	availability *Availability,
	notifier Notifier,
	audit *audit.Dispatcher,
	now Clock,
	log *logrus.Logger,
) *ExtendBooking {
	return &ExtendBooking{
		repo:         repo,
		availability: availability,
		notifier:     notifier,
		audit:        audit,
		now:          now,
		log:          log,
	}
}

// Execute moves a confirmed stay to new dates. Pricing is not recomputed.
func (uc *ExtendBooking) Execute(ctx context.Context, in ExtendInput) (*Result, error) {
	r, err := domain.NewDateRange(in.CheckIn, in.CheckOut)
	if err != nil {
		return nil, err
	}

	now := uc.now()

	var before domain.DateRange
	b, err := mutateLocked(ctx, uc.repo, in.ID, func(tx domain.Repository, b *domain.Booking) error {
		if err := domain.CanExtend(b.Status); err != nil {
			return err
		}
		if err := uc.availability.Verify(ctx, tx, domain.AvailabilityQuery{
			ApartmentID:      b.ApartmentID,
			Range:            r,
			ExcludeBookingID: b.ID,
		}); err != nil {
			return err
		}
		before = b.Range()
		return domain.Extend(b, r, now)
	})
	if err != nil {
		return nil, err
	}

	uc.availability.Invalidate(ctx, b.ApartmentID)

	uc.log.WithFields(logrus.Fields{
		"booking_id":   b.ID,
		"apartment_id": b.ApartmentID,
		"check_in":     timezone.FormatDay(b.CheckIn),
		"check_out":    timezone.FormatDay(b.CheckOut),
	}).Info("booking extended")

	uc.audit.Dispatch(audit.Event{
		BookingID: b.ID,
		ActorID:   in.ActorID,
		Action:    audit.ActionExtended,
		Metadata: map[string]string{
			"from_check_in":  timezone.FormatDay(before.CheckIn),
			"from_check_out": timezone.FormatDay(before.CheckOut),
			"to_check_in":    timezone.FormatDay(b.CheckIn),
			"to_check_out":   timezone.FormatDay(b.CheckOut),
		},
		At: now,
	})

	res := &Result{Booking: b}
	if err := uc.notifier.Notify(ctx, notify.KindExtended, b, ""); err != nil {
		res.Warning = warnExtendNotify
	}
	return res, nil
}
