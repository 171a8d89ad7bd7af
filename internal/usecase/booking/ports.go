package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
)

// BlockedDatesCache is the display cache in front of BlockedDates.
type BlockedDatesCache interface {
	Get(ctx context.Context, apartmentID string) ([]string, bool)
	Set(ctx context.Context, apartmentID string, days []string)
	Invalidate(ctx context.Context, apartmentID string)
}

// Notifier fires the emails of one transition.
type Notifier interface {
	Notify(ctx context.Context, kind notify.Kind, b *domain.Booking, status string) error
}

// Clock returns the current instant.
type Clock func() time.Time

// Result is a completed transition plus an optional follow-up warning for
// the caller when the notification could not be delivered.
type Result struct {
	Booking *domain.Booking `json:"booking"`
	Warning string          `json:"warning,omitempty"`
}

// getBooking maps a missing record to the booking_not_found rejection.
func getBooking(ctx context.Context, repo domain.Repository, id string) (*domain.Booking, error) {
	b, err := repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeBookingNotFound)
		}
		return nil, fmt.Errorf("load booking %s: %w", id, err)
	}
	return b, nil
}

// mutateLocked re-reads the booking under its apartment lock, applies fn
// and writes the result in the same transaction.
func mutateLocked(
	ctx context.Context,
	repo domain.Repository,
	id string,
	fn func(tx domain.Repository, b *domain.Booking) error,
) (*domain.Booking, error) {

	current, err := getBooking(ctx, repo, id)
	if err != nil {
		return nil, err
	}

	var out *domain.Booking
	err = repo.WithApartmentLock(ctx, current.ApartmentID, func(tx domain.Repository) error {
		b, err := getBooking(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := fn(tx, b); err != nil {
			return err
		}
		if err := tx.Update(ctx, b); err != nil {
			return err
		}
		out = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
