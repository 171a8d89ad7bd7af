package booking

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("booking: not found")

// Repository is the only component that reads or writes bookings.
// Implementations hand back canonical statuses and midnight-normalised days.
type Repository interface {
	// Create assigns the id and persists a new booking.
	Create(ctx context.Context, b *Booking) error

	// Get returns ErrNotFound when no booking has the id.
	Get(ctx context.Context, id string) (*Booking, error)

	Update(ctx context.Context, b *Booking) error

	// ListAll orders by CreatedAt descending.
	ListAll(ctx context.Context) ([]Booking, error)

	// ListConfirmed returns every booking_successful booking, any
	// apartment, ordered by CheckIn ascending.
	ListConfirmed(ctx context.Context) ([]Booking, error)

	// WithApartmentLock runs fn with a repository bound to one transaction
	// that holds an exclusive lock on the apartment. Availability checks
	// and the write that depends on them share that lock.
	WithApartmentLock(
		ctx context.Context,
		apartmentID string,
		fn func(repo Repository) error,
	) error
}
