package booking

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
)

type ListBookingsOutput struct {
	Bookings []domain.Booking
	Summary  domain.Summary
	Sweep    SweepReport
}

// ListBookings is the admin dashboard load: a full reload, a sweep of
// stale pending bookings, then filtering. Summary counts the whole list.
type ListBookings struct {
	repo    domain.Repository
	sweeper *Sweeper
	now     Clock
}

func NewListBookings(repo domain.Repository, sweeper *Sweeper, now Clock) *ListBookings {
	return &ListBookings{
		repo:    repo,
		sweeper: sweeper,
		now:     now,
	}
}

func (uc *ListBookings) Execute(ctx context.Context, f domain.Filter) (*ListBookingsOutput, error) {
	all, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	uc.sweeper.Reset()
	report := uc.sweeper.Sweep(ctx, all, uc.now())

	if len(report.Expired) > 0 {
		all, err = uc.repo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("reload bookings: %w", err)
		}
	}

	return &ListBookingsOutput{
		Bookings: domain.ApplyFilter(all, f),
		Summary:  domain.Summarize(all),
		Sweep:    report,
	}, nil
}
