package booking

import (
	"context"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
)

// Availability applies the store policy around the pure availability rules:
// the display list fails open, the authoritative check fails closed.
type Availability struct {
	repo  domain.Repository
	cache BlockedDatesCache
	log   *logrus.Logger
}

func NewAvailability(
	repo domain.Repository,
	cache BlockedDatesCache,
	log *logrus.Logger,
) *Availability {
	return &Availability{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

// BlockedDates lists the blocked days of an apartment as YYYY-MM-DD,
// ascending. A failed fetch yields an empty list.
func (uc *Availability) BlockedDates(ctx context.Context, apartmentID string) []string {
	if uc.cache != nil {
		if days, ok := uc.cache.Get(ctx, apartmentID); ok {
			return days
		}
	}

	confirmed, err := uc.repo.ListConfirmed(ctx)
	if err != nil {
		uc.log.WithFields(logrus.Fields{
			"apartment_id": apartmentID,
		}).WithError(err).Warn("blocked dates unavailable, showing none")
		return []string{}
	}

	days := domain.FormatDays(domain.BlockedDays(confirmed, apartmentID))
	if uc.cache != nil {
		uc.cache.Set(ctx, apartmentID, days)
	}
	return days
}

// Check answers the availability question for the reservation form.
// Only a verification failure is returned as an error.
func (uc *Availability) Check(ctx context.Context, q domain.AvailabilityQuery) (bool, error) {
	err := uc.Verify(ctx, uc.repo, q)
	switch {
	case err == nil:
		return true, nil
	case httperr.IsBusiness(err, httperr.CodeDatesUnavailable):
		return false, nil
	default:
		return false, err
	}
}

// Verify is the authoritative check, run against repo so callers holding
// an apartment lock read through their own transaction.
func (uc *Availability) Verify(
	ctx context.Context,
	repo domain.Repository,
	q domain.AvailabilityQuery,
) error {

	confirmed, err := repo.ListConfirmed(ctx)
	if err != nil {
		uc.log.WithFields(logrus.Fields{
			"apartment_id": q.ApartmentID,
		}).WithError(err).Error("availability check failed")
		return httperr.ErrBusiness(httperr.CodeAvailabilityUnverified)
	}

	if conflict := domain.FindConflict(confirmed, q); conflict != nil {
		uc.log.WithFields(logrus.Fields{
			"apartment_id": q.ApartmentID,
			"conflict_id":  conflict.ID,
		}).Debug("dates unavailable")
		return httperr.ErrBusiness(httperr.CodeDatesUnavailable)
	}
	return nil
}

// Invalidate drops the cached display list after a transition.
func (uc *Availability) Invalidate(ctx context.Context, apartmentID string) {
	if uc.cache != nil {
		uc.cache.Invalidate(ctx, apartmentID)
	}
}
