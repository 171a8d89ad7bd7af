package booking

import (
	"context"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
)

type GetBooking struct {
	repo domain.Repository
}

func NewGetBooking(repo domain.Repository) *GetBooking {
	return &GetBooking{repo: repo}
}

func (uc *GetBooking) Execute(ctx context.Context, id string) (*domain.Booking, error) {
	return getBooking(ctx, uc.repo, id)
}
