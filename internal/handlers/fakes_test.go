package handlers

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/prestine-booking/internal/apartment"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/logging"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/prestine-booking/internal/usecase/booking"
)

type memRepo struct {
	mu   sync.Mutex
	rows map[string]domain.Booking
	seq  int
}

func (r *memRepo) Create(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	b.ID = fmt.Sprintf("bk-%d", r.seq)
	r.rows[b.ID] = *b
	return nil
}

func (r *memRepo) Get(_ context.Context, id string) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &b, nil
}

func (r *memRepo) Update(_ context.Context, b *domain.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[b.ID] = *b
	return nil
}

func (r *memRepo) ListAll(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.Booking, 0, len(r.rows))
	for _, b := range r.rows {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

func (r *memRepo) ListConfirmed(ctx context.Context) ([]domain.Booking, error) {
	all, _ := r.ListAll(ctx)
	var out []domain.Booking
	for _, b := range all {
		if b.Status == domain.StatusConfirmed {
			out = append(out, b)
		}
	}
	domain.SortByCheckIn(out)
	return out, nil
}

func (r *memRepo) WithApartmentLock(
	_ context.Context,
	_ string,
	fn func(repo domain.Repository) error,
) error {
	return fn(r)
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, notify.Kind, *domain.Booking, string) error {
	return nil
}

// testServer wires the booking handlers over an in-memory store. Admin
// routes are mounted without auth; the middleware has its own tests.
type testServer struct {
	repo   *memRepo
	router *gin.Engine
	clock  time.Time
}

func newTestServer() *testServer {
	gin.SetMode(gin.TestMode)
	timezone.SetBusiness(timezone.DefaultTimezone)

	s := &testServer{
		repo:  &memRepo{rows: make(map[string]domain.Booking)},
		clock: time.Date(2025, 3, 20, 9, 0, 0, 0, timezone.Business()),
	}
	now := func() time.Time { return s.clock }
	log := logging.Discard()
	catalog := apartment.Default()

	availability := ucBooking.NewAvailability(s.repo, nil, log)
	submit := ucBooking.NewSubmitBooking(s.repo, catalog, availability, nopNotifier{}, nil, now, log)
	confirm := ucBooking.NewConfirmBooking(s.repo, availability, nopNotifier{}, nil, now, log)
	cancel := ucBooking.NewCancelBooking(s.repo, availability, nopNotifier{}, nil, now, log)
	expire := ucBooking.NewExpireBooking(s.repo, availability, nopNotifier{}, nil, now, log)
	extend := ucBooking.NewExtendBooking(s.repo, availability, nopNotifier{}, nil, now, log)
	get := ucBooking.NewGetBooking(s.repo)
	list := ucBooking.NewListBookings(s.repo, ucBooking.NewSweeper(expire, 48*time.Hour, log), now)
	export := ucBooking.NewExportBookings(s.repo, nil, now, log)

	apartments := NewApartmentHandler(catalog, availability, log)
	bookings := NewBookingHandler(submit, get, log)
	admin := NewAdminBookingHandler(list, get, confirm, cancel, extend, export, log)

	r := gin.New()
	r.GET("/api/apartments", apartments.List)
	r.GET("/api/apartments/:id", apartments.Get)
	r.GET("/api/apartments/:id/blocked-dates", apartments.BlockedDates)
	r.GET("/api/apartments/:id/availability", apartments.Availability)
	r.POST("/api/bookings", bookings.Submit)
	r.GET("/api/bookings/:id", bookings.Get)
	r.GET("/api/admin/bookings", admin.List)
	r.POST("/api/admin/bookings/export", admin.Export)
	r.GET("/api/admin/bookings/:id", admin.Get)
	r.PATCH("/api/admin/bookings/:id/confirm", admin.Confirm)
	r.PATCH("/api/admin/bookings/:id/cancel", admin.Cancel)
	r.PATCH("/api/admin/bookings/:id/extend", admin.Extend)

	s.router = r
	return s
}
