package booking

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/BruksfildServices01/prestine-booking/internal/apartment"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/logging"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

var errStoreDown = errors.New("store unavailable")

// memRepo is an in-memory domain.Repository.
type memRepo struct {
	lock sync.Mutex

	mu       sync.Mutex
	rows     map[string]domain.Booking
	seq      int
	reads    int
	failList bool
}

func newMemRepo() *memRepo {
	return &memRepo{rows: make(map[string]domain.Booking)}
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
	r.reads++
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
	r.reads++
	if r.failList {
		return nil, errStoreDown
	}
	out := make([]domain.Booking, 0, len(r.rows))
	for _, b := range r.rows {
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *memRepo) ListConfirmed(_ context.Context) ([]domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	if r.failList {
		return nil, errStoreDown
	}
	var out []domain.Booking
	for _, b := range r.rows {
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
	r.lock.Lock()
	defer r.lock.Unlock()
	return fn(r)
}

func (r *memRepo) put(b domain.Booking) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows[b.ID] = b
}

func (r *memRepo) storeReads() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.reads
}

// recordingNotifier records fired transitions.
type recordingNotifier struct {
	mu    sync.Mutex
	fired []fired
	fail  bool
}

type fired struct {
	kind      notify.Kind
	bookingID string
	status    string
}

func (n *recordingNotifier) Notify(_ context.Context, kind notify.Kind, b *domain.Booking, status string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.fired = append(n.fired, fired{kind: kind, bookingID: b.ID, status: status})
	if n.fail {
		return errors.New("emailjs down")
	}
	return nil
}

func (n *recordingNotifier) count(kind notify.Kind, id string) int {
	n.mu.Lock()
	defer n.mu.Unlock()
	c := 0
	for _, f := range n.fired {
		if f.kind == kind && f.bookingID == id {
			c++
		}
	}
	return c
}

// memCache is an in-memory BlockedDatesCache.
type memCache struct {
	mu   sync.Mutex
	days map[string][]string
}

func (c *memCache) Get(_ context.Context, apt string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.days[apt]
	return d, ok
}

func (c *memCache) Set(_ context.Context, apt string, days []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.days == nil {
		c.days = make(map[string][]string)
	}
	c.days[apt] = days
}

func (c *memCache) Invalidate(_ context.Context, apt string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.days, apt)
}

type memUploader struct {
	key  string
	body []byte
}

func (u *memUploader) Upload(_ context.Context, key string, body []byte, _ string) error {
	u.key, u.body = key, body
	return nil
}

// ======================================================
// FIXTURE
// ======================================================

type fixture struct {
	repo     *memRepo
	notifier *recordingNotifier
	cache    *memCache
	clock    time.Time

	availability *Availability
	submit       *SubmitBooking
	confirm      *ConfirmBooking
	cancel       *CancelBooking
	expire       *ExpireBooking
	extend       *ExtendBooking
	sweeper      *Sweeper
	list         *ListBookings
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	timezone.SetBusiness(timezone.DefaultTimezone)

	f := &fixture{
		repo:     newMemRepo(),
		notifier: &recordingNotifier{},
		cache:    &memCache{},
		clock:    time.Date(2025, 3, 20, 9, 0, 0, 0, timezone.Business()),
	}
	now := func() time.Time { return f.clock }
	log := logging.Discard()

	f.availability = NewAvailability(f.repo, f.cache, log)
	f.submit = NewSubmitBooking(f.repo, apartment.Default(), f.availability, f.notifier, nil, now, log)
	f.confirm = NewConfirmBooking(f.repo, f.availability, f.notifier, nil, now, log)
	f.cancel = NewCancelBooking(f.repo, f.availability, f.notifier, nil, now, log)
	f.expire = NewExpireBooking(f.repo, f.availability, f.notifier, nil, now, log)
	f.extend = NewExtendBooking(f.repo, f.availability, f.notifier, nil, now, log)
	f.sweeper = NewSweeper(f.expire, 48*time.Hour, log)
	f.list = NewListBookings(f.repo, f.sweeper, now)
	return f
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := timezone.ParseDay(s)
	if err != nil {
		t.Fatalf("parse %s: %v", s, err)
	}
	return d
}

func guest() domain.Guest {
	return domain.Guest{
		Title:     "Ms",
		FirstName: "Ada",
		LastName:  "Okafor",
		Email:     "ada@example.com",
		Phone:     "+2348030000000",
		Count:     2,
	}
}

func submitInput(t *testing.T, apt, ci, co string) SubmitInput {
	return SubmitInput{
		ApartmentID: apt,
		Guest:       guest(),
		CheckIn:     day(t, ci),
		CheckOut:    day(t, co),
	}
}

// seed stores a booking directly, bypassing the use cases.
func (f *fixture) seed(t *testing.T, id, apt, ci, co string, status domain.Status, created time.Time) {
	t.Helper()
	f.repo.put(domain.Booking{
		ID:          id,
		ApartmentID: apt,
		Guest:       guest(),
		CheckIn:     day(t, ci),
		CheckOut:    day(t, co),
		Status:      status,
		CreatedAt:   created,
		UpdatedAt:   created,
	})
}
