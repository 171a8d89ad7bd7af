package booking

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
)

// Expirer expires one booking. Satisfied by *ExpireBooking.
type Expirer interface {
	Execute(ctx context.Context, id string, reason string) (*domain.Booking, error)
}

type SweepReport struct {
	Expired []string `json:"expired"`
	Failed  []string `json:"failed,omitempty"`
}

// Sweeper expires pending bookings older than the payment window. Each id
// is handled at most once between two calls to Reset.
type Sweeper struct {
	expirer Expirer
	window  time.Duration
	log     *logrus.Logger

	mu   sync.Mutex
	seen map[string]struct{}
}

func NewSweeper(expirer Expirer, window time.Duration, log *logrus.Logger) *Sweeper {
	return &Sweeper{
		expirer: expirer,
		window:  window,
		log:     log,
		seen:    make(map[string]struct{}),
	}
}

// Reset forgets the visited set. Called on every full reload.
func (s *Sweeper) Reset() {
	s.mu.Lock()
	s.seen = make(map[string]struct{})
	s.mu.Unlock()
}

// claim marks id visited and reports whether this call got it first.
func (s *Sweeper) claim(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.seen[id]; ok {
		return false
	}
	s.seen[id] = struct{}{}
	return true
}

func (s *Sweeper) Sweep(ctx context.Context, bookings []domain.Booking, now time.Time) SweepReport {
	report := SweepReport{Expired: []string{}}

	for i := range bookings {
		b := &bookings[i]
		if !domain.IsStale(b, s.window, now) {
			continue
		}
		if !s.claim(b.ID) {
			continue
		}

		if _, err := s.expirer.Execute(ctx, b.ID, domain.ReasonPaymentElapsed); err != nil {
			// Already moved on by someone else since the list was read.
			if httperr.IsBusiness(err, httperr.CodeInvalidState) {
				continue
			}
			s.log.WithFields(logrus.Fields{
				"booking_id": b.ID,
			}).WithError(err).Error("sweep: expire failed")
			report.Failed = append(report.Failed, b.ID)
			continue
		}
		report.Expired = append(report.Expired, b.ID)
	}

	if len(report.Expired) > 0 {
		s.log.WithField("count", len(report.Expired)).Info("sweep expired stale bookings")
	}
	return report
}
