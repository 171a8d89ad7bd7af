package booking

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
)

var clock = time.Date(2025, 4, 1, 10, 0, 0, 0, time.UTC)

func pendingBooking() *Booking {
	return &Booking{
		ID:        "b1",
		Status:    StatusPendingPayment,
		CreatedAt: clock.Add(-time.Hour),
		UpdatedAt: clock.Add(-time.Hour),
	}
}

func TestConfirmStampsPaymentDate(t *testing.T) {
	b := pendingBooking()

	if err := Confirm(b, clock); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if b.Status != StatusConfirmed {
		t.Fatalf("expected confirmed, got %s", b.Status)
	}
	if b.PaymentDate == nil || !b.PaymentDate.Equal(clock) {
		t.Fatalf("expected payment date %s", clock)
	}
	if b.CancellationDate != nil {
		t.Fatalf("confirm must not touch cancellation date")
	}
	if !b.UpdatedAt.Equal(clock) {
		t.Fatalf("expected updatedAt refreshed")
	}
}

func TestCancelAndExpireClearPaymentDate(t *testing.T) {
	actions := map[string]struct {
		apply func(*Booking) error
		want  Status
	}{
		"cancel": {func(b *Booking) error { return Cancel(b, "", clock) }, StatusCancelled},
		"expire": {func(b *Booking) error { return Expire(b, "", clock) }, StatusFailed},
	}

	for name, a := range actions {
		t.Run(name, func(t *testing.T) {
			b := pendingBooking()
			paid := clock.Add(-time.Minute)
			b.PaymentDate = &paid

			if err := a.apply(b); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if b.Status != a.want {
				t.Fatalf("expected %s, got %s", a.want, b.Status)
			}
			if b.PaymentDate != nil {
				t.Fatalf("payment date must be cleared")
			}
			if b.CancellationDate == nil || !b.CancellationDate.Equal(clock) {
				t.Fatalf("cancellation date must be stamped")
			}
			if b.Reason == "" {
				t.Fatalf("expected default reason")
			}
		})
	}
}

func TestCancelConfirmedBooking(t *testing.T) {
	b := pendingBooking()
	_ = Confirm(b, clock)

	if err := Cancel(b, "guest request", clock.Add(time.Hour)); err != nil {
		t.Fatalf("confirmed bookings can be cancelled: %v", err)
	}
	if b.PaymentDate != nil || b.Reason != "guest request" {
		t.Fatalf("unexpected state after cancel: %+v", b)
	}
}

func TestTerminalStatesRejectTransitions(t *testing.T) {
	for _, s := range []Status{StatusCancelled, StatusFailed} {
		b := &Booking{Status: s}

		if err := Confirm(b, clock); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
			t.Errorf("%s: confirm should be rejected, got %v", s, err)
		}
		if err := Cancel(b, "", clock); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
			t.Errorf("%s: cancel should be rejected, got %v", s, err)
		}
		if err := Expire(b, "", clock); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
			t.Errorf("%s: expire should be rejected, got %v", s, err)
		}
	}
}

func TestExpireOnlyFromPending(t *testing.T) {
	b := pendingBooking()
	_ = Confirm(b, clock)

	if err := Expire(b, "", clock); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("confirmed bookings must not expire, got %v", err)
	}
}

func TestExtendOnlyWhileConfirmed(t *testing.T) {
	r := DateRange{CheckIn: clock, CheckOut: clock.AddDate(0, 0, 3)}

	b := pendingBooking()
	b.Pricing = Quote(45000, 2)
	if err := Extend(b, r, clock); !httperr.IsBusiness(err, httperr.CodeInvalidState) {
		t.Fatalf("pending bookings cannot be extended, got %v", err)
	}

	_ = Confirm(b, clock)
	if err := Extend(b, r, clock); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !b.CheckOut.Equal(r.CheckOut) || b.ExtendedAt == nil {
		t.Fatalf("extend must overwrite dates and stamp extendedAt")
	}
	if b.Pricing.Nights != 2 {
		t.Fatalf("extend must leave pricing untouched")
	}
}

func TestIsStale(t *testing.T) {
	window := 48 * time.Hour

	old := &Booking{Status: StatusPendingPayment, CreatedAt: clock.Add(-49 * time.Hour)}
	fresh := &Booking{Status: StatusPendingPayment, CreatedAt: clock.Add(-47 * time.Hour)}
	edge := &Booking{Status: StatusPendingPayment, CreatedAt: clock.Add(-48 * time.Hour)}
	paid := &Booking{Status: StatusConfirmed, CreatedAt: clock.Add(-100 * time.Hour)}

	if !IsStale(old, window, clock) {
		t.Errorf("49h old booking should be stale")
	}
	if IsStale(fresh, window, clock) {
		t.Errorf("47h old booking should not be stale")
	}
	if !IsStale(edge, window, clock) {
		t.Errorf("exactly 48h should be stale")
	}
	if IsStale(paid, window, clock) {
		t.Errorf("confirmed bookings are never stale")
	}
}

func TestQuote(t *testing.T) {
	p := Quote(45000, 2)

	if p.NightlyRate != 4500000 || p.Subtotal != 9000000 {
		t.Fatalf("unexpected rate/subtotal %+v", p)
	}
	if p.VAT != 675000 || p.ServiceCharge != 900000 {
		t.Fatalf("unexpected charges %+v", p)
	}
	if p.GrandTotal != 10575000 {
		t.Fatalf("unexpected total %d", p.GrandTotal)
	}
}
