package booking

import (
	"strings"
	"time"
)

// StatusFilter is the admin status selector. Empty means all.
type StatusFilter string

const FilterAll StatusFilter = "all"

// ParseStatusFilter accepts the canonical status names plus the short
// dashboard names (pending, confirmed, failed) and the legacy alias.
func ParseStatusFilter(raw string) (StatusFilter, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "all":
		return FilterAll, true
	case "pending", "pending_payment", legacyTemporary:
		return StatusFilter(StatusPendingPayment), true
	case "confirmed", "booking_successful":
		return StatusFilter(StatusConfirmed), true
	case "cancelled":
		return StatusFilter(StatusCancelled), true
	case "failed", "reservation_failed":
		return StatusFilter(StatusFailed), true
	default:
		return "", false
	}
}

type Filter struct {
	Search      string
	Status      StatusFilter
	CheckInFrom *time.Time
	CheckInTo   *time.Time
}

func (f Filter) Active() bool {
	return strings.TrimSpace(f.Search) != "" ||
		(f.Status != "" && f.Status != FilterAll) ||
		f.CheckInFrom != nil ||
		f.CheckInTo != nil
}

// Match applies search, status and check-in range. The range bounds are
// inclusive; callers pass From at start of day and To at end of day.
func (f Filter) Match(b *Booking) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Search)); q != "" {
		fields := []string{
			b.Guest.FullName(),
			b.Guest.FirstName,
			b.Guest.LastName,
			b.Guest.Email,
			b.Guest.Phone,
			b.ApartmentName,
		}
		found := false
		for _, field := range fields {
			if field != "" && strings.Contains(strings.ToLower(field), q) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if f.Status != "" && f.Status != FilterAll && Status(f.Status) != b.Status {
		return false
	}

	if f.CheckInFrom != nil || f.CheckInTo != nil {
		if b.CheckIn.IsZero() {
			return false
		}
		if f.CheckInFrom != nil && b.CheckIn.Before(*f.CheckInFrom) {
			return false
		}
		if f.CheckInTo != nil && b.CheckIn.After(*f.CheckInTo) {
			return false
		}
	}

	return true
}

func ApplyFilter(bookings []Booking, f Filter) []Booking {
	out := make([]Booking, 0, len(bookings))
	for i := range bookings {
		if f.Match(&bookings[i]) {
			out = append(out, bookings[i])
		}
	}
	return out
}

type Summary struct {
	Total     int `json:"total"`
	Pending   int `json:"pending"`
	Confirmed int `json:"confirmed"`
	Cancelled int `json:"cancelled"`
	Failed    int `json:"failed"`
}

func Summarize(bookings []Booking) Summary {
	s := Summary{Total: len(bookings)}
	for i := range bookings {
		switch bookings[i].Status {
		case StatusPendingPayment:
			s.Pending++
		case StatusConfirmed:
			s.Confirmed++
		case StatusCancelled:
			s.Cancelled++
		case StatusFailed:
			s.Failed++
		}
	}
	return s
}
