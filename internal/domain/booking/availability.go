package booking

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

// DateRange is a half-open stay [CheckIn, CheckOut) of calendar days.
// The check-out day is free for the next guest.
type DateRange struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// NewDateRange normalises both ends to local midnight and requires at
// least one night.
func NewDateRange(checkIn, checkOut time.Time) (DateRange, error) {
	r := DateRange{
		CheckIn:  timezone.Day(checkIn),
		CheckOut: timezone.Day(checkOut),
	}
	if !r.CheckOut.After(r.CheckIn) {
		return DateRange{}, httperr.ErrBusiness(httperr.CodeInvalidDates)
	}
	return r, nil
}

// Overlaps is the strict interval test a1 < b2 && b1 < a2, so ranges that
// only share an endpoint do not conflict.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.CheckIn.Before(o.CheckOut) && o.CheckIn.Before(r.CheckOut)
}

func (r DateRange) Nights() int {
	n := 0
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

// Days lists every night of the stay, check-out excluded.
func (r DateRange) Days() []time.Time {
	days := make([]time.Time, 0, r.Nights())
	for d := r.CheckIn; d.Before(r.CheckOut); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

type AvailabilityQuery struct {
	ApartmentID      string
	Range            DateRange
	ExcludeBookingID string
}

// FindConflict returns the first confirmed booking of the same apartment
// whose stay overlaps q.Range, or nil. Non-confirmed bookings are ignored
// whatever the caller passed in.
func FindConflict(bookings []Booking, q AvailabilityQuery) *Booking {
	want := normalise(q.Range)

	for i := range bookings {
		b := &bookings[i]
		if !b.Status.BlocksDates() {
			continue
		}
		if b.ApartmentID != q.ApartmentID {
			continue
		}
		if q.ExcludeBookingID != "" && b.ID == q.ExcludeBookingID {
			continue
		}
		if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
			continue
		}
		if normalise(b.Range()).Overlaps(want) {
			return b
		}
	}
	return nil
}

func IsAvailable(bookings []Booking, q AvailabilityQuery) bool {
	return FindConflict(bookings, q) == nil
}

// BlockedDays is the union of the nights of every confirmed booking of the
// apartment, each day once, ascending.
func BlockedDays(bookings []Booking, apartmentID string) []time.Time {
	seen := make(map[string]time.Time)

	for i := range bookings {
		b := &bookings[i]
		if !b.Status.BlocksDates() || b.ApartmentID != apartmentID {
			continue
		}
		if b.CheckIn.IsZero() || b.CheckOut.IsZero() {
			continue
		}
		for _, d := range normalise(b.Range()).Days() {
			seen[timezone.FormatDay(d)] = d
		}
	}

	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// FormatDays renders days as YYYY-MM-DD.
func FormatDays(days []time.Time) []string {
	out := make([]string, 0, len(days))
	for _, d := range days {
		out = append(out, timezone.FormatDay(d))
	}
	return out
}

// SortByCheckIn orders bookings by check-in ascending, ties by id.
func SortByCheckIn(bookings []Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].CheckIn.Equal(bookings[j].CheckIn) {
			return bookings[i].CheckIn.Before(bookings[j].CheckIn)
		}
		return bookings[i].ID < bookings[j].ID
	})
}

func normalise(r DateRange) DateRange {
	return DateRange{
		CheckIn:  timezone.Day(r.CheckIn),
		CheckOut: timezone.Day(r.CheckOut),
	}
}
