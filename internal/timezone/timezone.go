package timezone

import (
	"time"
	_ "time/tzdata"

	"github.com/jinzhu/now"
)

const DefaultTimezone = "Africa/Lagos"

const DayLayout = "2006-01-02"

var business = Location(DefaultTimezone)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SetBusiness fixes the location every calendar day is normalised in.
// Called once at startup.
func SetBusiness(tz string) {
	business = Location(tz)
}

func Business() *time.Location {
	return business
}

func Now() time.Time {
	return time.Now().In(business)
}

// Day truncates t to local midnight of its calendar day in the business
// location. Time of day never matters for check-in and check-out.
func Day(t time.Time) time.Time {
	return now.With(t.In(business)).BeginningOfDay()
}

// EndOfDay is the last instant of t's calendar day in the business location.
func EndOfDay(t time.Time) time.Time {
	return now.With(t.In(business)).EndOfDay()
}

// ParseDay parses a YYYY-MM-DD string as a business-local calendar day.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayLayout, s, business)
}

func FormatDay(t time.Time) string {
	return t.In(business).Format(DayLayout)
}
