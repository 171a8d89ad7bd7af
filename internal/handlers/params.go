package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

// parseDays reads a check-in/check-out pair of YYYY-MM-DD strings.
func parseDays(checkIn, checkOut string) (time.Time, time.Time, error) {
	ci, err := timezone.ParseDay(checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusinessMsg(httperr.CodeInvalidDates, "Dates must be in YYYY-MM-DD format.")
	}
	co, err := timezone.ParseDay(checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, httperr.ErrBusinessMsg(httperr.CodeInvalidDates, "Dates must be in YYYY-MM-DD format.")
	}
	return ci, co, nil
}

// parseFilter reads search, status, from and to. from starts its day and
// to ends its day, so both bounds are inclusive.
func parseFilter(c *gin.Context) (domain.Filter, error) {
	f := domain.Filter{Search: c.Query("search")}

	status, ok := domain.ParseStatusFilter(c.Query("status"))
	if !ok {
		return f, httperr.ErrBusinessMsg(httperr.CodeInvalidRequest, "Unknown status filter.")
	}
	f.Status = status

	if s := c.Query("from"); s != "" {
		from, err := timezone.ParseDay(s)
		if err != nil {
			return f, httperr.ErrBusinessMsg(httperr.CodeInvalidDates, "from must be YYYY-MM-DD.")
		}
		from = timezone.Day(from)
		f.CheckInFrom = &from
	}

	if s := c.Query("to"); s != "" {
		to, err := timezone.ParseDay(s)
		if err != nil {
			return f, httperr.ErrBusinessMsg(httperr.CodeInvalidDates, "to must be YYYY-MM-DD.")
		}
		to = timezone.EndOfDay(to)
		f.CheckInTo = &to
	}

	return f, nil
}
