package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/httpresp"
	"github.com/BruksfildServices01/prestine-booking/internal/models"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

// BookingEventsHandler pages through the booking audit trail.
type BookingEventsHandler struct {
	db  *gorm.DB
	log *logrus.Logger
}

func NewBookingEventsHandler(db *gorm.DB, log *logrus.Logger) *BookingEventsHandler {
	return &BookingEventsHandler{db: db, log: log}
}

// pageParams reads page (default 1) and limit (default 50, at most 200).
func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return page, limit
}

func (h *BookingEventsHandler) List(c *gin.Context) {
	page, limit := pageParams(c)

	// --------------------------------------------------
	// Optional filters
	// --------------------------------------------------

	q := h.db.WithContext(c.Request.Context()).Model(&models.BookingEvent{})

	if id := c.Query("booking_id"); id != "" {
		q = q.Where("booking_id = ?", id)
	}

	if action := c.Query("action"); action != "" {
		q = q.Where("action = ?", action)
	}

	if s := c.Query("from"); s != "" {
		from, err := timezone.ParseDay(s)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidDates, "from must be YYYY-MM-DD.")
			return
		}
		q = q.Where("created_at >= ?", timezone.Day(from))
	}

	if s := c.Query("to"); s != "" {
		to, err := timezone.ParseDay(s)
		if err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidDates, "to must be YYYY-MM-DD.")
			return
		}
		q = q.Where("created_at <= ?", timezone.EndOfDay(to))
	}

	// --------------------------------------------------
	// Total
	// --------------------------------------------------

	var total int64
	if err := q.Count(&total).Error; err != nil {
		h.log.WithError(err).Error("count booking events")
		httperr.Internal(c, "events_count_failed", genericFailure)
		return
	}

	// --------------------------------------------------
	// Listing
	// --------------------------------------------------

	var events []models.BookingEvent
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&events).Error; err != nil {

		h.log.WithError(err).Error("list booking events")
		httperr.Internal(c, "events_list_failed", genericFailure)
		return
	}

	httpresp.Page(c, events, total, page, limit)
}
