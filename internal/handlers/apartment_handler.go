package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/apartment"
	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/prestine-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type ApartmentHandler struct {
	catalog      *apartment.Catalog
	availability *ucBooking.Availability
	log          *logrus.Logger
}

func NewApartmentHandler(
	catalog *apartment.Catalog,
	availability *ucBooking.Availability,
	log *logrus.Logger,
) *ApartmentHandler {
	return &ApartmentHandler{
		catalog:      catalog,
		availability: availability,
		log:          log,
	}
}

func (h *ApartmentHandler) lookup(c *gin.Context) (apartment.Apartment, bool) {
	apt, ok := h.catalog.Get(c.Param("id"))
	if !ok {
		httperr.NotFound(c, httperr.CodeUnknownApartment, httperr.DefaultMessage(httperr.CodeUnknownApartment))
	}
	return apt, ok
}

// ======================================================
// CATALOG
// ======================================================

func (h *ApartmentHandler) List(c *gin.Context) {
	httpresp.List(c, h.catalog.List())
}

func (h *ApartmentHandler) Get(c *gin.Context) {
	apt, ok := h.lookup(c)
	if !ok {
		return
	}
	httpresp.OK(c, apt)
}

// ======================================================
// AVAILABILITY
// ======================================================

// BlockedDates never fails: a store outage shows no blocked days.
func (h *ApartmentHandler) BlockedDates(c *gin.Context) {
	apt, ok := h.lookup(c)
	if !ok {
		return
	}

	httpresp.OK(c, gin.H{
		"apartment_id":  apt.ID,
		"blocked_dates": h.availability.BlockedDates(c.Request.Context(), apt.ID),
	})
}

func (h *ApartmentHandler) Availability(c *gin.Context) {
	apt, ok := h.lookup(c)
	if !ok {
		return
	}

	ci, co, err := parseDays(c.Query("check_in"), c.Query("check_out"))
	if err != nil {
		writeError(c, h.log, err, "availability")
		return
	}
	r, err := domain.NewDateRange(ci, co)
	if err != nil {
		writeError(c, h.log, err, "availability")
		return
	}

	available, err := h.availability.Check(c.Request.Context(), domain.AvailabilityQuery{
		ApartmentID: apt.ID,
		Range:       r,
	})
	if err != nil {
		writeError(c, h.log, err, "availability")
		return
	}

	httpresp.OK(c, gin.H{
		"apartment_id": apt.ID,
		"check_in":     c.Query("check_in"),
		"check_out":    c.Query("check_out"),
		"nights":       r.Nights(),
		"available":    available,
	})
}
