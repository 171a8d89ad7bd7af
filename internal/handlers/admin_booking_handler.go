package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/dto"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/httpresp"
	"github.com/BruksfildServices01/prestine-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/prestine-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminBookingHandler struct {
	list    *ucBooking.ListBookings
	get     *ucBooking.GetBooking
	confirm *ucBooking.ConfirmBooking
	cancel  *ucBooking.CancelBooking
	extend  *ucBooking.ExtendBooking
	export  *ucBooking.ExportBookings
	log     *logrus.Logger
}

func NewAdminBookingHandler(
	list *ucBooking.ListBookings,
	get *ucBooking.GetBooking,
	confirm *ucBooking.ConfirmBooking,
	cancel *ucBooking.CancelBooking,
	extend *ucBooking.ExtendBooking,
	export *ucBooking.ExportBookings,
	log *logrus.Logger,
) *AdminBookingHandler {
	return &AdminBookingHandler{
		list:    list,
		get:     get,
		confirm: confirm,
		cancel:  cancel,
		extend:  extend,
		export:  export,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

type ExtendBookingRequest struct {
	CheckinDate  string `json:"checkin_date" binding:"required"`
	CheckoutDate string `json:"checkout_date" binding:"required"`
}

type listBookingsResponse struct {
	Data    []dto.BookingDTO      `json:"data"`
	Total   int                   `json:"total"`
	Summary booking.Summary       `json:"summary"`
	Sweep   ucBooking.SweepReport `json:"sweep"`
}

// ======================================================
// LIST (runs the stale booking sweep)
// ======================================================

func (h *AdminBookingHandler) List(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		writeError(c, h.log, err, "list_bookings")
		return
	}

	out, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.log, err, "list_bookings")
		return
	}

	httpresp.OK(c, listBookingsResponse{
		Data:    dto.FromBookings(out.Bookings),
		Total:   len(out.Bookings),
		Summary: out.Summary,
		Sweep:   out.Sweep,
	})
}

func (h *AdminBookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err, "get_booking")
		return
	}
	httpresp.OK(c, dto.FromBooking(b))
}

// ======================================================
// TRANSITIONS
// ======================================================

func (h *AdminBookingHandler) Confirm(c *gin.Context) {
	res, err := h.confirm.Execute(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		writeError(c, h.log, err, "confirm_booking")
		return
	}
	httpresp.Action(c, http.StatusOK, dto.FromBooking(res.Booking), res.Warning)
}

func (h *AdminBookingHandler) Cancel(c *gin.Context) {
	var req CancelBookingRequest
	// The body is optional.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, httperr.CodeInvalidRequest, "Invalid request body.")
			return
		}
	}

	res, err := h.cancel.Execute(c.Request.Context(), c.Param("id"), req.Reason, middleware.UserID(c))
	if err != nil {
		writeError(c, h.log, err, "cancel_booking")
		return
	}
	httpresp.Action(c, http.StatusOK, dto.FromBooking(res.Booking), res.Warning)
}

func (h *AdminBookingHandler) Extend(c *gin.Context) {
	var req ExtendBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, "checkin_date and checkout_date are required.")
		return
	}

	ci, co, err := parseDays(req.CheckinDate, req.CheckoutDate)
	if err != nil {
		writeError(c, h.log, err, "extend_booking")
		return
	}

	res, err := h.extend.Execute(c.Request.Context(), ucBooking.ExtendInput{
		ID:       c.Param("id"),
		CheckIn:  ci,
		CheckOut: co,
		ActorID:  middleware.UserID(c),
	})
	if err != nil {
		writeError(c, h.log, err, "extend_booking")
		return
	}
	httpresp.Action(c, http.StatusOK, dto.FromBooking(res.Booking), res.Warning)
}

// ======================================================
// EXPORT
// ======================================================

func (h *AdminBookingHandler) Export(c *gin.Context) {
	f, err := parseFilter(c)
	if err != nil {
		writeError(c, h.log, err, "export_bookings")
		return
	}

	res, err := h.export.Execute(c.Request.Context(), f)
	if err != nil {
		writeError(c, h.log, err, "export_bookings")
		return
	}
	httpresp.Created(c, res)
}
