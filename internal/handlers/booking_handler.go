package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/prestine-booking/internal/domain/booking"
	"github.com/BruksfildServices01/prestine-booking/internal/dto"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/httpresp"
	"github.com/BruksfildServices01/prestine-booking/internal/middleware"
	ucBooking "github.com/BruksfildServices01/prestine-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

// BookingHandler is the guest facing reservation API.
type BookingHandler struct {
	submit *ucBooking.SubmitBooking
	get    *ucBooking.GetBooking
	log    *logrus.Logger
}

func NewBookingHandler(
	submit *ucBooking.SubmitBooking,
	get *ucBooking.GetBooking,
	log *logrus.Logger,
) *BookingHandler {
	return &BookingHandler{
		submit: submit,
		get:    get,
		log:    log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

// Guest fields are checked by the use case so every missing field is
// reported in one message.
type SubmitBookingRequest struct {
	ApartmentID  string `json:"apartment_id" binding:"required"`
	UserTitle    string `json:"user_title"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	UserEmail    string `json:"user_email"`
	UserPhone    string `json:"user_phone"`
	GuestNumber  int    `json:"guest_number"`
	CheckinDate  string `json:"checkin_date" binding:"required"`
	CheckoutDate string `json:"checkout_date" binding:"required"`
}

// ======================================================
// SUBMIT
// ======================================================

func (h *BookingHandler) Submit(c *gin.Context) {
	var req SubmitBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, httperr.CodeInvalidRequest, httperr.DefaultMessage(httperr.CodeInvalidRequest))
		return
	}

	ci, co, err := parseDays(req.CheckinDate, req.CheckoutDate)
	if err != nil {
		writeError(c, h.log, err, "submit_booking")
		return
	}

	res, err := h.submit.Execute(c.Request.Context(), ucBooking.SubmitInput{
		ApartmentID: req.ApartmentID,
		UserID:      middleware.UserID(c),
		Guest: domain.Guest{
			Title:     strings.TrimSpace(req.UserTitle),
			FirstName: strings.TrimSpace(req.FirstName),
			LastName:  strings.TrimSpace(req.LastName),
			Email:     strings.ToLower(strings.TrimSpace(req.UserEmail)),
			Phone:     strings.TrimSpace(req.UserPhone),
			Count:     req.GuestNumber,
		},
		CheckIn:  ci,
		CheckOut: co,
	})
	if err != nil {
		writeError(c, h.log, err, "submit_booking")
		return
	}

	httpresp.Action(c, http.StatusCreated, dto.FromBooking(res.Booking), res.Warning)
}

// ======================================================
// CONFIRMATION PAGE
// ======================================================

func (h *BookingHandler) Get(c *gin.Context) {
	b, err := h.get.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err, "get_booking")
		return
	}
	httpresp.OK(c, dto.PublicFromBooking(b))
}
