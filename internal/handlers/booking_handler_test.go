package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BruksfildServices01/prestine-booking/internal/dto"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
	"github.com/BruksfildServices01/prestine-booking/internal/httpresp"
)

func (s *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", w.Body.String(), err)
	}
	return out
}

func submitBody(apt, ci, co string) SubmitBookingRequest {
	return SubmitBookingRequest{
		ApartmentID:  apt,
		UserTitle:    "Mr",
		FirstName:    "Tunde",
		LastName:     "Bello",
		UserEmail:    "  Tunde@Example.com ",
		UserPhone:    "+2348031111111",
		GuestNumber:  2,
		CheckinDate:  ci,
		CheckoutDate: co,
	}
}

func (s *testServer) submit(t *testing.T, apt, ci, co string) dto.BookingDTO {
	t.Helper()
	w := s.do(http.MethodPost, "/api/bookings", submitBody(apt, ci, co))
	if w.Code != http.StatusCreated {
		t.Fatalf("submit: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	return decode[httpresp.ActionResponse[dto.BookingDTO]](t, w).Data
}

func TestSubmitCreatesPendingBooking(t *testing.T) {
	s := newTestServer()

	b := s.submit(t, "classic-studio", "2025-04-01", "2025-04-03")

	if b.Status != "pending_payment" || b.StatusLabel != "Pending Payment" {
		t.Fatalf("unexpected status %s (%s)", b.Status, b.StatusLabel)
	}
	if b.UserEmail != "tunde@example.com" {
		t.Fatalf("expected normalised email, got %q", b.UserEmail)
	}
	if b.Pricing.Nights != 2 || b.Pricing.NightlyRate != 4500000 {
		t.Fatalf("unexpected pricing %+v", b.Pricing)
	}
	if b.CheckinDate != "2025-04-01" || b.CheckoutDate != "2025-04-03" {
		t.Fatalf("unexpected dates %s..%s", b.CheckinDate, b.CheckoutDate)
	}
}

func TestSubmitRejections(t *testing.T) {
	s := newTestServer()

	cases := []struct {
		name   string
		body   SubmitBookingRequest
		status int
		code   string
	}{
		{"bad date format", submitBody("classic-studio", "01/04/2025", "2025-04-03"), http.StatusBadRequest, httperr.CodeInvalidDates},
		{"checkout before checkin", submitBody("classic-studio", "2025-04-03", "2025-04-01"), http.StatusBadRequest, httperr.CodeInvalidDates},
		{"unknown apartment", submitBody("penthouse", "2025-04-01", "2025-04-03"), http.StatusBadRequest, httperr.CodeUnknownApartment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := s.do(http.MethodPost, "/api/bookings", tc.body)
			if w.Code != tc.status {
				t.Fatalf("expected %d, got %d: %s", tc.status, w.Code, w.Body.String())
			}
			if got := decode[httperr.HTTPError](t, w); got.Code != tc.code {
				t.Fatalf("expected %s, got %s", tc.code, got.Code)
			}
		})
	}

	tooMany := submitBody("classic-studio", "2025-04-01", "2025-04-03")
	tooMany.GuestNumber = 3
	if w := s.do(http.MethodPost, "/api/bookings", tooMany); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for too many guests, got %d", w.Code)
	}

	missing := submitBody("classic-studio", "2025-04-01", "2025-04-03")
	missing.UserEmail = ""
	if w := s.do(http.MethodPost, "/api/bookings", missing); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing email, got %d", w.Code)
	}
}

func TestPublicGetHidesContactDetails(t *testing.T) {
	s := newTestServer()
	b := s.submit(t, "classic-studio", "2025-04-01", "2025-04-03")

	w := s.do(http.MethodGet, "/api/bookings/"+b.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var raw map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &raw)
	for _, hidden := range []string{"user_email", "user_phone", "last_name"} {
		if _, ok := raw[hidden]; ok {
			t.Fatalf("public view exposes %s", hidden)
		}
	}
	if raw["first_name"] != "Tunde" {
		t.Fatalf("expected first name, got %v", raw["first_name"])
	}

	if w := s.do(http.MethodGet, "/api/bookings/missing", nil); w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
}
