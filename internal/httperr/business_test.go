package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsBusinessThroughWrapping(t *testing.T) {
	err := fmt.Errorf("submit: %w", ErrBusiness(CodeDatesUnavailable))

	if !IsBusiness(err, CodeDatesUnavailable) {
		t.Fatalf("expected wrapped business error to match")
	}
	if IsBusiness(err, CodeInvalidDates) {
		t.Fatalf("unexpected match on another code")
	}
	if IsBusiness(errors.New("boom"), CodeDatesUnavailable) {
		t.Fatalf("plain error must not match")
	}
}

func TestErrBusinessCarriesDefaultMessage(t *testing.T) {
	be, ok := AsBusiness(ErrBusiness(CodeAvailabilityUnverified))
	if !ok {
		t.Fatalf("expected business error")
	}
	if be.Message == "" {
		t.Fatalf("expected default message")
	}

	custom, _ := AsBusiness(ErrBusinessMsg(CodeInvalidRequest, "guest email is required"))
	if custom.Message != "guest email is required" {
		t.Fatalf("unexpected message %q", custom.Message)
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[string]int{
		CodeInvalidDates:           http.StatusBadRequest,
		CodeDatesUnavailable:       http.StatusConflict,
		CodeInvalidState:           http.StatusConflict,
		CodeAvailabilityUnverified: http.StatusServiceUnavailable,
		CodeBookingNotFound:        http.StatusNotFound,
		CodeExportDisabled:         http.StatusServiceUnavailable,
	}
	for code, want := range cases {
		if got := StatusFor(code); got != want {
			t.Errorf("%s: expected %d, got %d", code, want, got)
		}
	}
}

func TestIsExclusionConflict(t *testing.T) {
	if !IsExclusionConflict(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23P01"})) {
		t.Fatalf("expected exclusion violation to match")
	}
	if IsExclusionConflict(&pgconn.PgError{Code: "42P01"}) {
		t.Fatalf("undefined table must not match")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	if !IsUniqueViolation(fmt.Errorf("create user: %w", &pgconn.PgError{Code: "23505"})) {
		t.Fatalf("expected 23505 to match")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23P01"}) {
		t.Fatalf("exclusion violation is not a unique violation")
	}
	if IsUniqueViolation(errors.New("boom")) {
		t.Fatalf("plain error must not match")
	}
}
