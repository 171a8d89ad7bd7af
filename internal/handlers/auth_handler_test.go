package handlers

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
	"github.com/BruksfildServices01/prestine-booking/internal/logging"
	"github.com/BruksfildServices01/prestine-booking/internal/models"
)

func TestGenerateTokenCarriesIdentity(t *testing.T) {
	cfg := &config.Config{JWTSecret: "test-secret"}
	h := NewAuthHandler(nil, cfg, logging.Discard())

	signed, err := h.generateToken(&models.User{ID: "u-1", Email: "owner@prestine.ng", IsAdmin: true})
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	claims := jwt.MapClaims{}
	if _, err := jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) {
		return []byte(cfg.JWTSecret), nil
	}); err != nil {
		t.Fatalf("parse: %v", err)
	}

	if claims["sub"] != "u-1" || claims["email"] != "owner@prestine.ng" || claims["admin"] != true {
		t.Fatalf("unexpected claims %v", claims)
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		t.Fatalf("missing exp: %v", err)
	}
	if d := time.Until(exp.Time); d < 23*time.Hour || d > tokenTTL {
		t.Fatalf("expected ~24h expiry, got %s", d)
	}
}
