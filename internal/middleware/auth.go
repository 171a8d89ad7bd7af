package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/prestine-booking/internal/config"
	"github.com/BruksfildServices01/prestine-booking/internal/httperr"
)

const (
	ContextUserID  = "userID"
	ContextEmail   = "userEmail"
	ContextIsAdmin = "isAdmin"
)

var (
	errNoToken       = errors.New("missing_authorization_header")
	errBadHeader     = errors.New("invalid_authorization_header")
	errInvalidToken  = errors.New("invalid_token")
	errInvalidClaims = errors.New("invalid_token_payload")
)

type identity struct {
	userID  string
	email   string
	isAdmin bool
}

func parseIdentity(c *gin.Context, secret string) (*identity, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, errNoToken
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, errBadHeader
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		return nil, errInvalidClaims
	}
	email, _ := claims["email"].(string)
	isAdmin, _ := claims["admin"].(bool)

	return &identity{userID: userID, email: email, isAdmin: isAdmin}, nil
}

func (id *identity) set(c *gin.Context) {
	c.Set(ContextUserID, id.userID)
	c.Set(ContextEmail, id.email)
	c.Set(ContextIsAdmin, id.isAdmin)
}

// Identity reads an optional bearer token. Anonymous requests pass; a
// token that is present but invalid is rejected.
func Identity(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIdentity(c, cfg.JWTSecret)
		if errors.Is(err, errNoToken) {
			c.Next()
			return
		}
		if err != nil {
			httperr.Unauthorized(c, err.Error(), "Your session is invalid. Please sign in again.")
			c.Abort()
			return
		}

		id.set(c)
		c.Next()
	}
}

// RequireAdmin rejects anonymous requests with 401 and non-admins with 403.
func RequireAdmin(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := parseIdentity(c, cfg.JWTSecret)
		if err != nil {
			httperr.Unauthorized(c, err.Error(), "Please sign in.")
			c.Abort()
			return
		}
		if !id.isAdmin {
			httperr.Forbidden(c, "admin_required", "Administrator access is required.")
			c.Abort()
			return
		}

		id.set(c)
		c.Next()
	}
}

// UserID returns the authenticated subject, or nil for anonymous requests.
func UserID(c *gin.Context) *string {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(string)
	if !ok || id == "" {
		return nil
	}
	return &id
}
