package middleware

import (
	"errors"
	"strings"

	"breneo/internal/pkg/jwt"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

const (
	CtxUserIDKey = "user_id"
	CtxEmailKey  = "email"
)

type AuthMiddleware struct {
	jwt jwt.Service
}

func NewAuthMiddleware(jwtSvc jwt.Service) *AuthMiddleware {
	return &AuthMiddleware{jwt: jwtSvc}
}

// Middleware requires an access token in the Authorization header.
func (m *AuthMiddleware) Middleware() fiber.Handler {
	return m.handler(false)
}

// QueryTokenMiddleware also accepts the access token as ?token=, for
// WebSocket upgrades where browsers cannot set headers.
func (m *AuthMiddleware) QueryTokenMiddleware() fiber.Handler {
	return m.handler(true)
}

func (m *AuthMiddleware) handler(allowQuery bool) fiber.Handler {
	return func(c fiber.Ctx) error {
		token, ok := BearerToken(c.Get(fiber.HeaderAuthorization))
		if !ok && allowQuery {
			token = strings.TrimSpace(c.Query("token"))
			ok = token != ""
		}
		if !ok {
			return challenge(c, "", "Unauthorized", nil)
		}

		claims, err := m.jwt.ValidateToken(token)
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return challenge(c, "invalid_token", "Token expired", err)
		case err != nil:
			return challenge(c, "invalid_token", "Invalid token", err)
		case claims.TokenType != jwt.TokenTypeAccess || m.jwt.IsRefreshToken(claims):
			return challenge(c, "invalid_token", "Invalid token", nil)
		}

		c.Locals(CtxUserIDKey, claims.UserID)
		c.Locals(CtxEmailKey, claims.Email)
		return c.Next()
	}
}

// challenge sets the RFC 6750 WWW-Authenticate header and returns a 401.
func challenge(c fiber.Ctx, code, msg string, cause error) error {
	v := `Bearer realm="` + jwt.Issuer + `"`
	if code != "" {
		v += `, error="` + code + `"`
	}
	c.Set(fiber.HeaderWWWAuthenticate, v)
	return NewAppError(fiber.StatusUnauthorized, msg, nil, cause)
}

// UserID returns the authenticated caller set by the auth middleware.
func UserID(c fiber.Ctx) (uuid.UUID, bool) {
	id, ok := c.Locals(CtxUserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func BearerToken(authHeader string) (string, bool) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
