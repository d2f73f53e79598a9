package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/bookstore/bookstore-api/internal/core/ports"
)

// Context keys under which the resolved identity is stored.
const (
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// Auth resolves the request identity from a bearer token. It never rejects:
// any failure (missing header, bad token, deleted account) leaves the request
// anonymous and defers the denial to the authorization gate. Dependencies are
// injected once at construction, not resolved per request.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return next(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return next(c)
			}

			subject, err := tokens.ExtractSubject(parts[1])
			if err != nil {
				return next(c)
			}

			user, err := users.FindByUsername(c.Request().Context(), subject)
			if err != nil {
				// Stale token for a deleted account degrades to anonymous.
				return next(c)
			}

			if !tokens.Validate(parts[1], user.Username) {
				return next(c)
			}

			c.Set(ContextKeyUsername, user.Username)
			c.Set(ContextKeyRole, user.Role)

			return next(c)
		}
	}
}

// Identity returns the resolved username and role for the current request.
// ok is false when the request is anonymous.
func Identity(c echo.Context) (username, role string, ok bool) {
	username, _ = c.Get(ContextKeyUsername).(string)
	role, _ = c.Get(ContextKeyRole).(string)
	return username, role, username != "" && role != ""
}
