package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/domain"
)

// userContextKey is the echo context key under which the resolved user is
// stored.
const userContextKey = "auth_user"

// TokenResolver turns a bearer token into a live user record. Implemented by
// the auth service.
type TokenResolver interface {
	Resolve(ctx context.Context, token string) (*domain.User, error)
}

// Auth extracts the bearer token, resolves it to a live user record, and
// injects that record into the request context. Every failure mode — missing
// header, bad prefix, invalid signature, expiry, unknown or deactivated user —
// collapses to a 401; the specific cause is logged by the resolver callers.
func Auth(resolver TokenResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			user, err := resolver.Resolve(c.Request().Context(), parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, unauthorizedMessage(err))
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user injected by Auth, or nil when the request
// did not pass through the middleware.
func UserFromContext(c echo.Context) *domain.User {
	user, _ := c.Get(userContextKey).(*domain.User)
	return user
}

func unauthorizedMessage(err error) string {
	switch err {
	case domain.ErrUserNotFound, domain.ErrUserInactive:
		return "user not found or inactive"
	default:
		return "invalid or expired token"
	}
}
