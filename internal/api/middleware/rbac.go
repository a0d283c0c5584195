package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/api/metrics"
	"github.com/gototop/admin-api/internal/core/domain"
)

// RequireSection gates a route group on section membership in the user's
// effective permission set. Main admins pass unconditionally. This middleware
// governs visibility only; admin-only mutations carry an independent role
// gate inside the services.
func RequireSection(section string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := UserFromContext(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if err := domain.RequireAccess(user, section); err != nil {
				metrics.AccessDeniedTotal.WithLabelValues(section).Inc()
				return echo.NewHTTPError(http.StatusForbidden, err.Error())
			}
			return next(c)
		}
	}
}
