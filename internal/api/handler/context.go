package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/api/middleware"
	"github.com/gototop/admin-api/internal/core/domain"
)

// currentUser extracts the live user record injected by the Auth middleware.
// Its presence proves the middleware ran; a guarded route reached without it
// is a wiring bug surfaced as a 401, not a panic.
func currentUser(c echo.Context) (*domain.User, error) {
	user := middleware.UserFromContext(c)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return user, nil
}
