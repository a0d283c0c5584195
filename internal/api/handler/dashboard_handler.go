package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/ports"
)

// DashboardHandler serves the dashboard aggregates and the audit trail.
type DashboardHandler struct {
	dashboardService ports.DashboardService
}

func NewDashboardHandler(dashboardService ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats returns the dashboard aggregates: lead counts by status and source,
// account counts, recent leads and recent activity.
//
// @Summary      Dashboard stats
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DashboardStats
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	stats, err := h.dashboardService.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// Activity returns the most recent audit trail entries.
//
// @Summary      Recent activity
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        limit  query     int  false  "Entries to return, default 20, max 100"
// @Success      200    {array}   domain.ActivityEntry
// @Failure      401    {object}  errorResponse
// @Router       /api/activity [get]
func (h *DashboardHandler) Activity(c echo.Context) error {
	limit := 0
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	entries, err := h.dashboardService.Activity(c.Request().Context(), limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}
