package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/api/metrics"
	"github.com/gototop/admin-api/internal/core/ports"
)

// LeadHandler handles the CRM lead list and the public landing form intake.
type LeadHandler struct {
	leadService ports.LeadService
}

func NewLeadHandler(leadService ports.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

type createLeadRequest struct {
	Name    string `json:"name"    validate:"required"`
	Contact string `json:"contact" validate:"required"`
	Product string `json:"product"`
	Service string `json:"service"`
	Message string `json:"message"`
	Lang    string `json:"lang"`
	Source  string `json:"source"`
}

type updateLeadRequest struct {
	Status     *string `json:"status"`
	Notes      *string `json:"notes"`
	AssignedTo *string `json:"assigned_to"`
}

type leadListResponse struct {
	Leads []leadItem `json:"leads"`
	Total int64      `json:"total"`
}

// leadItem mirrors domain.Lead for transport; kept separate so the wire
// shape can drift without touching the domain type.
type leadItem struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Name         string `json:"name"`
	Contact      string `json:"contact"`
	Product      string `json:"product"`
	Service      string `json:"service"`
	Message      string `json:"message"`
	Lang         string `json:"lang"`
	Status       string `json:"status"`
	Notes        string `json:"notes"`
	AssignedTo   string `json:"assigned_to"`
	AssignedName string `json:"assigned_name"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// List returns leads filtered by status, newest first.
//
// @Summary      List leads
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        status  query     string  false  "Status filter, 'all' or empty for every status"
// @Param        limit   query     int     false  "Page size, default 50, max 500"
// @Param        offset  query     int     false  "Page offset"
// @Success      200     {object}  leadListResponse
// @Failure      401     {object}  errorResponse
// @Failure      403     {object}  errorResponse
// @Router       /api/leads [get]
func (h *LeadHandler) List(c echo.Context) error {
	filter := ports.LeadFilter{Status: c.QueryParam("status")}
	if v := c.QueryParam("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Limit = n
		}
	}
	if v := c.QueryParam("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.Offset = n
		}
	}

	leads, total, err := h.leadService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	items := make([]leadItem, 0, len(leads))
	for i := range leads {
		l := &leads[i]
		items = append(items, leadItem{
			ID:           l.ID,
			Source:       l.Source,
			Name:         l.Name,
			Contact:      l.Contact,
			Product:      l.Product,
			Service:      l.Service,
			Message:      l.Message,
			Lang:         l.Lang,
			Status:       string(l.Status),
			Notes:        l.Notes,
			AssignedTo:   l.AssignedTo,
			AssignedName: l.AssignedName,
			CreatedAt:    l.CreatedAt.Format(time.RFC3339),
			UpdatedAt:    l.UpdatedAt.Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, leadListResponse{Leads: items, Total: total})
}

// Create stores a lead entered manually in the panel.
//
// @Summary      Create lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createLeadRequest  true  "New lead"
// @Success      201   {object}  domain.Lead
// @Failure      400   {object}  errorResponse
// @Router       /api/leads [post]
func (h *LeadHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	lead, err := h.leadService.Create(c.Request().Context(), actor, ports.CreateLeadInput{
		Source:  req.Source,
		Name:    req.Name,
		Contact: req.Contact,
		Product: req.Product,
		Service: req.Service,
		Message: req.Message,
		Lang:    req.Lang,
	})
	if err != nil {
		return err
	}
	metrics.LeadsCreatedTotal.WithLabelValues(lead.Source).Inc()
	return c.JSON(http.StatusCreated, lead)
}

// Submit stores a lead from the public landing form. Unauthenticated.
//
// @Summary      Submit lead from landing form
// @Tags         leads
// @Accept       json
// @Produce      json
// @Param        body  body      createLeadRequest  true  "Form submission"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/lead [post]
func (h *LeadHandler) Submit(c echo.Context) error {
	var req createLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.CreateLeadInput{
		Source:  req.Source,
		Name:    req.Name,
		Contact: req.Contact,
		Product: req.Product,
		Service: req.Service,
		Message: req.Message,
		Lang:    req.Lang,
	}
	if err := h.leadService.Submit(c.Request().Context(), in); err != nil {
		return err
	}
	source := in.Source
	if source == "" {
		source = "form"
	}
	metrics.LeadsCreatedTotal.WithLabelValues(source).Inc()
	return c.JSON(http.StatusCreated, successResponse{Success: true})
}

// Update patches a lead's status, notes or assignee.
//
// @Summary      Update lead
// @Tags         leads
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Lead ID"
// @Param        body  body      updateLeadRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/leads/{id} [put]
func (h *LeadHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateLeadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.LeadUpdate{
		Status:     req.Status,
		Notes:      req.Notes,
		AssignedTo: req.AssignedTo,
	}
	if err := h.leadService.Update(c.Request().Context(), actor, c.Param("id"), update); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete removes a lead.
//
// @Summary      Delete lead
// @Tags         leads
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Lead ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/leads/{id} [delete]
func (h *LeadHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.leadService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
