package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/ports"
)

// CalculatorHandler handles the pricing calculator tabs and service rows.
type CalculatorHandler struct {
	calcService ports.CalculatorService
}

func NewCalculatorHandler(calcService ports.CalculatorService) *CalculatorHandler {
	return &CalculatorHandler{calcService: calcService}
}

type createCalcTabRequest struct {
	TabKey    string `json:"tab_key" validate:"required"`
	NameRU    string `json:"name_ru" validate:"required"`
	NameAM    string `json:"name_am"`
	SortOrder int    `json:"sort_order"`
	IsActive  *bool  `json:"is_active"`
}

type updateCalcTabRequest struct {
	NameRU    *string `json:"name_ru"`
	NameAM    *string `json:"name_am"`
	SortOrder *int    `json:"sort_order"`
	IsActive  *bool   `json:"is_active"`
}

type createCalcServiceRequest struct {
	TabID      string `json:"tab_id"  validate:"required"`
	NameRU     string `json:"name_ru" validate:"required"`
	NameAM     string `json:"name_am"`
	Price      string `json:"price"`
	PriceType  string `json:"price_type"`
	PriceTiers string `json:"price_tiers_json"`
	TierDescRU string `json:"tier_desc_ru"`
	TierDescAM string `json:"tier_desc_am"`
	SortOrder  int    `json:"sort_order"`
	IsActive   *bool  `json:"is_active"`
}

type updateCalcServiceRequest struct {
	NameRU     *string `json:"name_ru"`
	NameAM     *string `json:"name_am"`
	Price      *string `json:"price"`
	PriceType  *string `json:"price_type"`
	PriceTiers *string `json:"price_tiers_json"`
	TierDescRU *string `json:"tier_desc_ru"`
	TierDescAM *string `json:"tier_desc_am"`
	SortOrder  *int    `json:"sort_order"`
	IsActive   *bool   `json:"is_active"`
}

// ListTabs returns all calculator tabs ordered for display.
//
// @Summary      List calculator tabs
// @Tags         calculator
// @Produce      json
// @Success      200  {array}  domain.CalcTab
// @Router       /api/calc-tabs [get]
func (h *CalculatorHandler) ListTabs(c echo.Context) error {
	tabs, err := h.calcService.ListTabs(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tabs)
}

// CreateTab adds a calculator tab.
//
// @Summary      Create calculator tab
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCalcTabRequest  true  "New tab"
// @Success      201   {object}  domain.CalcTab
// @Failure      400   {object}  errorResponse
// @Router       /api/calc-tabs [post]
func (h *CalculatorHandler) CreateTab(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCalcTabRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	tab, err := h.calcService.CreateTab(c.Request().Context(), actor, ports.CreateCalcTabInput{
		TabKey:    req.TabKey,
		NameRU:    req.NameRU,
		NameAM:    req.NameAM,
		SortOrder: req.SortOrder,
		IsActive:  active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tab)
}

// UpdateTab patches a calculator tab.
//
// @Summary      Update calculator tab
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Tab ID"
// @Param        body  body      updateCalcTabRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/calc-tabs/{id} [put]
func (h *CalculatorHandler) UpdateTab(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateCalcTabRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.CalcTabUpdate{
		NameRU:    req.NameRU,
		NameAM:    req.NameAM,
		SortOrder: req.SortOrder,
		IsActive:  req.IsActive,
	}
	if err := h.calcService.UpdateTab(c.Request().Context(), actor, c.Param("id"), update); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// DeleteTab removes a calculator tab and all of its service rows.
//
// @Summary      Delete calculator tab
// @Tags         calculator
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Tab ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/calc-tabs/{id} [delete]
func (h *CalculatorHandler) DeleteTab(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.calcService.DeleteTab(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ListServices returns all calculator service rows.
//
// @Summary      List calculator services
// @Tags         calculator
// @Produce      json
// @Success      200  {array}  domain.CalcService
// @Router       /api/calc-services [get]
func (h *CalculatorHandler) ListServices(c echo.Context) error {
	services, err := h.calcService.ListServices(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, services)
}

// CreateService adds a calculator service row.
//
// @Summary      Create calculator service
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCalcServiceRequest  true  "New service row"
// @Success      201   {object}  domain.CalcService
// @Failure      400   {object}  errorResponse
// @Router       /api/calc-services [post]
func (h *CalculatorHandler) CreateService(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createCalcServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}
	svc, err := h.calcService.CreateService(c.Request().Context(), actor, ports.CreateCalcServiceInput{
		TabID:      req.TabID,
		NameRU:     req.NameRU,
		NameAM:     req.NameAM,
		Price:      req.Price,
		PriceType:  req.PriceType,
		PriceTiers: req.PriceTiers,
		TierDescRU: req.TierDescRU,
		TierDescAM: req.TierDescAM,
		SortOrder:  req.SortOrder,
		IsActive:   active,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

// UpdateService patches a calculator service row.
//
// @Summary      Update calculator service
// @Tags         calculator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Service ID"
// @Param        body  body      updateCalcServiceRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/calc-services/{id} [put]
func (h *CalculatorHandler) UpdateService(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateCalcServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.CalcServiceUpdate{
		NameRU:     req.NameRU,
		NameAM:     req.NameAM,
		Price:      req.Price,
		PriceType:  req.PriceType,
		PriceTiers: req.PriceTiers,
		TierDescRU: req.TierDescRU,
		TierDescAM: req.TierDescAM,
		SortOrder:  req.SortOrder,
		IsActive:   req.IsActive,
	}
	if err := h.calcService.UpdateService(c.Request().Context(), actor, c.Param("id"), update); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// DeleteService removes a calculator service row.
//
// @Summary      Delete calculator service
// @Tags         calculator
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "Service ID"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/calc-services/{id} [delete]
func (h *CalculatorHandler) DeleteService(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.calcService.DeleteService(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
