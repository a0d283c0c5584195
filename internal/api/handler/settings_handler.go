package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

// SettingsHandler serves the singleton configuration documents: footer, PDF
// template and Telegram bot parameters. Each document gets its own route
// pair; they all funnel into the same service keyed by setting name.
type SettingsHandler struct {
	settingsService ports.SettingsService
}

func NewSettingsHandler(settingsService ports.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetFooter returns the footer document.
//
// @Summary      Get footer settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Setting
// @Router       /api/footer [get]
func (h *SettingsHandler) GetFooter(c echo.Context) error {
	return h.get(c, domain.SettingFooter)
}

// PutFooter replaces the footer document.
//
// @Summary      Update footer settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "Footer document"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/footer [put]
func (h *SettingsHandler) PutFooter(c echo.Context) error {
	return h.put(c, domain.SettingFooter)
}

// GetPDFTemplate returns the commercial offer PDF template document.
//
// @Summary      Get PDF template settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Setting
// @Router       /api/pdf-template [get]
func (h *SettingsHandler) GetPDFTemplate(c echo.Context) error {
	return h.get(c, domain.SettingPDFTemplate)
}

// PutPDFTemplate replaces the PDF template document.
//
// @Summary      Update PDF template settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "PDF template document"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/pdf-template [put]
func (h *SettingsHandler) PutPDFTemplate(c echo.Context) error {
	return h.put(c, domain.SettingPDFTemplate)
}

// GetTelegramBot returns the Telegram bot notification parameters.
//
// @Summary      Get Telegram bot settings
// @Tags         settings
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.Setting
// @Router       /api/telegram-bot [get]
func (h *SettingsHandler) GetTelegramBot(c echo.Context) error {
	return h.get(c, domain.SettingTelegramBot)
}

// PutTelegramBot replaces the Telegram bot parameters.
//
// @Summary      Update Telegram bot settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      object  true  "Telegram bot document"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/telegram-bot [put]
func (h *SettingsHandler) PutTelegramBot(c echo.Context) error {
	return h.put(c, domain.SettingTelegramBot)
}

func (h *SettingsHandler) get(c echo.Context, key string) error {
	setting, err := h.settingsService.Get(c.Request().Context(), key)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, setting)
}

func (h *SettingsHandler) put(c echo.Context, key string) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var value map[string]any
	if err := c.Bind(&value); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	if err := h.settingsService.Put(c.Request().Context(), actor, key, value); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
