package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/ports"
)

// ContentHandler handles the site content blocks edited through the panel's
// block constructor.
type ContentHandler struct {
	contentService ports.ContentService
}

func NewContentHandler(contentService ports.ContentService) *ContentHandler {
	return &ContentHandler{contentService: contentService}
}

type upsertContentRequest struct {
	SectionKey  string `json:"section_key"  validate:"required"`
	SectionName string `json:"section_name"`
	Content     any    `json:"content_json"`
	SortOrder   int    `json:"sort_order"`
}

// List returns every content section ordered for display.
//
// @Summary      List content sections
// @Tags         content
// @Produce      json
// @Success      200  {array}  domain.ContentSection
// @Router       /api/content [get]
func (h *ContentHandler) List(c echo.Context) error {
	sections, err := h.contentService.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sections)
}

// Get returns a single content section by key.
//
// @Summary      Get content section
// @Tags         content
// @Produce      json
// @Param        key  path      string  true  "Section key"
// @Success      200  {object}  domain.ContentSection
// @Failure      404  {object}  errorResponse
// @Router       /api/content/{key} [get]
func (h *ContentHandler) Get(c echo.Context) error {
	section, err := h.contentService.Get(c.Request().Context(), c.Param("key"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, section)
}

// Upsert creates or replaces a content section.
//
// @Summary      Create or replace content section
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      upsertContentRequest  true  "Section payload"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/content [post]
func (h *ContentHandler) Upsert(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req upsertContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := ports.UpsertContentInput{
		SectionKey:  req.SectionKey,
		SectionName: req.SectionName,
		Content:     req.Content,
		SortOrder:   req.SortOrder,
	}
	if err := h.contentService.Upsert(c.Request().Context(), actor, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Put creates or replaces the content section named in the path. The body's
// section key, if present, is ignored in favour of the path.
//
// @Summary      Create or replace content section by key
// @Tags         content
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        key   path      string                true  "Section key"
// @Param        body  body      upsertContentRequest  true  "Section payload"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/content/{key} [put]
func (h *ContentHandler) Put(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req upsertContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	req.SectionKey = c.Param("key")

	in := ports.UpsertContentInput{
		SectionKey:  req.SectionKey,
		SectionName: req.SectionName,
		Content:     req.Content,
		SortOrder:   req.SortOrder,
	}
	if err := h.contentService.Upsert(c.Request().Context(), actor, in); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete removes a content section.
//
// @Summary      Delete content section
// @Tags         content
// @Produce      json
// @Security     BearerAuth
// @Param        key  path      string  true  "Section key"
// @Success      200  {object}  successResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/content/{key} [delete]
func (h *ContentHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.contentService.Delete(c.Request().Context(), actor, c.Param("key")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}
