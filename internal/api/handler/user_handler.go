package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

// UserHandler handles employee account management and permission grants.
type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List returns all employee accounts.
//
// @Summary      List employees
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   userResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}
	out := make([]userResponse, 0, len(users))
	for i := range users {
		out = append(out, toUserResponse(&users[i]))
	}
	return c.JSON(http.StatusOK, out)
}

// Create creates a new employee account. Main admin only.
//
// @Summary      Create employee
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "New account"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Create(c.Request().Context(), actor, ports.CreateUserInput{
		Username:    req.Username,
		Password:    req.Password,
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Phone:       req.Phone,
		Email:       req.Email,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Update patches an employee account. Main admin only, never the actor's own.
//
// @Summary      Update employee
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  successResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	update := ports.UserUpdate{
		DisplayName: req.DisplayName,
		Role:        req.Role,
		Phone:       req.Phone,
		Email:       req.Email,
		IsActive:    req.IsActive,
	}
	if err := h.userService.Update(c.Request().Context(), actor, c.Param("id"), update); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// Delete removes an employee account. Main admin only, never the actor's own.
//
// @Summary      Delete employee
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User ID"
// @Success      200  {object}  successResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, successResponse{Success: true})
}

// ResetPassword generates a fresh password for the target account and returns
// it in plaintext, once. Main admin only, never the actor's own.
//
// @Summary      Reset employee password
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User ID"
// @Success      200  {object}  resetPasswordResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id}/reset-password [post]
func (h *UserHandler) ResetPassword(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}
	password, err := h.userService.ResetPassword(c.Request().Context(), actor, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resetPasswordResponse{Success: true, NewPassword: password})
}

// GetPermissions returns the target user's effective section grants.
//
// @Summary      Get employee permissions
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User ID"
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/permissions/{id} [get]
func (h *UserHandler) GetPermissions(c echo.Context) error {
	user, err := h.userService.GetPermissions(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// UpdatePermissions replaces the target user's explicit section grants.
// Main admin only. Unknown section names are dropped; a main admin target
// keeps full access regardless of the stored set.
//
// @Summary      Update employee permissions
// @Tags         permissions
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "User ID"
// @Param        body  body      updatePermissionsRequest  true  "Section grants"
// @Success      200   {object}  updatePermissionsResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/permissions/{id} [put]
func (h *UserHandler) UpdatePermissions(c echo.Context) error {
	actor, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updatePermissionsRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	kept, err := h.userService.UpdatePermissions(c.Request().Context(), actor, c.Param("id"), req.Sections)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updatePermissionsResponse{Success: true, Sections: kept})
}

// Roles returns the role catalog: valid roles, their labels, the known
// sections and the per-role default grants. Used by the panel to render the
// permission editor.
//
// @Summary      Role and section catalog
// @Tags         permissions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  rolesResponse
// @Router       /api/config/roles [get]
func (h *UserHandler) Roles(c echo.Context) error {
	return c.JSON(http.StatusOK, rolesResponse{
		Roles:              domain.Roles,
		RoleLabels:         domain.RoleLabels,
		Sections:           domain.Sections,
		SectionLabels:      domain.SectionLabels,
		DefaultPermissions: domain.RoleDefaults,
	})
}

type rolesResponse struct {
	Roles              []string            `json:"roles"`
	RoleLabels         map[string]string   `json:"role_labels"`
	Sections           []string            `json:"sections"`
	SectionLabels      map[string]string   `json:"section_labels"`
	DefaultPermissions map[string][]string `json:"default_permissions"`
}
