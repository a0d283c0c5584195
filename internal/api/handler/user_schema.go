package handler

import (
	"time"

	"github.com/gototop/admin-api/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// successResponse acknowledges a mutation with no payload of its own.
type successResponse struct {
	Success bool `json:"success"`
}

// userResponse is the transport shape of an employee account. Permissions are
// always resolved to the effective set and the password hash never appears.
type userResponse struct {
	ID          string    `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	RoleLabel   string    `json:"role_label"`
	Phone       string    `json:"phone,omitempty"`
	Email       string    `json:"email,omitempty"`
	IsActive    bool      `json:"is_active"`
	Permissions []string  `json:"permissions"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toUserResponse(u *domain.User) userResponse {
	roleLabel := domain.RoleLabels[u.Role]
	if roleLabel == "" {
		roleLabel = u.Role
	}
	return userResponse{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		Role:        u.Role,
		RoleLabel:   roleLabel,
		Phone:       u.Phone,
		Email:       u.Email,
		IsActive:    u.IsActive,
		Permissions: u.EffectivePermissions(),
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

type createUserRequest struct {
	Username    string `json:"username"     validate:"required,min=3"`
	Password    string `json:"password"     validate:"required,min=6"`
	DisplayName string `json:"display_name" validate:"required"`
	Role        string `json:"role"         validate:"required"`
	Phone       string `json:"phone"`
	Email       string `json:"email"        validate:"omitempty,email"`
}

type updateUserRequest struct {
	DisplayName *string `json:"display_name"`
	Role        *string `json:"role"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
	IsActive    *bool   `json:"is_active"`
}

type updatePermissionsRequest struct {
	Sections []string `json:"sections"`
}

type updatePermissionsResponse struct {
	Success  bool     `json:"success"`
	Sections []string `json:"sections"`
}

type resetPasswordResponse struct {
	Success     bool   `json:"success"`
	NewPassword string `json:"new_password"`
}
