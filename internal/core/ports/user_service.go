package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// CreateUserInput is the DTO for creating an employee account.
type CreateUserInput struct {
	Username    string
	Password    string
	DisplayName string
	Role        string
	Phone       string
	Email       string
}

// UserService manages employee accounts. Every mutation requires the acting
// user to be the main admin, independent of section grants, and no mutation
// may target the actor's own account.
type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, actor *domain.User, in CreateUserInput) (*domain.User, error)
	Update(ctx context.Context, actor *domain.User, id string, update UserUpdate) error
	Delete(ctx context.Context, actor *domain.User, id string) error
	// ResetPassword stores a freshly generated password for the target
	// account and returns it in plaintext, once.
	ResetPassword(ctx context.Context, actor *domain.User, id string) (string, error)
	// GetPermissions returns the target user with effective permissions
	// resolved for display.
	GetPermissions(ctx context.Context, id string) (*domain.User, error)
	// UpdatePermissions replaces the target's explicit section grants.
	// Unknown section names are silently dropped; the kept set is returned.
	UpdatePermissions(ctx context.Context, actor *domain.User, id string, sections []string) ([]string, error)
}
