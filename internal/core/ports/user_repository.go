package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// UserUpdate carries the optional profile fields of an employee update.
// Nil fields are left untouched.
type UserUpdate struct {
	DisplayName *string
	Role        *string
	Phone       *string
	Email       *string
	IsActive    *bool
}

// UserRepository defines the persistence interface for employee accounts.
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	UpdatePermissions(ctx context.Context, id string, sections []string) error
	Delete(ctx context.Context, id string) error
	// Counts returns the total and active account counts for the dashboard.
	Counts(ctx context.Context) (total, active int64, err error)
}
