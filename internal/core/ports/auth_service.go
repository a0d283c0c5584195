package ports

import (
	"context"

	"github.com/gototop/admin-api/internal/core/domain"
)

// AuthService authenticates credentials and resolves bearer tokens into live
// user records.
type AuthService interface {
	// Authenticate verifies username/password and issues a session token.
	// The returned user carries no password hash.
	Authenticate(ctx context.Context, username, password string) (string, *domain.User, error)
	// Resolve validates a bearer token and re-reads the live user record.
	// Deactivated or deleted accounts are rejected here even when their
	// token has not yet expired.
	Resolve(ctx context.Context, token string) (*domain.User, error)
	// ChangePassword verifies the actor's current password and stores a new
	// hash. The new password must be at least domain.MinPasswordLen long.
	ChangePassword(ctx context.Context, actor *domain.User, current, newPassword string) error
}
