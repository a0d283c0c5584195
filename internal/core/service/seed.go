package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

// EnsureDefaultAdmin creates the initial main admin account when no account
// with the given username exists yet, so a fresh deployment is reachable.
func EnsureDefaultAdmin(ctx context.Context, users ports.UserRepository, hasher *PasswordHasher, username, password string) error {
	_, err := users.FindByUsername(ctx, username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return fmt.Errorf("seed admin: %w", err)
	}

	hash, err := hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("seed admin: hash: %w", err)
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		Username:     username,
		PasswordHash: hash,
		DisplayName:  "Главный Администратор",
		Role:         domain.RoleMainAdmin,
		IsActive:     true,
		Permissions:  append([]string(nil), domain.Sections...),
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil && !errors.Is(err, domain.ErrUserExists) {
		return fmt.Errorf("seed admin: %w", err)
	}
	return nil
}
