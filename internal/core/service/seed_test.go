package service

import (
	"context"
	"testing"

	"github.com/gototop/admin-api/internal/core/domain"
)

func TestEnsureDefaultAdmin_CreatesOnEmptyDatabase(t *testing.T) {
	repo := newStubUserRepo()

	if err := EnsureDefaultAdmin(context.Background(), repo, NewPasswordHasher(4), "admin", "secret123"); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	admin, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("admin not created: %v", err)
	}
	if admin.Role != domain.RoleMainAdmin {
		t.Fatalf("expected main_admin role, got %q", admin.Role)
	}
	if !admin.IsActive {
		t.Fatalf("seeded admin should be active")
	}
	if !NewPasswordHasher(4).Verify("secret123", admin.PasswordHash) {
		t.Fatalf("seeded password does not verify")
	}
	if len(admin.Permissions) != len(domain.Sections) {
		t.Fatalf("seeded admin should carry all sections, got %v", admin.Permissions)
	}
}

func TestEnsureDefaultAdmin_Idempotent(t *testing.T) {
	existing := &domain.User{ID: "u1", Username: "admin", Role: domain.RoleOperator, PasswordHash: "keep"}
	repo := newStubUserRepo(existing)

	if err := EnsureDefaultAdmin(context.Background(), repo, NewPasswordHasher(4), "admin", "secret123"); err != nil {
		t.Fatalf("seed error: %v", err)
	}

	// The existing account is left exactly as it was.
	got, err := repo.FindByUsername(context.Background(), "admin")
	if err != nil {
		t.Fatalf("find error: %v", err)
	}
	if got.Role != domain.RoleOperator || got.PasswordHash != "keep" {
		t.Fatalf("seed overwrote existing account: %+v", got)
	}
}
