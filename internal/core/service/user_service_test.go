package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

func newUserFixture(t *testing.T, users ...*domain.User) (*UserService, *stubUserRepo, *stubRecorder) {
	t.Helper()
	repo := newStubUserRepo(users...)
	recorder := &stubRecorder{}
	svc := NewUserService(repo, NewPasswordHasher(4), recorder, zerolog.Nop())
	return svc, repo, recorder
}

func mainAdmin() *domain.User {
	return &domain.User{ID: "admin1", Username: "admin", Role: domain.RoleMainAdmin, IsActive: true}
}

func TestUserService_Create_Success(t *testing.T) {
	svc, _, recorder := newUserFixture(t)

	created, err := svc.Create(context.Background(), mainAdmin(), ports.CreateUserInput{
		Username:    "bob",
		Password:    "secret123",
		DisplayName: "Боб",
		Role:        domain.RoleOperator,
	})
	if err != nil {
		t.Fatalf("create error: %v", err)
	}
	if created.PasswordHash != "" {
		t.Fatalf("password hash leaked")
	}
	if !created.IsActive {
		t.Fatalf("new accounts start active")
	}
	// New accounts snapshot the role defaults as their initial grants.
	want := domain.RoleDefaults[domain.RoleOperator]
	if len(created.Permissions) != len(want) {
		t.Fatalf("expected defaults %v, got %v", want, created.Permissions)
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "create_user" {
		t.Fatalf("expected create_user activity, got %+v", recorder.entries)
	}
}

func TestUserService_Create_RequiresMainAdmin(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	// A developer with the employees section granted still cannot mutate
	// accounts: section visibility and the role gate are independent.
	actor := &domain.User{ID: "d1", Role: domain.RoleDeveloper, Permissions: []string{domain.SectionEmployees}}
	_, err := svc.Create(context.Background(), actor, ports.CreateUserInput{
		Username: "bob", Password: "secret123", DisplayName: "Боб", Role: domain.RoleOperator,
	})
	if !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
}

func TestUserService_Create_InvalidRole(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	_, err := svc.Create(context.Background(), mainAdmin(), ports.CreateUserInput{
		Username: "bob", Password: "secret123", DisplayName: "Боб", Role: "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestUserService_Create_ShortPassword(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	_, err := svc.Create(context.Background(), mainAdmin(), ports.CreateUserInput{
		Username: "bob", Password: "short", DisplayName: "Боб", Role: domain.RoleOperator,
	})
	if !errors.Is(err, domain.ErrPasswordTooShort) {
		t.Fatalf("expected ErrPasswordTooShort, got %v", err)
	}
}

func TestUserService_Create_DuplicateUsername(t *testing.T) {
	existing := &domain.User{ID: "u1", Username: "bob", Role: domain.RoleOperator}
	svc, _, _ := newUserFixture(t, existing)

	_, err := svc.Create(context.Background(), mainAdmin(), ports.CreateUserInput{
		Username: "bob", Password: "secret123", DisplayName: "Боб", Role: domain.RoleOperator,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Update_SelfGuard(t *testing.T) {
	admin := mainAdmin()
	svc, _, _ := newUserFixture(t, admin)

	active := false
	err := svc.Update(context.Background(), admin, admin.ID, ports.UserUpdate{IsActive: &active})
	if !errors.Is(err, domain.ErrSelfAction) {
		t.Fatalf("expected ErrSelfAction, got %v", err)
	}
}

func TestUserService_Delete_SelfGuard(t *testing.T) {
	admin := mainAdmin()
	svc, _, _ := newUserFixture(t, admin)

	if err := svc.Delete(context.Background(), admin, admin.ID); !errors.Is(err, domain.ErrSelfAction) {
		t.Fatalf("expected ErrSelfAction, got %v", err)
	}
}

func TestUserService_Delete_Success(t *testing.T) {
	target := &domain.User{ID: "u2", Username: "bob", DisplayName: "Боб", Role: domain.RoleOperator}
	svc, repo, recorder := newUserFixture(t, target)

	if err := svc.Delete(context.Background(), mainAdmin(), "u2"); err != nil {
		t.Fatalf("delete error: %v", err)
	}
	if _, ok := repo.byID["u2"]; ok {
		t.Fatalf("user not deleted")
	}
	if len(recorder.entries) != 1 || recorder.entries[0].Action != "delete_user" {
		t.Fatalf("expected delete_user activity, got %+v", recorder.entries)
	}
}

func TestUserService_Delete_NotFound(t *testing.T) {
	svc, _, _ := newUserFixture(t)

	if err := svc.Delete(context.Background(), mainAdmin(), "ghost"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ResetPassword(t *testing.T) {
	target := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleOperator}
	svc, repo, _ := newUserFixture(t, target)

	password, err := svc.ResetPassword(context.Background(), mainAdmin(), "u2")
	if err != nil {
		t.Fatalf("reset error: %v", err)
	}
	if len(password) != resetPasswordLen {
		t.Fatalf("expected %d characters, got %d", resetPasswordLen, len(password))
	}
	if !NewPasswordHasher(4).Verify(password, repo.updatedHash) {
		t.Fatalf("stored hash does not match the returned password")
	}
}

func TestUserService_ResetPassword_SelfGuard(t *testing.T) {
	admin := mainAdmin()
	svc, _, _ := newUserFixture(t, admin)

	if _, err := svc.ResetPassword(context.Background(), admin, admin.ID); !errors.Is(err, domain.ErrSelfAction) {
		t.Fatalf("expected ErrSelfAction, got %v", err)
	}
}

func TestUserService_UpdatePermissions_DropsUnknownSections(t *testing.T) {
	target := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleOperator}
	svc, repo, _ := newUserFixture(t, target)

	kept, err := svc.UpdatePermissions(context.Background(), mainAdmin(), "u2",
		[]string{domain.SectionLeads, "secret_section", domain.SectionContent})
	if err != nil {
		t.Fatalf("update permissions error: %v", err)
	}
	if len(kept) != 2 || kept[0] != domain.SectionLeads || kept[1] != domain.SectionContent {
		t.Fatalf("expected unknown sections dropped, got %v", kept)
	}
	if len(repo.byID["u2"].Permissions) != 2 {
		t.Fatalf("stored permissions not replaced: %v", repo.byID["u2"].Permissions)
	}
}

func TestUserService_UpdatePermissions_RequiresMainAdmin(t *testing.T) {
	target := &domain.User{ID: "u2", Username: "bob", Role: domain.RoleOperator}
	svc, _, _ := newUserFixture(t, target)

	actor := &domain.User{ID: "d1", Role: domain.RoleDeveloper}
	_, err := svc.UpdatePermissions(context.Background(), actor, "u2", []string{domain.SectionLeads})
	if !errors.Is(err, domain.ErrAdminOnly) {
		t.Fatalf("expected ErrAdminOnly, got %v", err)
	}
}

func TestUserService_List_StripsHashes(t *testing.T) {
	u := &domain.User{ID: "u1", Username: "bob", PasswordHash: "hash", Role: domain.RoleOperator}
	svc, _, _ := newUserFixture(t, u)

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("list error: %v", err)
	}
	for _, user := range users {
		if user.PasswordHash != "" {
			t.Fatalf("password hash leaked for %s", user.Username)
		}
	}
}
