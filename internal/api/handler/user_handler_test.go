package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/domain"
	"github.com/gototop/admin-api/internal/core/ports"
)

type stubUserService struct {
	createFn          func(ctx context.Context, actor *domain.User, in ports.CreateUserInput) (*domain.User, error)
	updatePermissions func(ctx context.Context, actor *domain.User, id string, sections []string) ([]string, error)
}

func (s *stubUserService) List(context.Context) ([]domain.User, error) { return nil, nil }

func (s *stubUserService) Create(ctx context.Context, actor *domain.User, in ports.CreateUserInput) (*domain.User, error) {
	return s.createFn(ctx, actor, in)
}

func (s *stubUserService) Update(context.Context, *domain.User, string, ports.UserUpdate) error {
	return nil
}

func (s *stubUserService) Delete(context.Context, *domain.User, string) error { return nil }

func (s *stubUserService) ResetPassword(context.Context, *domain.User, string) (string, error) {
	return "", nil
}

func (s *stubUserService) GetPermissions(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (s *stubUserService) UpdatePermissions(ctx context.Context, actor *domain.User, id string, sections []string) ([]string, error) {
	return s.updatePermissions(ctx, actor, id, sections)
}

func TestUserHandler_Create_Forwards(t *testing.T) {
	stub := &stubUserService{
		createFn: func(ctx context.Context, actor *domain.User, in ports.CreateUserInput) (*domain.User, error) {
			if actor.ID != "admin1" {
				t.Fatalf("unexpected actor: %+v", actor)
			}
			if in.Username != "bob" || in.Role != domain.RoleOperator {
				t.Fatalf("unexpected input: %+v", in)
			}
			return &domain.User{ID: "u2", Username: in.Username, Role: in.Role, IsActive: true}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/users",
		`{"username":"bob","password":"secret123","display_name":"Боб","role":"operator"}`)
	setContextUser(c, &domain.User{ID: "admin1", Role: domain.RoleMainAdmin})

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
}

func TestUserHandler_Create_ShortPasswordRejectedBeforeService(t *testing.T) {
	stub := &stubUserService{
		createFn: func(context.Context, *domain.User, ports.CreateUserInput) (*domain.User, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewUserHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/api/users",
		`{"username":"bob","password":"abc","display_name":"Боб","role":"operator"}`)
	setContextUser(c, &domain.User{ID: "admin1", Role: domain.RoleMainAdmin})

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestUserHandler_UpdatePermissions_ReturnsKeptSet(t *testing.T) {
	stub := &stubUserService{
		updatePermissions: func(ctx context.Context, actor *domain.User, id string, sections []string) ([]string, error) {
			if id != "u2" {
				t.Fatalf("unexpected id %q", id)
			}
			return []string{domain.SectionLeads}, nil
		},
	}
	h := NewUserHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/api/permissions/u2",
		`{"sections":["leads","secret_section"]}`)
	c.SetParamNames("id")
	c.SetParamValues("u2")
	setContextUser(c, &domain.User{ID: "admin1", Role: domain.RoleMainAdmin})

	if err := h.UpdatePermissions(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp updatePermissionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if !resp.Success || len(resp.Sections) != 1 || resp.Sections[0] != domain.SectionLeads {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestUserHandler_Roles_Catalog(t *testing.T) {
	h := NewUserHandler(&stubUserService{})

	c, rec := newTestContext(t, http.MethodGet, "/api/config/roles", "")
	if err := h.Roles(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp rolesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Roles) != len(domain.Roles) || len(resp.Sections) != len(domain.Sections) {
		t.Fatalf("incomplete catalog: %+v", resp)
	}
	if len(resp.DefaultPermissions[domain.RoleOperator]) != 2 {
		t.Fatalf("unexpected operator defaults: %v", resp.DefaultPermissions[domain.RoleOperator])
	}
	if resp.RoleLabels[domain.RoleMainAdmin] == "" {
		t.Fatalf("missing role labels")
	}
}
