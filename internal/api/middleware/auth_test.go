package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/gototop/admin-api/internal/core/domain"
)

type stubResolver struct {
	user *domain.User
	err  error
}

func (s *stubResolver) Resolve(_ context.Context, token string) (*domain.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.user, nil
}

func TestAuth_InjectsUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	want := &domain.User{ID: "u1", Username: "alice", Role: domain.RoleOperator}
	mw := Auth(&stubResolver{user: want})

	called := false
	handler := mw(func(c echo.Context) error {
		called = true
		if got := UserFromContext(c); got != want {
			t.Fatalf("unexpected user in context: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubResolver{user: &domain.User{}})
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_BadPrefix(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(&stubResolver{user: &domain.User{}})
	handler := mw(func(c echo.Context) error { return nil })

	err := handler(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_ResolveFailure(t *testing.T) {
	cases := []struct {
		name string
		err  error
		msg  string
	}{
		{"inactive user", domain.ErrUserInactive, "user not found or inactive"},
		{"deleted user", domain.ErrUserNotFound, "user not found or inactive"},
		{"bad token", errors.New("token malformed"), "invalid or expired token"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.Header.Set("Authorization", "Bearer token123")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			mw := Auth(&stubResolver{err: tc.err})
			handler := mw(func(c echo.Context) error { return nil })

			err := handler(c)
			var he *echo.HTTPError
			if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %v", err)
			}
			if he.Message != tc.msg {
				t.Fatalf("expected message %q, got %v", tc.msg, he.Message)
			}
		})
	}
}

func TestUserFromContext_Missing(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	if UserFromContext(c) != nil {
		t.Fatalf("expected nil user without middleware")
	}
}
