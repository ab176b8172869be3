package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saberviver/mentorship-api/internal/core/domain"
	"github.com/saberviver/mentorship-api/internal/core/ports"
)

type stubAuthService struct {
	resolveFn func(ctx context.Context, token string) (*ports.Session, error)
}

func (s *stubAuthService) Login(context.Context, string, string) (*ports.AuthResult, error) {
	panic("not used")
}

func (s *stubAuthService) Register(context.Context, ports.RegisterInput) (*ports.AuthResult, error) {
	panic("not used")
}

func (s *stubAuthService) Logout(context.Context, string) error {
	panic("not used")
}

func (s *stubAuthService) Resolve(ctx context.Context, token string) (*ports.Session, error) {
	return s.resolveFn(ctx, token)
}

func TestAuth_ValidSession(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		resolveFn: func(_ context.Context, token string) (*ports.Session, error) {
			if token != "token123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return &ports.Session{
				ID:   "sid-1",
				User: &domain.User{ID: "1", DisplayName: "Doroteia Silva", Role: domain.RoleMentor},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer token123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	handler := Auth(stub)(func(c echo.Context) error {
		called = true
		if c.Get("session_id") != "sid-1" {
			t.Fatalf("session_id not set")
		}
		user, ok := c.Get("user").(*domain.User)
		if !ok || user.DisplayName != "Doroteia Silva" {
			t.Fatalf("user not injected: %+v", c.Get("user"))
		}
		if c.Get("role") != domain.RoleMentor {
			t.Fatalf("role not injected")
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
	stub := &stubAuthService{
		resolveFn: func(context.Context, string) (*ports.Session, error) {
			t.Fatalf("resolve must not be called without a header")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("handler must not run")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_MalformedHeader(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		resolveFn: func(context.Context, string) (*ports.Session, error) {
			t.Fatalf("resolve must not be called for malformed header")
			return nil, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic abc")
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(stub)(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuth_DeadSession(t *testing.T) {
	e := echo.New()
	stub := &stubAuthService{
		resolveFn: func(context.Context, string) (*ports.Session, error) {
			return nil, domain.ErrNoSession
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer stale-token")
	c := e.NewContext(req, httptest.NewRecorder())

	err := Auth(stub)(func(c echo.Context) error {
		t.Fatalf("handler must not run for a dead session")
		return nil
	})(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestRequireRole(t *testing.T) {
	e := echo.New()

	run := func(role string, allowed ...string) error {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		c := e.NewContext(req, httptest.NewRecorder())
		c.Set("role", role)
		return RequireRole(allowed...)(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})(c)
	}

	if err := run(domain.RoleMentor, domain.RoleMentor); err != nil {
		t.Fatalf("mentor should pass: %v", err)
	}

	err := run(domain.RoleLearner, domain.RoleMentor)
	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}

	// No role in context at all.
	err = run("", domain.RoleMentor)
	he, ok = err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for missing role, got %v", err)
	}
}
