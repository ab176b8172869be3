package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/saberviver/mentorship-api/internal/core/domain"
	"github.com/saberviver/mentorship-api/internal/core/ports"
	"github.com/saberviver/mentorship-api/internal/infrastructure/db/memory"
)

func newAuthFixture(t *testing.T) (*AuthService, ports.SessionStore) {
	t.Helper()
	creds, err := memory.NewCredentialRepository()
	if err != nil {
		t.Fatalf("build credential table: %v", err)
	}
	sessions := memory.NewSessionStore()
	return NewAuthService(creds, sessions, "test-secret", time.Hour, zerolog.Nop()), sessions
}

func TestAuthService_Login_AllSeededCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	valid := []struct {
		email, password, role string
	}{
		{"mentor@example.com", "password", domain.RoleMentor},
		{"learner@example.com", "password", domain.RoleLearner},
	}

	for _, tc := range valid {
		result, err := svc.Login(context.Background(), tc.email, tc.password)
		if err != nil {
			t.Fatalf("Login(%s) returned error: %v", tc.email, err)
		}
		if result.Token == "" {
			t.Fatalf("Login(%s): expected token", tc.email)
		}
		if result.User.Role != tc.role {
			t.Fatalf("Login(%s): role = %q, want %q", tc.email, result.User.Role, tc.role)
		}

		// Authentication is derived from the live record, never cached.
		sess, err := svc.Resolve(context.Background(), result.Token)
		if err != nil {
			t.Fatalf("Resolve after login: %v", err)
		}
		if sess.User.Email != tc.email {
			t.Fatalf("resolved email = %q, want %q", sess.User.Email, tc.email)
		}
	}
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc, _ := newAuthFixture(t)

	cases := []struct{ email, password string }{
		{"mentor@example.com", "wrong"},
		{"nobody@example.com", "password"},
		{"", ""},
	}
	for _, tc := range cases {
		if _, err := svc.Login(context.Background(), tc.email, tc.password); err != domain.ErrInvalidCredentials {
			t.Fatalf("Login(%q, %q): expected ErrInvalidCredentials, got %v", tc.email, tc.password, err)
		}
	}
}

func TestAuthService_Login_StripsPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "learner@example.com", "password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.User.DisplayName != "João Pereira" {
		t.Fatalf("unexpected display name: %q", result.User.DisplayName)
	}
	// The user record carries identity only; there is no password field to
	// leak, so the persisted record must round-trip without one.
	sess, err := svc.Resolve(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if *sess.User != *result.User {
		t.Fatalf("persisted record differs from returned user: %+v vs %+v", sess.User, result.User)
	}
}

func TestAuthService_Register_AlwaysSucceeds(t *testing.T) {
	svc, _ := newAuthFixture(t)

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:       "x@y.com",
		Password:    "pw",
		DisplayName: "Ana",
		Role:        domain.RoleLearner,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.User.Role != domain.RoleLearner {
		t.Fatalf("role = %q, want learner", result.User.Role)
	}
	if result.User.ID == "" {
		t.Fatalf("expected a synthesized id")
	}

	// Registering the same email again is not rejected.
	again, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:       "x@y.com",
		Password:    "pw",
		DisplayName: "Ana",
		Role:        domain.RoleLearner,
	})
	if err != nil {
		t.Fatalf("duplicate-email register returned error: %v", err)
	}
	if again.User.ID == result.User.ID {
		t.Fatalf("expected distinct ids for distinct registrations")
	}
}

func TestAuthService_Register_PersistsAcrossReload(t *testing.T) {
	creds, err := memory.NewCredentialRepository()
	if err != nil {
		t.Fatalf("build credential table: %v", err)
	}
	sessions := memory.NewSessionStore()
	svc := NewAuthService(creds, sessions, "test-secret", time.Hour, zerolog.Nop())

	result, err := svc.Register(context.Background(), ports.RegisterInput{
		Email:       "x@y.com",
		Password:    "pw",
		DisplayName: "Ana",
		Role:        domain.RoleLearner,
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// A new service instance over the same store stands in for a reload:
	// the record is restored without re-prompting credentials.
	reloaded := NewAuthService(creds, sessions, "test-secret", time.Hour, zerolog.Nop())
	sess, err := reloaded.Resolve(context.Background(), result.Token)
	if err != nil {
		t.Fatalf("Resolve after reload: %v", err)
	}
	if sess.User.DisplayName != "Ana" || sess.User.Role != domain.RoleLearner {
		t.Fatalf("unexpected restored user: %+v", sess.User)
	}
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	svc, _ := newAuthFixture(t)

	result, err := svc.Login(context.Background(), "mentor@example.com", "password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}

	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if _, err := svc.Resolve(context.Background(), result.Token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession after logout, got %v", err)
	}

	// Second logout with the same token is a no-op, not an error.
	if err := svc.Logout(context.Background(), result.Token); err != nil {
		t.Fatalf("second logout returned error: %v", err)
	}
	// So is logout with garbage.
	if err := svc.Logout(context.Background(), "not-a-token"); err != nil {
		t.Fatalf("logout with invalid token returned error: %v", err)
	}

	// The store slot itself must be gone.
	sess, err := svc.Resolve(context.Background(), result.Token)
	if err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession, got %v (%+v)", err, sess)
	}
}

func TestAuthService_Resolve_InvalidToken(t *testing.T) {
	svc, _ := newAuthFixture(t)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Resolve(context.Background(), token); err != domain.ErrNoSession {
			t.Fatalf("Resolve(%q): expected ErrNoSession, got %v", token, err)
		}
	}
}

func TestAuthService_Resolve_WrongSigningKey(t *testing.T) {
	svc, sessions := newAuthFixture(t)
	other := NewAuthService(nil, sessions, "other-secret", time.Hour, zerolog.Nop())

	result, err := svc.Login(context.Background(), "mentor@example.com", "password")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := other.Resolve(context.Background(), result.Token); err != domain.ErrNoSession {
		t.Fatalf("expected ErrNoSession for foreign signature, got %v", err)
	}
}
