package ports

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
// Password-confirmation matching is the form layer's responsibility and is
// not modelled here.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
	Role        string
}

// AuthResult is returned by login and register.
type AuthResult struct {
	Token string
	User  *domain.User
}

// Session pairs a session id with the user record stored under it.
type Session struct {
	ID   string
	User *domain.User
}

// AuthService owns the current-user state and mediates between the HTTP
// surface and the session store.
type AuthService interface {
	// Login matches email and password against the credential table.
	// On success the session record is persisted and a signed token returned;
	// on no match it fails with domain.ErrInvalidCredentials and the session
	// is left unchanged.
	Login(ctx context.Context, email, password string) (*AuthResult, error)

	// Register always succeeds: no uniqueness check is performed against
	// existing accounts. The new user gets a time-based identifier and is
	// persisted as the current session.
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)

	// Logout clears the session referenced by token. Calling it with an
	// invalid token or an already-cleared session is a no-op, not an error.
	Logout(ctx context.Context, token string) error

	// Resolve maps a token to its live session record. It fails with
	// domain.ErrNoSession when the token is invalid or the record is gone;
	// authentication is derived from this call and never cached.
	Resolve(ctx context.Context, token string) (*Session, error)
}
