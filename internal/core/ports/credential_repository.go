package ports

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// CredentialRepository is the mock credential table consulted only by login.
// It is read-only at runtime.
type CredentialRepository interface {
	// FindByEmail returns the credential tuple for email, or
	// domain.ErrInvalidCredentials when no entry exists.
	FindByEmail(ctx context.Context, email string) (*domain.Credential, error)
}
