package memory

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// SeedCredential is a plaintext credential tuple used to build the mock
// credential table. Passwords are hashed at construction and never kept.
type SeedCredential struct {
	ID          string
	Email       string
	Password    string
	DisplayName string
	Role        string
	PhotoURL    string
}

// CredentialRepository is the fixed in-memory credential table consulted by
// login. It is immutable after construction.
type CredentialRepository struct {
	byEmail map[string]*domain.Credential
}

// NewCredentialRepository builds the table from the given seeds, or from the
// default demo accounts when none are provided.
func NewCredentialRepository(seeds ...SeedCredential) (*CredentialRepository, error) {
	if len(seeds) == 0 {
		seeds = defaultCredentials()
	}

	byEmail := make(map[string]*domain.Credential, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash credential for %s: %w", s.Email, err)
		}
		byEmail[strings.ToLower(s.Email)] = &domain.Credential{
			ID:           s.ID,
			Email:        s.Email,
			PasswordHash: string(hash),
			DisplayName:  s.DisplayName,
			Role:         s.Role,
			PhotoURL:     s.PhotoURL,
		}
	}
	return &CredentialRepository{byEmail: byEmail}, nil
}

func (r *CredentialRepository) FindByEmail(_ context.Context, email string) (*domain.Credential, error) {
	cred, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrInvalidCredentials
	}
	return cred, nil
}

func defaultCredentials() []SeedCredential {
	return []SeedCredential{
		{
			ID:          "1",
			Email:       "mentor@example.com",
			Password:    "password",
			DisplayName: "Doroteia Silva",
			Role:        domain.RoleMentor,
			PhotoURL:    "/lovable-uploads/5cc21906-e3d5-4796-9da4-1ae84e78820d.png",
		},
		{
			ID:          "2",
			Email:       "learner@example.com",
			Password:    "password",
			DisplayName: "João Pereira",
			Role:        domain.RoleLearner,
		},
	}
}
