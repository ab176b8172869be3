package ports

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// MentorFilter carries the query parameters for listing mentors.
type MentorFilter struct {
	// Search is matched case-insensitively as a substring of the mentor name
	// or any owned class title. Empty matches all.
	Search string
	// Skill is matched exactly against one of the mentor's skill names.
	// Empty matches all.
	Skill string
}

// DirectoryService defines read operations over the mentor catalog.
type DirectoryService interface {
	ListMentors(ctx context.Context, filter MentorFilter) ([]*domain.Mentor, error)
	GetMentor(ctx context.Context, id string) (*domain.Mentor, error)

	// GetClass returns the class with classID within the mentor's class list,
	// or domain.ErrClassNotFound. Substituting the first class when no id is
	// given is the caller's policy, not the directory's.
	GetClass(ctx context.Context, mentorID, classID string) (*domain.MentorClass, error)

	ListSkills(ctx context.Context) ([]domain.Skill, error)

	// ClassesByMentorEmail returns the classes owned by the catalog mentor
	// with the given email, or domain.ErrMentorNotFound when the email does
	// not belong to a catalog entry.
	ClassesByMentorEmail(ctx context.Context, email string) ([]domain.MentorClass, error)
}
