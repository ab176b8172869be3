package service

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/saberviver/mentorship-api/internal/core/domain"
	"github.com/saberviver/mentorship-api/internal/core/ports"
)

// DirectoryService implements read operations over the mentor catalog.
type DirectoryService struct {
	mentors ports.MentorRepository
	logger  zerolog.Logger
}

func NewDirectoryService(mentors ports.MentorRepository, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{mentors: mentors, logger: logger}
}

func (s *DirectoryService) ListMentors(ctx context.Context, filter ports.MentorFilter) ([]*domain.Mentor, error) {
	all, err := s.mentors.List(ctx)
	if err != nil {
		return nil, err
	}
	return filterMentors(all, filter), nil
}

func (s *DirectoryService) GetMentor(ctx context.Context, id string) (*domain.Mentor, error) {
	return s.mentors.FindByID(ctx, id)
}

func (s *DirectoryService) GetClass(ctx context.Context, mentorID, classID string) (*domain.MentorClass, error) {
	mentor, err := s.mentors.FindByID(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	class := mentor.ClassByID(classID)
	if class == nil {
		return nil, domain.ErrClassNotFound
	}
	return class, nil
}

func (s *DirectoryService) ListSkills(ctx context.Context) ([]domain.Skill, error) {
	return s.mentors.Skills(ctx)
}

func (s *DirectoryService) ClassesByMentorEmail(ctx context.Context, email string) ([]domain.MentorClass, error) {
	all, err := s.mentors.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, m := range all {
		if strings.EqualFold(m.Email, email) {
			return m.Classes, nil
		}
	}
	return nil, domain.ErrMentorNotFound
}

// filterMentors is a pure function over the full list: search matches
// case-insensitively on the mentor name or any owned class title, skill
// matches exactly against owned skill names, and empty filters match all.
// Catalog order is preserved.
func filterMentors(mentors []*domain.Mentor, filter ports.MentorFilter) []*domain.Mentor {
	search := strings.ToLower(filter.Search)

	out := make([]*domain.Mentor, 0, len(mentors))
	for _, m := range mentors {
		if !m.HasSkill(filter.Skill) {
			continue
		}
		if search != "" && !matchesSearch(m, search) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func matchesSearch(m *domain.Mentor, search string) bool {
	if strings.Contains(strings.ToLower(m.Name), search) {
		return true
	}
	for _, c := range m.Classes {
		if strings.Contains(strings.ToLower(c.Title), search) {
			return true
		}
	}
	return false
}
