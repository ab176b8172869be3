package memory

import (
	"context"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

// MentorRepository serves the static mentor catalog from process memory.
// The catalog is immutable after construction, so reads need no locking.
type MentorRepository struct {
	mentors []*domain.Mentor
	skills  []domain.Skill
	byID    map[string]*domain.Mentor
}

// NewMentorRepository builds the repository over the default catalog.
func NewMentorRepository() *MentorRepository {
	return NewMentorRepositoryWith(defaultMentors(), defaultSkills())
}

// NewMentorRepositoryWith builds the repository over an explicit dataset.
func NewMentorRepositoryWith(mentors []*domain.Mentor, skills []domain.Skill) *MentorRepository {
	byID := make(map[string]*domain.Mentor, len(mentors))
	for _, m := range mentors {
		byID[m.ID] = m
	}
	return &MentorRepository{mentors: mentors, skills: skills, byID: byID}
}

func (r *MentorRepository) List(_ context.Context) ([]*domain.Mentor, error) {
	out := make([]*domain.Mentor, len(r.mentors))
	copy(out, r.mentors)
	return out, nil
}

func (r *MentorRepository) FindByID(_ context.Context, id string) (*domain.Mentor, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrMentorNotFound
	}
	return m, nil
}

func (r *MentorRepository) Skills(_ context.Context) ([]domain.Skill, error) {
	out := make([]domain.Skill, len(r.skills))
	copy(out, r.skills)
	return out, nil
}

func defaultSkills() []domain.Skill {
	return []domain.Skill{
		{ID: "1", Name: "Culinária"},
		{ID: "2", Name: "Costura"},
		{ID: "3", Name: "Jardinagem"},
		{ID: "4", Name: "Marcenaria"},
		{ID: "5", Name: "Artesanato"},
		{ID: "6", Name: "Pintura"},
		{ID: "7", Name: "Crochê"},
		{ID: "8", Name: "Fotografia"},
	}
}

func defaultMentors() []*domain.Mentor {
	costura := domain.Skill{ID: "2", Name: "Costura"}
	culinaria := domain.Skill{ID: "1", Name: "Culinária"}
	jardinagem := domain.Skill{ID: "3", Name: "Jardinagem"}
	marcenaria := domain.Skill{ID: "4", Name: "Marcenaria"}
	artesanato := domain.Skill{ID: "5", Name: "Artesanato"}

	return []*domain.Mentor{
		{
			ID:       "1",
			Name:     "Doroteia Silva",
			PhotoURL: "/lovable-uploads/5cc21906-e3d5-4796-9da4-1ae84e78820d.png",
			Bio:      "Tenho mais de 40 anos de experiência em costura. Adoro ensinar e passar o meu conhecimento adiante.",
			Email:    "mentor@example.com",
			Skills:   []domain.Skill{costura},
			Classes: []domain.MentorClass{
				{
					ID:           "101",
					MentorID:     "1",
					Title:        "Aprenda a fazer bainha",
					Description:  "Nessa aula prática, vou te ensinar a fazer uma bainha a mão, com todos os passos e dicas!",
					PricePerHour: 25,
					Skill:        costura,
				},
				{
					ID:           "102",
					MentorID:     "1",
					Title:        "Customização de roupas",
					Description:  "Aprenda a dar nova vida às suas peças de roupa com técnicas de customização simples e eficazes.",
					PricePerHour: 30,
					Skill:        costura,
				},
			},
			AvailableTimes: []domain.AvailableTime{
				{Day: "Segunda", StartTime: "14:00", EndTime: "17:00"},
				{Day: "Quarta", StartTime: "10:00", EndTime: "12:00"},
				{Day: "Sexta", StartTime: "14:00", EndTime: "18:00"},
			},
			AverageRating: 4.8,
		},
		{
			ID:       "2",
			Name:     "Carlos Mendes",
			PhotoURL: "/lovable-uploads/727dd1b1-7f4b-4b8d-a2be-39ecf1cd0557.png",
			Bio:      "Aposentado após 35 anos como chef de cozinha. Especializado em culinária brasileira tradicional e sustentável.",
			Email:    "carlos@example.com",
			Skills:   []domain.Skill{culinaria},
			Classes: []domain.MentorClass{
				{
					ID:           "201",
					MentorID:     "2",
					Title:        "Pratos típicos brasileiros",
					Description:  "Uma aula completa sobre como preparar os mais famosos pratos da culinária brasileira de forma autêntica.",
					PricePerHour: 40,
					Skill:        culinaria,
				},
			},
			AvailableTimes: []domain.AvailableTime{
				{Day: "Terça", StartTime: "14:00", EndTime: "17:00"},
				{Day: "Quinta", StartTime: "14:00", EndTime: "17:00"},
				{Day: "Sábado", StartTime: "09:00", EndTime: "12:00"},
			},
			AverageRating: 4.9,
		},
		{
			ID:       "3",
			Name:     "Ana Ribeiro",
			PhotoURL: "/lovable-uploads/a81334ac-4bf7-4b85-a4bf-71d85f9dea79.png",
			Bio:      "Jardineira aposentada com mais de 20 anos de experiência em cultivo orgânico e plantas medicinais.",
			Email:    "ana@example.com",
			Skills:   []domain.Skill{jardinagem},
			Classes: []domain.MentorClass{
				{
					ID:           "301",
					MentorID:     "3",
					Title:        "Horta urbana em pequenos espaços",
					Description:  "Aprenda como montar e manter uma horta mesmo em apartamentos ou casas com pouco espaço.",
					PricePerHour: 30,
					Skill:        jardinagem,
				},
			},
			AvailableTimes: []domain.AvailableTime{
				{Day: "Segunda", StartTime: "09:00", EndTime: "11:00"},
				{Day: "Quarta", StartTime: "14:00", EndTime: "16:00"},
				{Day: "Sexta", StartTime: "09:00", EndTime: "11:00"},
			},
			AverageRating: 4.7,
		},
		{
			ID:       "4",
			Name:     "João Pereira",
			PhotoURL: "/lovable-uploads/7bbd333b-8831-4e25-8069-ce6060abc8d3.png",
			Bio:      "Marceneiro aposentado com 40 anos de experiência em móveis feitos à mão e restauração de peças antigas.",
			Email:    "joao@example.com",
			Skills:   []domain.Skill{marcenaria},
			Classes: []domain.MentorClass{
				{
					ID:           "401",
					MentorID:     "4",
					Title:        "Introdução à marcenaria para iniciantes",
					Description:  "Nessa aula você vai aprender as ferramentas básicas e técnicas para começar seus projetos em madeira.",
					PricePerHour: 45,
					Skill:        marcenaria,
				},
			},
			AvailableTimes: []domain.AvailableTime{
				{Day: "Terça", StartTime: "09:00", EndTime: "12:00"},
				{Day: "Quinta", StartTime: "09:00", EndTime: "12:00"},
				{Day: "Sábado", StartTime: "14:00", EndTime: "18:00"},
			},
			AverageRating: 4.9,
		},
		{
			ID:       "5",
			Name:     "Maria Conceição",
			PhotoURL: "/lovable-uploads/61c7962e-7407-494b-8cda-2f606ec0bc48.png",
			Bio:      "Artesã há mais de 30 anos, especializada em trabalhos com argila, cerâmica e materiais reciclados.",
			Email:    "maria@example.com",
			Skills:   []domain.Skill{artesanato},
			Classes: []domain.MentorClass{
				{
					ID:           "501",
					MentorID:     "5",
					Title:        "Artesanato sustentável",
					Description:  "Aprenda a criar peças artesanais bonitas e úteis utilizando materiais reciclados do dia a dia.",
					PricePerHour: 25,
					Skill:        artesanato,
				},
			},
			AvailableTimes: []domain.AvailableTime{
				{Day: "Segunda", StartTime: "14:00", EndTime: "16:00"},
				{Day: "Quarta", StartTime: "14:00", EndTime: "16:00"},
				{Day: "Sexta", StartTime: "14:00", EndTime: "16:00"},
			},
			AverageRating: 4.6,
		},
	}
}
