package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saberviver/mentorship-api/internal/core/domain"
)

const (
	mentorCollection = "mentors"
	skillCollection  = "skills"
)

// MentorRepository serves the mentor catalog from MongoDB. It satisfies the
// same directory port as the static in-memory catalog, so a real backend can
// replace the mock dataset without touching session or booking logic.
type MentorRepository struct {
	mentors *mongo.Collection
	skills  *mongo.Collection
}

func NewMentorRepository(db *mongo.Database) *MentorRepository {
	return &MentorRepository{
		mentors: db.Collection(mentorCollection),
		skills:  db.Collection(skillCollection),
	}
}

func (r *MentorRepository) List(ctx context.Context) ([]*domain.Mentor, error) {
	// Sorted by _id so every call returns the catalog in the same order.
	cur, err := r.mentors.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list mentors: %w", err)
	}
	defer cur.Close(ctx)

	var mentors []*domain.Mentor
	if err := cur.All(ctx, &mentors); err != nil {
		return nil, fmt.Errorf("decode mentors: %w", err)
	}
	return mentors, nil
}

func (r *MentorRepository) FindByID(ctx context.Context, id string) (*domain.Mentor, error) {
	var mentor domain.Mentor
	if err := r.mentors.FindOne(ctx, bson.M{"_id": id}).Decode(&mentor); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, fmt.Errorf("find mentor: %w", err)
	}
	return &mentor, nil
}

func (r *MentorRepository) Skills(ctx context.Context) ([]domain.Skill, error) {
	cur, err := r.skills.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	defer cur.Close(ctx)

	var skills []domain.Skill
	if err := cur.All(ctx, &skills); err != nil {
		return nil, fmt.Errorf("decode skills: %w", err)
	}
	return skills, nil
}
