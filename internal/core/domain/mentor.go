package domain

// Skill is static reference data, immutable for the process lifetime.
type Skill struct {
	ID   string `json:"id" bson:"id"`
	Name string `json:"name" bson:"name"`
}

// AvailableTime is a weekly availability slot. Times are wall-clock strings;
// no overlap validation is performed.
type AvailableTime struct {
	Day       string `json:"day" bson:"day"`
	StartTime string `json:"start_time" bson:"start_time"`
	EndTime   string `json:"end_time" bson:"end_time"`
}

// MentorClass is a bookable lesson offered by a mentor. MentorID always
// references an existing Mentor in the catalog.
type MentorClass struct {
	ID           string  `json:"id" bson:"id"`
	MentorID     string  `json:"mentor_id" bson:"mentor_id"`
	Title        string  `json:"title" bson:"title"`
	Description  string  `json:"description" bson:"description"`
	PricePerHour float64 `json:"price_per_hour" bson:"price_per_hour"`
	Skill        Skill   `json:"skill" bson:"skill"`
}

// Mentor is an immutable catalog entry.
type Mentor struct {
	ID             string          `json:"id" bson:"_id"`
	Name           string          `json:"name" bson:"name"`
	PhotoURL       string          `json:"photo_url" bson:"photo_url"`
	Bio            string          `json:"bio" bson:"bio"`
	Email          string          `json:"email" bson:"email"`
	Skills         []Skill         `json:"skills" bson:"skills"`
	Classes        []MentorClass   `json:"classes" bson:"classes"`
	AvailableTimes []AvailableTime `json:"available_times" bson:"available_times"`
	AverageRating  float64         `json:"average_rating" bson:"average_rating"`
}

// HasSkill reports whether the mentor offers a skill with the given name.
// Matching is exact; an empty name matches every mentor.
func (m *Mentor) HasSkill(name string) bool {
	if name == "" {
		return true
	}
	for _, s := range m.Skills {
		if s.Name == name {
			return true
		}
	}
	return false
}

// ClassByID returns the class with the given id, or nil when absent.
func (m *Mentor) ClassByID(classID string) *MentorClass {
	for i := range m.Classes {
		if m.Classes[i].ID == classID {
			return &m.Classes[i]
		}
	}
	return nil
}
