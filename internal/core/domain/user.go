package domain

const (
	RoleMentor  = "mentor"
	RoleLearner = "learner"
)

// User models the currently authenticated actor. It is created by login or
// register, held for the lifetime of the session and destroyed on logout.
type User struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Role        string `json:"role,omitempty"`
	PhotoURL    string `json:"photo_url,omitempty"`
}

// Credential is one entry of the mock credential table consulted by login.
// Passwords are stored as bcrypt hashes and never leave the repository.
type Credential struct {
	ID           string
	Email        string
	PasswordHash string
	DisplayName  string
	Role         string
	PhotoURL     string
}
