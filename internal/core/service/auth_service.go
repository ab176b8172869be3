package service

import (
	"context"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/saberviver/mentorship-api/internal/core/domain"
	"github.com/saberviver/mentorship-api/internal/core/ports"
)

// AuthService implements login, register and logout on top of the credential
// table and the session store.
type AuthService struct {
	creds      ports.CredentialRepository
	sessions   ports.SessionStore
	jwtSecret  string
	sessionTTL time.Duration
	logger     zerolog.Logger
}

func NewAuthService(creds ports.CredentialRepository, sessions ports.SessionStore, jwtSecret string, sessionTTL time.Duration, logger zerolog.Logger) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = 24 * time.Hour
	}
	return &AuthService{
		creds:      creds,
		sessions:   sessions,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	cred, err := s.creds.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Password hash is stripped here; the session record only carries identity.
	user := &domain.User{
		ID:          cred.ID,
		DisplayName: cred.DisplayName,
		Email:       cred.Email,
		Role:        cred.Role,
		PhotoURL:    cred.PhotoURL,
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("login succeeded")
	return result, nil
}

func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	// No uniqueness check against existing accounts; registration always
	// succeeds. The identifier is time-based and unique within a session.
	user := &domain.User{
		ID:          strconv.FormatInt(time.Now().UnixNano(), 10),
		DisplayName: input.DisplayName,
		Email:       input.Email,
		Role:        input.Role,
	}

	result, err := s.openSession(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", user.ID).Str("role", user.Role).Msg("user registered")
	return result, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	sid, err := s.sessionID(token)
	if err != nil {
		// Invalid or absent token: nothing to clear.
		return nil
	}
	return s.sessions.Clear(ctx, sid)
}

func (s *AuthService) Resolve(ctx context.Context, token string) (*ports.Session, error) {
	sid, err := s.sessionID(token)
	if err != nil {
		return nil, err
	}
	user, err := s.sessions.Load(ctx, sid)
	if err != nil {
		return nil, err
	}
	return &ports.Session{ID: sid, User: user}, nil
}

// openSession persists the user as the current session record and mints the
// token that references it.
func (s *AuthService) openSession(ctx context.Context, user *domain.User) (*ports.AuthResult, error) {
	sid := uuid.NewString()
	if err := s.sessions.Save(ctx, sid, user); err != nil {
		return nil, err
	}

	token, err := s.signToken(sid, user)
	if err != nil {
		return nil, err
	}
	return &ports.AuthResult{Token: token, User: user}, nil
}

func (s *AuthService) signToken(sid string, user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"sid":  sid,
		"role": user.Role,
		"exp":  time.Now().Add(s.sessionTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// sessionID extracts the session id from a signed token. Any parse or
// signature failure is reported as domain.ErrNoSession.
func (s *AuthService) sessionID(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrNoSession
	}

	sid, _ := claims["sid"].(string)
	if sid == "" {
		return "", domain.ErrNoSession
	}
	return sid, nil
}
