package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/novafin/finance-system/internal/core/domain"
	"github.com/novafin/finance-system/internal/core/ports"
)

// UserService implements registration, login and the active-session pointer.
type UserService struct {
	store     ports.BlobStore
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

func NewUserService(store ports.BlobStore, jwtSecret string, tokenTTL time.Duration, log zerolog.Logger) *UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &UserService{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL, log: log}
}

// Register appends a new user to the directory. Email equality is
// case-sensitive, matching how emails are stored.
func (s *UserService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	var users []domain.User
	if _, err := loadJSON(ctx, s.store, ports.KeyUsers, &users); err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email == input.Email {
			return nil, domain.ErrDuplicateEmail
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:        newID(),
		Name:      input.Name,
		Email:     input.Email,
		Password:  string(hash),
		CreatedAt: time.Now().UTC(),
	}

	users = append(users, user)
	if err := saveJSON(ctx, s.store, ports.KeyUsers, users); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return &user, nil
}

// Login verifies email and password, persists the password-stripped session
// at current_user and returns a signed token alongside it.
func (s *UserService) Login(ctx context.Context, email, password string) (string, *domain.Session, error) {
	var users []domain.User
	if _, err := loadJSON(ctx, s.store, ports.KeyUsers, &users); err != nil {
		return "", nil, err
	}

	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
			break
		}

		session := u.Session()
		if err := saveJSON(ctx, s.store, ports.KeyCurrentUser, session); err != nil {
			return "", nil, err
		}

		token, err := s.generateToken(session)
		if err != nil {
			return "", nil, err
		}

		s.log.Info().Str("user_id", session.ID).Msg("session started")
		return token, &session, nil
	}

	return "", nil, domain.ErrInvalidCredentials
}

// CurrentSession reads the active session. A missing or malformed blob means
// anonymous, not an error.
func (s *UserService) CurrentSession(ctx context.Context) (*domain.Session, error) {
	raw, ok, err := s.store.Get(ctx, ports.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var session domain.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil || session.ID == "" {
		s.log.Warn().Msg("malformed session blob, treating as anonymous")
		return nil, nil
	}
	return &session, nil
}

// Logout clears the session pointer. Removing an absent key is a no-op.
func (s *UserService) Logout(ctx context.Context) error {
	return s.store.Remove(ctx, ports.KeyCurrentUser)
}

func (s *UserService) generateToken(session domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"sub":   session.ID,
		"email": session.Email,
		"exp":   time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}
