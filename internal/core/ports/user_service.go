package ports

import (
	"context"

	"github.com/novafin/finance-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UserService owns the registered-user directory and the single active
// session pointer.
type UserService interface {
	// Register creates a new user. Fails with domain.ErrDuplicateEmail when the
	// email (case-sensitive) is already taken.
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials, persists the password-stripped session and
	// returns a signed bearer token alongside it.
	Login(ctx context.Context, email, password string) (string, *domain.Session, error)
	// CurrentSession returns the active session, or nil when anonymous or when
	// the backing blob is missing or malformed.
	CurrentSession(ctx context.Context) (*domain.Session, error)
	// Logout clears the active session unconditionally. Idempotent.
	Logout(ctx context.Context) error
}
