package domain

import (
	"errors"
	"time"
)

var ErrDuplicateEmail = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthenticated = errors.New("no active session")

// User models a registered account. Password holds the bcrypt hash and is
// persisted inside the users blob but never rendered in API responses.
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session is the password-stripped copy of a User stored as the single active
// session. At most one session exists at a time; its absence means anonymous.
type Session struct {
	ID        string    `json:"id"`
	Name      string    `json:"nombre"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Session returns the sanitized copy of the user suitable for persisting as
// the active session and for returning to clients.
func (u User) Session() Session {
	return Session{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
