// Package session provides the server-side session records behind the
// opaque session cookie. A session carries a single admin flag; only a
// successful login creates an admin session and only logout (or expiry)
// removes it.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Session struct {
	Token     string    `json:"token"`
	Admin     bool      `json:"admin"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions keyed by their opaque token.
type Store interface {
	// Create issues a new session with a fresh token.
	Create(ctx context.Context, admin bool) (*Session, error)
	// Get returns the session for the token, or found=false if the token
	// is unknown or expired.
	Get(ctx context.Context, token string) (sess *Session, found bool, err error)
	// Delete removes the session; deleting an unknown token is not an error.
	Delete(ctx context.Context, token string) error
}

func newToken() string {
	return uuid.NewString()
}
