package ports

import (
	"context"
	"time"
)

// Credentials carries a login attempt for the administrator account.
type Credentials struct {
	Username string
	Password string
}

// Session represents an authenticated administrator session.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// Authenticator is the injected authentication capability for the admin
// surface. The credential store behind it is swappable without touching the
// HTTP adapter or the lifecycle handlers.
type Authenticator interface {
	// Authenticate verifies the supplied credentials and issues a session.
	// Returns an unauthorized error for unknown or mismatched credentials.
	Authenticate(ctx context.Context, credentials Credentials) (Session, error)

	// Verify checks that the token names a live session.
	// Returns an unauthorized error for unknown or expired tokens.
	Verify(ctx context.Context, token string) (Session, error)
}
