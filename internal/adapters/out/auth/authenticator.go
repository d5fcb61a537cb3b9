// Package auth implements the Authenticator port with a single fixed
// admin credential and in-memory session tokens. Sessions are random UUIDs
// with a sliding-window-free absolute expiry; restarting the process logs
// everyone out, which is acceptable for a one-operator shop.
package auth

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/Tilak2001/Anandicecream/internal/core/ports"
	"github.com/Tilak2001/Anandicecream/internal/pkg/errs"

	"github.com/google/uuid"
)

// Config holds the admin credential and session settings.
type Config struct {
	Username   string
	Password   string
	SessionTTL time.Duration
}

// FixedCredentialAuthenticator checks logins against one configured
// credential and tracks issued sessions in memory.
type FixedCredentialAuthenticator struct {
	cfg Config
	now func() time.Time

	mu       sync.Mutex
	sessions map[string]time.Time
}

// NewFixedCredentialAuthenticator creates an authenticator.
// A zero SessionTTL defaults to 12 hours.
func NewFixedCredentialAuthenticator(cfg Config) *FixedCredentialAuthenticator {
	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = 12 * time.Hour
	}
	return &FixedCredentialAuthenticator{
		cfg:      cfg,
		now:      time.Now,
		sessions: make(map[string]time.Time),
	}
}

// Authenticate validates the credential and issues a session token.
// Returns an unauthorized error on any mismatch; the error does not reveal
// which part of the credential was wrong.
func (a *FixedCredentialAuthenticator) Authenticate(
	_ context.Context,
	credentials ports.Credentials,
) (ports.Session, error) {
	userOK := subtle.ConstantTimeCompare(
		[]byte(credentials.Username), []byte(a.cfg.Username)) == 1
	passOK := subtle.ConstantTimeCompare(
		[]byte(credentials.Password), []byte(a.cfg.Password)) == 1
	if !userOK || !passOK {
		return ports.Session{}, errs.NewUnauthorizedError("credentials")
	}

	token := uuid.NewString()
	expiresAt := a.now().Add(a.cfg.SessionTTL)

	a.mu.Lock()
	a.sessions[token] = expiresAt
	a.mu.Unlock()

	return ports.Session{Token: token, ExpiresAt: expiresAt}, nil
}

// Verify checks that a token belongs to a live session.
// Expired sessions are removed on sight.
func (a *FixedCredentialAuthenticator) Verify(
	_ context.Context,
	token string,
) (ports.Session, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	expiresAt, ok := a.sessions[token]
	if !ok {
		return ports.Session{}, errs.NewUnauthorizedError("session")
	}
	if a.now().After(expiresAt) {
		delete(a.sessions, token)
		return ports.Session{}, errs.NewUnauthorizedError("session")
	}

	return ports.Session{Token: token, ExpiresAt: expiresAt}, nil
}
