package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	redisadapter "github.com/rabbitt-ai/quizforge/internal/adapters/redis"
	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/ports"
)

// ErrNoSession is returned when a session ID does not resolve to a live
// session, whether it never existed, was logged out, or its persisted
// record was corrupt and has been discarded.
var ErrNoSession = errors.New("no session")

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Credentials ports.CredentialStore
	Sessions    ports.SessionStore
}

// AuthService is the session manager: it authenticates credentials against
// the credential store, owns the resulting session records, and restores
// them from the session store between requests.
type AuthService struct {
	credentials ports.CredentialStore
	sessions    ports.SessionStore
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	return &AuthService{
		credentials: opts.Credentials,
		sessions:    opts.Sessions,
	}
}

// Login authenticates the given email/secret pair. Inputs are arbitrary
// strings; no pre-validation is performed — malformed values simply fail to
// match. On a match it creates and persists a session (identity fields
// only, secret stripped) and returns it with ok=true. On no match it leaves
// any existing sessions untouched and returns ok=false; wrong credentials
// are an expected outcome, never an error. The error return is reserved
// for session store I/O failures.
func (s *AuthService) Login(ctx context.Context, email, secret string) (*domainauth.Session, bool, error) {
	ident, ok := s.credentials.FindMatch(email, secret)
	if !ok {
		return nil, false, nil
	}

	session := domainauth.SessionFromIdentity(generateSessionID(), ident)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, false, fmt.Errorf("save session: %w", saveErr)
	}
	return &session, true, nil
}

// GetSession restores the session stored under sessionID. This is the
// restore path after a process or page reload: the persisted record itself
// is the trust anchor — the secret is not re-verified, a limitation carried
// over from the source design on purpose. Missing and corrupt records both
// resolve to ErrNoSession (corrupt ones are discarded by the store),
// failing safe to "logged out".
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, ErrNoSession
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, redisadapter.ErrNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return &session, nil
}

// Logout removes a session. Idempotent: logging out a session that does
// not exist is a no-op, not an error.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil // Nothing to logout
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// generateSessionID creates an opaque, URL-safe session identifier.
func generateSessionID() string {
	return uuid.New().String()
}
