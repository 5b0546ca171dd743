package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"

	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
)

// CredentialStore holds the closed set of valid identities and their secrets.
// FindMatch performs a case-sensitive exact match on both fields; a missing
// match is an expected outcome reported via the boolean, never an error.
type CredentialStore interface {
	FindMatch(email, secret string) (domainauth.Identity, bool)
}

// SessionStore persists and retrieves user sessions.
// Get must treat an unparsable persisted record as absent (discarding it),
// so a corrupt store can never resurface as a live session.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
