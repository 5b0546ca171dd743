package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"

	redisadapter "github.com/rabbitt-ai/quizforge/internal/adapters/redis"
	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
	"github.com/rabbitt-ai/quizforge/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.CredentialStore = (*StaticCredentials)(nil)
	_ ports.SessionStore    = (*MemorySessionStore)(nil)
)

// ErrNotFound mirrors the production store's sentinel so the service layer
// sees identical behavior from both implementations.
var ErrNotFound = redisadapter.ErrNotFound

// StaticCredentials is a fixed credential table for tests.
type StaticCredentials struct {
	Entries map[string]domainauth.Identity // keyed by "email\x00secret"
}

// NewStaticCredentials builds a credential double seeded with the two demo
// accounts used across the test suite.
func NewStaticCredentials() *StaticCredentials {
	c := &StaticCredentials{Entries: make(map[string]domainauth.Identity)}
	c.Add(domainauth.Identity{ID: "1", Email: "admin@example.com", DisplayName: "Admin User", Role: domainauth.RoleAdmin}, "admin123")
	c.Add(domainauth.Identity{ID: "2", Email: "user@example.com", DisplayName: "Regular User", Role: domainauth.RoleUser}, "user123")
	return c
}

// Add registers an identity under the given secret.
func (c *StaticCredentials) Add(ident domainauth.Identity, secret string) {
	c.Entries[ident.Email+"\x00"+secret] = ident
}

func (c *StaticCredentials) FindMatch(email, secret string) (domainauth.Identity, bool) {
	ident, ok := c.Entries[email+"\x00"+secret]
	return ident, ok
}

// MemorySessionStore is an in-memory session store for unit tests. It
// applies the same corrupt-record policy as the production store via
// Corrupt, which lets tests plant unparsable records.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session
	corrupt  map[string]bool

	// Optional error hooks for exercising store failures.
	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
		corrupt:  make(map[string]bool),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if m.GetErr != nil {
		return domainauth.Session{}, m.GetErr
	}
	if m.corrupt[id] {
		// Corrupt records are discarded and reported absent.
		delete(m.corrupt, id)
		delete(m.sessions, id)
		return domainauth.Session{}, ErrNotFound
	}
	sess, ok := m.sessions[id]
	if !ok {
		return domainauth.Session{}, ErrNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.sessions, id)
	delete(m.corrupt, id)
	return nil
}

// Corrupt marks the record under id as unparsable, simulating a damaged
// persisted value.
func (m *MemorySessionStore) Corrupt(id string) {
	m.corrupt[id] = true
}

// Len reports how many live session records the store holds.
func (m *MemorySessionStore) Len() int { return len(m.sessions) }
