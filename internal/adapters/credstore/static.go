package credstore

// Package credstore provides the fixed, in-memory credential table. The
// table is seeded once at process start and is the only source of identities
// (and therefore of roles) in the system.

import (
	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
)

// Entry pairs an identity with its login secret for seeding the store.
type Entry struct {
	Identity domainauth.Identity
	Secret   string
}

// Static is an immutable credential table.
type Static struct {
	entries []Entry
}

// New constructs a static credential store from the given entries.
// The slice is copied; callers cannot mutate the table afterwards.
func New(entries []Entry) *Static {
	return &Static{entries: append([]Entry(nil), entries...)}
}

// Defaults returns the built-in demo accounts.
func Defaults() []Entry {
	return []Entry{
		{
			Identity: domainauth.Identity{
				ID:          "1",
				Email:       "admin@example.com",
				DisplayName: "Admin User",
				Role:        domainauth.RoleAdmin,
			},
			Secret: "admin123",
		},
		{
			Identity: domainauth.Identity{
				ID:          "2",
				Email:       "user@example.com",
				DisplayName: "Regular User",
				Role:        domainauth.RoleUser,
			},
			Secret: "user123",
		},
	}
}

// FindMatch returns the identity whose email and secret both match exactly.
// Matching is case-sensitive on both fields. Absence of a match is an
// expected outcome, not a failure.
func (s *Static) FindMatch(email, secret string) (domainauth.Identity, bool) {
	for _, e := range s.entries {
		if e.Identity.Email == email && e.Secret == secret {
			return e.Identity, true
		}
	}
	return domainauth.Identity{}, false
}
