package redis

// Package redis provides Redis-based adapters for the quizforge system.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	domainauth "github.com/rabbitt-ai/quizforge/internal/domain/auth"
)

// SessionKeyPrefix is the fixed key namespace for persisted session records.
const SessionKeyPrefix = "session:"

// SessionStore is a Redis-based session store for production use.
// Records are stored without a TTL: a session lives until an explicit
// logout, matching the application's persistence semantics. The persisted
// value carries identity fields only, never a secret.
type SessionStore struct {
	client redis.UniversalClient
	prefix string
}

// NewSessionStore creates a new Redis-based session store.
func NewSessionStore(client redis.UniversalClient) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: SessionKeyPrefix,
	}
}

// NewSessionStoreWithPrefix creates a Redis session store with a custom key prefix.
func NewSessionStoreWithPrefix(client redis.UniversalClient, prefix string) *SessionStore {
	return &SessionStore{
		client: client,
		prefix: prefix,
	}
}

func (s *SessionStore) Save(ctx context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	key := s.prefix + sess.ID
	return s.client.Set(ctx, key, data, 0).Err()
}

// Get returns the session stored under id. A record that is missing,
// unparsable, or missing required identity fields resolves to ErrNotFound;
// corrupt records are discarded on the way out so they can never be
// restored as a live session.
func (s *SessionStore) Get(ctx context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ErrNotFound
	}

	key := s.prefix + id
	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domainauth.Session{}, ErrNotFound
		}
		return domainauth.Session{}, fmt.Errorf("redis get: %w", err)
	}

	var sess domainauth.Session
	if unmarshalErr := json.Unmarshal([]byte(data), &sess); unmarshalErr != nil {
		return domainauth.Session{}, s.discardCorrupt(ctx, id)
	}
	if sess.UserID == "" || sess.Email == "" || !sess.Role.Valid() {
		return domainauth.Session{}, s.discardCorrupt(ctx, id)
	}

	sess.ID = id
	return sess, nil
}

// discardCorrupt removes an unparsable record and reports the session as
// absent. Failing safe to "logged out" here is deliberate: a broken record
// must never fail open to "logged in as unknown".
func (s *SessionStore) discardCorrupt(ctx context.Context, id string) error {
	if deleteErr := s.Delete(ctx, id); deleteErr != nil {
		return fmt.Errorf("discard corrupt session: %w", deleteErr)
	}
	return ErrNotFound
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return nil // Nothing to delete
	}

	key := s.prefix + id
	return s.client.Del(ctx, key).Err()
}

// ErrNotFound is returned when a session is not found.
type notFoundError struct{}

func (notFoundError) Error() string { return "session not found" }

var ErrNotFound error = notFoundError{}
