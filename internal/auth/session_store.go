package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"labadmin/internal/cache"
)

const sessionKeyPrefix = "sess:"

// SessionStore persists sessions by id.
type SessionStore interface {
	Save(ctx context.Context, s *Session, ttl time.Duration) error
	// Get returns nil without error when the session does not exist.
	Get(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

// RedisSessionStore keeps sessions as JSON values under "sess:<id>".
type RedisSessionStore struct {
	cache *cache.Client
}

var _ SessionStore = (*RedisSessionStore)(nil)

// NewRedisSessionStore creates a session store over the redis client.
func NewRedisSessionStore(cache *cache.Client) *RedisSessionStore {
	return &RedisSessionStore{cache: cache}
}

// Save writes the session with TTL.
func (s *RedisSessionStore) Save(ctx context.Context, sess *Session, ttl time.Duration) error {
	payload, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}
	if err := s.cache.Set(ctx, sessionKeyPrefix+sess.ID, payload, ttl); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get loads a session.
func (s *RedisSessionStore) Get(ctx context.Context, id string) (*Session, error) {
	data, err := s.cache.Get(ctx, sessionKeyPrefix+id)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("unmarshal session: %w", err)
	}
	sess.ID = id
	return &sess, nil
}

// Delete removes a session.
func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.cache.Delete(ctx, sessionKeyPrefix+id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}
