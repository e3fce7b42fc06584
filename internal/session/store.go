// Package session persists per-visitor state keyed by the sid cookie.
// The only value stored today is the serialized shopping cart.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrUnavailable is returned when the backing store cannot be reached.
var ErrUnavailable = errors.New("session store unavailable")

// Store reads and writes session values. Implementations must treat a
// missing key as (found=false, nil error).
type Store interface {
	Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error)
	Set(ctx context.Context, sessionID, key string, value interface{}) error
	Del(ctx context.Context, sessionID, key string) error
}

// RedisStore keeps session values in Redis with a sliding TTL. Each
// read and write refreshes the expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisStore builds a Redis-backed store.
func NewRedisStore(client *redis.Client, prefix string, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * 24 * time.Hour
	}
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		prefix = "kb"
	}
	return &RedisStore{client: client, prefix: prefix, ttl: ttl}
}

func (s *RedisStore) buildKey(sessionID, key string) string {
	return fmt.Sprintf("%s:session:%s:%s", s.prefix, sessionID, key)
}

// Get reads a JSON value from the session.
func (s *RedisStore) Get(ctx context.Context, sessionID, key string, dest interface{}) (bool, error) {
	if s.client == nil {
		return false, ErrUnavailable
	}
	redisKey := s.buildKey(sessionID, key)
	val, err := s.client.Get(ctx, redisKey).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("decode session value failed: %w", err)
	}
	// Sliding expiry. A failed refresh is not fatal for the read.
	s.client.Expire(ctx, redisKey, s.ttl)
	return true, nil
}

// Set writes a JSON value with the store TTL.
func (s *RedisStore) Set(ctx context.Context, sessionID, key string, value interface{}) error {
	if s.client == nil {
		return ErrUnavailable
	}
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode session value failed: %w", err)
	}
	if err := s.client.Set(ctx, s.buildKey(sessionID, key), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Del removes a session value. Deleting a missing key is a no-op.
func (s *RedisStore) Del(ctx context.Context, sessionID, key string) error {
	if s.client == nil {
		return ErrUnavailable
	}
	if err := s.client.Del(ctx, s.buildKey(sessionID, key)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}
