package tokenstore

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrTokenNotFound indicates no token is stored for the credential.
var ErrTokenNotFound = errors.New("token not found")

// DefaultTTL is how long a stored token is kept. TVDB bearer tokens are
// valid for 24 hours server-side; the store expires slightly earlier so
// a fresh process never picks up a token about to lapse.
const DefaultTTL = 23 * time.Hour

// Store keeps the bearer token in Redis so that multiple processes using
// the same API key share one credential exchange. Each client still
// memoizes the token locally; the store is only consulted inside that
// single per-client exchange.
type Store struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewStore creates a token store with the default TTL.
func NewStore(redisClient *redis.Client) *Store {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &Store{
		redis: redisClient,
		ttl:   DefaultTTL,
	}
}

// NewStoreWithTTL creates a token store with a custom TTL.
func NewStoreWithTTL(redisClient *redis.Client, ttl time.Duration) *Store {
	store := NewStore(redisClient)
	store.ttl = ttl
	return store
}

// Get returns the stored token for an API key.
// Returns ErrTokenNotFound if no token is stored or it has expired.
func (s *Store) Get(ctx context.Context, apiKey string) (string, error) {
	token, err := s.redis.Get(ctx, storeKey(apiKey)).Result()
	if err != nil {
		if err == redis.Nil {
			TokenMisses.Inc()
			return "", ErrTokenNotFound
		}
		TokenErrors.WithLabelValues("get").Inc()
		return "", fmt.Errorf("redis get: %w", err)
	}

	TokenHits.Inc()
	return token, nil
}

// Set stores a token for an API key with the store's TTL.
func (s *Store) Set(ctx context.Context, apiKey, token string) error {
	if token == "" {
		return fmt.Errorf("token cannot be empty")
	}

	if err := s.redis.Set(ctx, storeKey(apiKey), token, s.ttl).Err(); err != nil {
		TokenErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes the stored token for an API key.
func (s *Store) Delete(ctx context.Context, apiKey string) error {
	if err := s.redis.Del(ctx, storeKey(apiKey)).Err(); err != nil {
		TokenErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

// storeKey derives the Redis key from the API key. The credential is
// hashed so it never appears verbatim in Redis.
func storeKey(apiKey string) string {
	digest := sha256.Sum256([]byte(apiKey))
	return "tvdb:token:" + hex.EncodeToString(digest[:8])
}
