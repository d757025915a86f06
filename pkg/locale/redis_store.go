package locale

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// defaultStoreKey holds the locale choice when no key is configured.
const defaultStoreKey = "g11n:locale"

// RedisStore persists the locale choice in Redis, sharing it across
// processes. Redis failures are swallowed per the Store contract.
type RedisStore struct {
	client redis.UniversalClient
	key    string
	ttl    time.Duration
}

// NewRedisStore creates a store writing to key with the given TTL. An
// empty key uses "g11n:locale"; a zero or negative TTL stores without
// expiration. For per-user persistence, derive the key from the user ID.
func NewRedisStore(client redis.UniversalClient, key string, ttl time.Duration) *RedisStore {
	if key == "" {
		key = defaultStoreKey
	}
	return &RedisStore{client: client, key: key, ttl: ttl}
}

// Get reads the stored locale. A missing key or any Redis failure is a
// miss.
func (s *RedisStore) Get(ctx context.Context) (string, bool) {
	value, err := s.client.Get(ctx, s.key).Result()
	if err != nil || value == "" {
		return "", false
	}
	return value, true
}

// Set writes the locale, reporting false on any Redis failure.
func (s *RedisStore) Set(ctx context.Context, locale string) bool {
	ttl := s.ttl
	if ttl < 0 {
		ttl = 0
	}
	return s.client.Set(ctx, s.key, locale, ttl).Err() == nil
}
