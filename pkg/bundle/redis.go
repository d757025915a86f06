package bundle

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// defaultRedisPrefix namespaces translation keys in shared Redis instances.
const defaultRedisPrefix = "g11n"

// RedisLoader reads bundles stored as JSON documents in Redis, one document
// per (locale, namespace) pair under the key <prefix>:<locale>:<namespace>.
// A missing key is a plain miss and yields an empty bundle.
type RedisLoader struct {
	client redis.UniversalClient
	prefix string
}

// RedisOption configures a RedisLoader.
type RedisOption func(*RedisLoader)

// WithRedisPrefix replaces the default "g11n" key prefix.
func WithRedisPrefix(prefix string) RedisOption {
	return func(l *RedisLoader) {
		if prefix != "" {
			l.prefix = prefix
		}
	}
}

// NewRedis creates a loader reading bundle documents through the client.
func NewRedis(client redis.UniversalClient, opts ...RedisOption) (*RedisLoader, error) {
	if client == nil {
		return nil, fmt.Errorf("%w: redis client is required", ErrInvalidConfig)
	}

	l := &RedisLoader{
		client: client,
		prefix: defaultRedisPrefix,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Load fetches and decodes the bundle document for (locale, namespace).
func (l *RedisLoader) Load(ctx context.Context, locale, namespace string) (map[string]any, error) {
	key := l.prefix + ":" + locale + ":" + namespace

	data, err := l.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("%w: redis key %q: %w", ErrLoadFailed, key, err)
	}

	return decodeTree(key+".json", data)
}
