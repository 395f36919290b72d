package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// IdempotencyStore remembers which order a client-supplied key produced so a
// retried request never reserves stock twice.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, orderID string) error
}

// RedisIdempotencyStore keeps keys in Redis with a TTL.
type RedisIdempotencyStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisIdempotencyStore creates a new RedisIdempotencyStore.
func NewRedisIdempotencyStore(client *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{client: client, ttl: ttl}
}

func (s *RedisIdempotencyStore) getKey(key string) string {
	return "idem:order:" + key
}

// Get returns the order id stored for key, or "" when the key is unseen.
func (s *RedisIdempotencyStore) Get(ctx context.Context, key string) (string, error) {
	val, err := s.client.Get(ctx, s.getKey(key)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (s *RedisIdempotencyStore) Set(ctx context.Context, key, orderID string) error {
	return s.client.Set(ctx, s.getKey(key), orderID, s.ttl).Err()
}
