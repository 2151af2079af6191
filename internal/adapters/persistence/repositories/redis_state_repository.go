package repositories

import (
	"context"
	"errors"
	"time"

	"hrdesk/internal/core/domain"

	"github.com/redis/go-redis/v9"
)

// redisStateRepository keeps workspace state in Redis with a sliding TTL
type redisStateRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStateRepository creates a Redis-backed state repository.
// A zero ttl keeps entries until they are deleted.
func NewRedisStateRepository(client *redis.Client, ttl time.Duration) StateRepository {
	return &redisStateRepository{client: client, ttl: ttl}
}

// Load returns the blob stored under key
func (r *redisStateRepository) Load(ctx context.Context, key string) ([]byte, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// Save writes the blob and refreshes its TTL
func (r *redisStateRepository) Save(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, key, data, r.ttl).Err()
}

// Delete removes the blob under key
func (r *redisStateRepository) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}
