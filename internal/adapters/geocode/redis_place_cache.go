package geocode

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const placeKeyPrefix = "place:"

// Redis backed place-label cache, for deployments that already run Redis
// and want cache entries shared across instances. Entries expire so stale
// labels age out.
type RedisPlaceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisPlaceCache(client *redis.Client) *RedisPlaceCache {
	return &RedisPlaceCache{
		Client: client,
		TTL:    24 * time.Hour,
	}
}

func (r *RedisPlaceCache) Get(ctx context.Context, key string) (string, bool, error) {
	if r.Client == nil {
		return "", false, errors.New("place cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, nil
	}

	label, err := r.Client.Get(ctx, placeKeyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get place cache key=%q: %w", key, err)
	}

	return label, true, nil
}

func (r *RedisPlaceCache) Put(ctx context.Context, key, label string) error {
	if r.Client == nil {
		return errors.New("place cache: redis client is nil")
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("put place cache: empty key")
	}

	if err := r.Client.Set(ctx, placeKeyPrefix+key, label, r.TTL).Err(); err != nil {
		return fmt.Errorf("put place cache key=%q: %w", key, err)
	}

	return nil
}
