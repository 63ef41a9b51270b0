package revocation

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked_jti:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Redis-backed denylist. Entries expire with the
// token they shadow, so the set never grows past the live token horizon.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Revoke(ctx context.Context, jti string, ttl time.Duration) error {
	if ttl <= 0 {
		// Already past natural expiry; decode would reject it anyway.
		return nil
	}
	return s.client.Set(ctx, keyPrefix+jti, "1", ttl).Err()
}

func (s *redisStore) IsRevoked(ctx context.Context, jti string) (bool, error) {
	n, err := s.client.Exists(ctx, keyPrefix+jti).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
