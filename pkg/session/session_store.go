package session

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

type (
	// Store keeps server-side state for issued tokens so they can be revoked
	// before they expire.
	Store interface {
		Save(ctx context.Context, tokenID string, userID string, ttl time.Duration) error
		Exists(ctx context.Context, tokenID string) (bool, error)
		Revoke(ctx context.Context, tokenID string) error
	}

	redisStore struct {
		rdb *redis.Client
	}
)

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{
		rdb: rdb,
	}
}

func (s *redisStore) Save(ctx context.Context, tokenID string, userID string, ttl time.Duration) error {
	return s.rdb.Set(ctx, keyPrefix+tokenID, userID, ttl).Err()
}

func (s *redisStore) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyPrefix+tokenID).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisStore) Revoke(ctx context.Context, tokenID string) error {
	return s.rdb.Del(ctx, keyPrefix+tokenID).Err()
}
