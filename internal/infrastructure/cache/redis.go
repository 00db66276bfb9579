package cache

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"dealradar/pkg/logx"
)

// RedisStore is a byte-level TTL cache over redis. Backend errors degrade to
// cache misses so callers never fail on a flaky cache.
type RedisStore struct {
	client *redis.Client
	prefix string
}

func NewRedisStore(client *redis.Client, prefix string) *RedisStore {
	return &RedisStore{client: client, prefix: prefix}
}

func (s *RedisStore) key(key string) string {
	return s.prefix + key
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger(ctx).Warn("redis get failed", logx.Error(err))
		}

		return nil, false
	}

	return val, true
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) {
	if err := s.client.Set(ctx, s.key(key), val, ttl).Err(); err != nil {
		logger(ctx).Warn("redis set failed", logx.Error(err))
	}
}

func (s *RedisStore) Remove(ctx context.Context, key string) {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		logger(ctx).Warn("redis del failed", logx.Error(err))
	}
}
