package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisRepository struct {
	rdb *redis.Client
}

func NewRedisRepository(rdb *redis.Client) *RedisRepository {
	return &RedisRepository{rdb: rdb}
}

func (r *RedisRepository) StoreSession(ctx context.Context, jti string, userId string) error {
	key := "session:" + jti
	ttl := 30 * 24 * time.Hour
	return r.rdb.Set(ctx, key, userId, ttl).Err()
}

func (r *RedisRepository) IsBlacklisted(ctx context.Context, jti string) (bool, error) {
	key := "blacklist:" + jti
	exists, err := r.rdb.Exists(ctx, key).Result()
	return exists == 1, err
}

func (r *RedisRepository) Blacklist(ctx context.Context, jti string) error {
	key := "blacklist:" + jti
	ttl := 30 * 24 * time.Hour
	return r.rdb.Set(ctx, key, "true", ttl).Err()
}

func (r *RedisRepository) DeleteSession(ctx context.Context, jti string) error {
	key := "session:" + jti
	return r.rdb.Del(ctx, key).Err()
}

// CacheSet stores a rendered payload (schema diagram, verification report)
// under a TTL. Cached values are plain strings; callers marshal.
func (r *RedisRepository) CacheSet(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.rdb.Set(ctx, "cache:"+key, value, ttl).Err()
}

// CacheGet returns the cached payload, or "" with no error on a miss.
func (r *RedisRepository) CacheGet(ctx context.Context, key string) (string, error) {
	value, err := r.rdb.Get(ctx, "cache:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return value, err
}

func (r *RedisRepository) CacheDelete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, "cache:"+key).Err()
}
