package kv

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient is the subset of *redis.Client the store needs.
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// DefaultRedisPrefix is prepended to every key written by the redis store.
const DefaultRedisPrefix = "storefront:"

type redisRepo struct {
	client    RedisClient
	keyPrefix string
}

// NewRedis returns a Repository storing keys as <prefix><namespace>:<key>
// without expiry.
func NewRedis(client RedisClient, prefix, namespace string) Repository {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &redisRepo{client: client, keyPrefix: prefix + namespace + ":"}
}

func (r *redisRepo) key(k string) string {
	return r.keyPrefix + k
}

func (r *redisRepo) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (r *redisRepo) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, r.key(key), value, 0).Err()
}

func (r *redisRepo) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, r.key(key)).Err()
}
