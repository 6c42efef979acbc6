package store

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisEngine stores values as plain Redis strings under prefix+key. Entries
// never expire.
type RedisEngine struct {
	client *redis.Client
	prefix string
}

// NewRedisEngine wraps client. prefix isolates several stores sharing one
// Redis database.
func NewRedisEngine(client *redis.Client, prefix string) *RedisEngine {
	return &RedisEngine{client: client, prefix: prefix}
}

func (e *RedisEngine) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := e.client.Get(ctx, e.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return v, true, nil
}

func (e *RedisEngine) Set(ctx context.Context, key string, value []byte) error {
	return e.client.Set(ctx, e.prefix+key, value, 0).Err()
}

func (e *RedisEngine) Delete(ctx context.Context, key string) error {
	return e.client.Del(ctx, e.prefix+key).Err()
}
