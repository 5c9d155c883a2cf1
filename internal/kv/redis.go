package kv

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// RedisStore keeps session keys in redis, for deployments where the backend
// is restarted but sessions should survive. Selected via REDIS_ADDR.
type RedisStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisStore(addr, prefix string) *RedisStore {
	return &RedisStore{
		Client: redis.NewClient(&redis.Options{Addr: addr}),
		Prefix: prefix,
	}
}

func (r *RedisStore) key(k string) string {
	return r.Prefix + k
}

func (r *RedisStore) Get(key string) (string, error) {
	val, err := r.Client.Get(context.Background(), r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisStore) Set(key, value string) error {
	return r.Client.Set(context.Background(), r.key(key), value, 0).Err()
}

func (r *RedisStore) Remove(key string) error {
	return r.Client.Del(context.Background(), r.key(key)).Err()
}
