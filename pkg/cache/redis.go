package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bilemo/api/config"
)

const (
	keyPrefix = "cache:"
	tagPrefix = "cache:tag:"
)

// RedisStore is the Redis-backed driver.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore initialises the Redis client and verifies the connection
// with a ping.
func NewRedisStore() (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr(),
		Password: config.RedisPassword(),
		DB:       0,
	})

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := s.rdb.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false
	}

	return true
}

func (s *RedisStore) Set(ctx context.Context, key string, value interface{}, ttl time.Duration, tags ...string) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}

	pipe := s.rdb.TxPipeline()
	pipe.Set(ctx, keyPrefix+key, data, ttl)
	for _, tag := range tags {
		pipe.SAdd(ctx, tagPrefix+tag, keyPrefix+key)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) InvalidateTags(ctx context.Context, tags ...string) error {
	for _, tag := range tags {
		keys, err := s.rdb.SMembers(ctx, tagPrefix+tag).Result()
		if err != nil {
			return fmt.Errorf("cache: members of tag %s: %w", tag, err)
		}
		if len(keys) > 0 {
			if err := s.rdb.Del(ctx, keys...).Err(); err != nil {
				return fmt.Errorf("cache: delete keys of tag %s: %w", tag, err)
			}
		}
		if err := s.rdb.Del(ctx, tagPrefix+tag).Err(); err != nil {
			return fmt.Errorf("cache: delete tag %s: %w", tag, err)
		}
	}
	return nil
}

// Close releases the underlying client.
func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
