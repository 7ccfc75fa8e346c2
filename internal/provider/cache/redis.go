package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-redis/redis"
	"go.uber.org/zap"

	"quotegateway/internal/market"
)

// keyPrefix namespaces quote records, key: quote:{symbol}
const keyPrefix = "quote:"

// RedisStore shares cached quotes between gateway instances.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the redis server at address.
func NewRedisStore(address, password string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         address,
		Password:     password,
		DB:           0, // use default DB
		MaxRetries:   2,
		ReadTimeout:  time.Second,
		WriteTimeout: time.Second,
	})
	return &RedisStore{client: client}
}

// Ping checks the connection.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.WithContext(ctx).Ping().Err()
}

// Close closes the redis connection pool.
func (s *RedisStore) Close() error {
	if s.client == nil {
		return nil
	}
	return s.client.Close()
}

func (s *RedisStore) GetMany(ctx context.Context, keys []string) (map[string]market.Record, error) {
	out := make(map[string]market.Record, len(keys))
	if len(keys) == 0 {
		return out, nil
	}

	redisKeys := make([]string, len(keys))
	for i, k := range keys {
		redisKeys[i] = keyPrefix + k
	}
	values, err := s.client.WithContext(ctx).MGet(redisKeys...).Result()
	if err != nil && err != redis.Nil {
		return nil, fmt.Errorf("redis mget: %w", err)
	}

	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var rec market.Record
		if err := sonic.UnmarshalString(raw, &rec); err != nil {
			zap.L().Warn("drop undecodable cached quote",
				zap.String("key", redisKeys[i]),
				zap.Error(err))
			continue
		}
		out[keys[i]] = rec
	}
	return out, nil
}

func (s *RedisStore) SetMany(ctx context.Context, records map[string]market.Record, ttl time.Duration) error {
	if len(records) == 0 {
		return nil
	}

	pipe := s.client.WithContext(ctx).Pipeline()
	for k, rec := range records {
		raw, err := sonic.MarshalString(rec)
		if err != nil {
			return fmt.Errorf("encode cached quote %s: %w", k, err)
		}
		pipe.Set(keyPrefix+k, raw, ttl)
	}
	if _, err := pipe.Exec(); err != nil {
		return fmt.Errorf("redis pipeline set: %w", err)
	}
	return nil
}
