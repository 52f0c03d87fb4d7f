package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"soiladvisor/internal/models"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps result payloads in redis so results survive process
// restarts and multiple instances can share them.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(url string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client}, nil
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func resultKey(token string) string {
	return fmt.Sprintf("result:%s", token)
}

func (r *RedisStore) Put(ctx context.Context, token string, result *models.ResultData, ttl time.Duration) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	if err := r.client.Set(ctx, resultKey(token), data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store result in Redis: %w", err)
	}
	return nil
}

func (r *RedisStore) Get(ctx context.Context, token string) (*models.ResultData, bool, error) {
	data, err := r.client.Get(ctx, resultKey(token)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get result from Redis: %w", err)
	}

	var result models.ResultData
	if err := json.Unmarshal([]byte(data), &result); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal result: %w", err)
	}
	return &result, true, nil
}

func (r *RedisStore) Delete(ctx context.Context, token string) error {
	return r.client.Del(ctx, resultKey(token)).Err()
}
