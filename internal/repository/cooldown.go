package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCooldownStore хранит короткоживущие маркеры подавления в Redis
type RedisCooldownStore struct {
	redisClient *redis.Client
}

func NewRedisCooldownStore(redisClient *redis.Client) *RedisCooldownStore {
	return &RedisCooldownStore{redisClient: redisClient}
}

// TryAcquire ставит маркер с TTL; false означает, что маркер уже существует
// и действие нужно подавить
func (s *RedisCooldownStore) TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := s.redisClient.SetNX(ctx, fmt.Sprintf("cooldown:%s", key), 1, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire cooldown marker: %w", err)
	}
	return acquired, nil
}

// Release снимает маркер до истечения TTL
func (s *RedisCooldownStore) Release(ctx context.Context, key string) error {
	if err := s.redisClient.Del(ctx, fmt.Sprintf("cooldown:%s", key)).Err(); err != nil {
		return fmt.Errorf("failed to release cooldown marker: %w", err)
	}
	return nil
}
