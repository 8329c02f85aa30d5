package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	readyQueueKey   = "jobs:ready"
	delayedQueueKey = "jobs:delayed"
)

// Job - именованное задание с opaque-полезной нагрузкой.
// Attempts растет при повторных доставках (at-least-once).
type Job struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Payload    json.RawMessage `json:"payload"`
	Attempts   int             `json:"attempts"`
	EnqueuedAt time.Time       `json:"enqueued_at"`
}

// Enqueuer - контракт постановки заданий в очередь
type Enqueuer interface {
	Enqueue(ctx context.Context, name string, payload any, delay time.Duration) (string, error)
}

// RedisQueue - реализация очереди заданий на Redis: готовые задания лежат
// в списке, отложенные - в sorted set со score равным времени готовности
type RedisQueue struct {
	redisClient *redis.Client
}

// NewRedisQueue создает новый RedisQueue
func NewRedisQueue(client *redis.Client) *RedisQueue {
	return &RedisQueue{
		redisClient: client,
	}
}

// Enqueue публикует задание в очередь. При delay > 0 задание попадает в
// отложенный набор и будет перенесено в очередь после истечения задержки.
func (q *RedisQueue) Enqueue(ctx context.Context, name string, payload any, delay time.Duration) (string, error) {
	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal job payload: %w", err)
	}

	job := Job{
		ID:         uuid.NewString(),
		Name:       name,
		Payload:    rawPayload,
		EnqueuedAt: time.Now().UTC(),
	}

	return job.ID, q.push(ctx, job, delay)
}

// push сериализует задание и кладет его либо в список готовых,
// либо в отложенный набор
func (q *RedisQueue) push(ctx context.Context, job Job, delay time.Duration) error {
	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if delay > 0 {
		readyAt := float64(time.Now().Add(delay).UnixMilli())
		if err := q.redisClient.ZAdd(ctx, delayedQueueKey, redis.Z{Score: readyAt, Member: raw}).Err(); err != nil {
			return fmt.Errorf("failed to schedule delayed job: %w", err)
		}
		return nil
	}

	// Используем LPUSH для добавления задания в левую часть списка (очереди)
	if err := q.redisClient.LPush(ctx, readyQueueKey, raw).Err(); err != nil {
		return fmt.Errorf("failed to enqueue job: %w", err)
	}
	return nil
}
