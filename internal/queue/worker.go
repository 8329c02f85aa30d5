package queue

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// promoteInterval - период переноса созревших отложенных заданий в очередь
const promoteInterval = time.Second

// Dispatcher - маршрутизатор заданий. Возвращает handled=false для
// неизвестного имени задания: такое задание логируется и отбрасывается.
type Dispatcher interface {
	Dispatch(ctx context.Context, name string, payload json.RawMessage) (handled bool, err error)
}

// Worker - пул воркеров, извлекающий задания из очереди и передающий их
// маршрутизатору. Ошибка обработчика приводит к повторной постановке
// задания с экспоненциальной задержкой, вплоть до maxRetries.
type Worker struct {
	redisClient *redis.Client
	queue       *RedisQueue
	dispatcher  Dispatcher
	logger      *logrus.Logger
	concurrency int
	maxRetries  int
	baseDelay   time.Duration
}

// NewWorker создает новый Worker
func NewWorker(client *redis.Client, queue *RedisQueue, dispatcher Dispatcher, logger *logrus.Logger, concurrency, maxRetries int, baseDelay time.Duration) *Worker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Worker{
		redisClient: client,
		queue:       queue,
		dispatcher:  dispatcher,
		logger:      logger,
		concurrency: concurrency,
		maxRetries:  maxRetries,
		baseDelay:   baseDelay,
	}
}

// Start запускает горутины пула и промоутер отложенных заданий
func (w *Worker) Start(ctx context.Context) {
	w.logger.WithField("concurrency", w.concurrency).Info("Starting job worker pool...")

	go w.promoteLoop(ctx)

	for i := 0; i < w.concurrency; i++ {
		go w.runSlot(ctx, i)
	}
}

// runSlot - цикл одного слота пула
func (w *Worker) runSlot(ctx context.Context, slot int) {
	log := w.logger.WithField("worker_slot", slot)
	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping worker slot.")
			return
		default:
			// BRPOP - блокирующее извлечение из правой части списка (очереди)
			// 0 означает бесконечное ожидание
			result, err := w.redisClient.BRPop(ctx, 0, readyQueueKey).Result()
			if err != nil {
				if errors.Is(err, context.Canceled) {
					continue // Контекст отменен, но не ошибка Redis
				}
				log.WithError(err).Error("Failed to pop job from Redis")
				time.Sleep(w.baseDelay) // Ждем перед повторной попыткой
				continue
			}

			// result[0] - ключ, result[1] - значение
			var job Job
			if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
				log.WithError(err).Error("Failed to unmarshal job from Redis")
				continue
			}

			w.processJob(ctx, job)
		}
	}
}

// processJob передает задание маршрутизатору и решает судьбу ошибки:
// повтор с задержкой или окончательный отказ
func (w *Worker) processJob(ctx context.Context, job Job) {
	log := w.logger.WithFields(logrus.Fields{
		"job_id":   job.ID,
		"job_name": job.Name,
		"attempt":  job.Attempts,
	})
	log.Debug("Processing job...")

	handled, err := w.dispatcher.Dispatch(ctx, job.Name, job.Payload)
	if !handled {
		// Неизвестное имя задания - не ошибка, совместимость со схемой вперед
		log.Warn("Unknown job name, dropping job")
		return
	}
	if err == nil {
		log.Debug("Job completed")
		return
	}

	job.Attempts++
	if job.Attempts > w.maxRetries {
		log.WithError(err).Errorf("Job failed permanently after %d retries", w.maxRetries)
		return
	}

	// Экспоненциальная задержка перед повтором
	delay := w.baseDelay << (job.Attempts - 1)
	log.WithError(err).Warnf("Job failed, retrying in %v", delay)
	if err := w.queue.push(ctx, job, delay); err != nil {
		log.WithError(err).Error("Failed to re-enqueue job for retry")
	}
}

// promoteLoop переносит созревшие задания из отложенного набора в очередь.
// ZRem перед LPush гарантирует, что при нескольких процессах задание
// переместит ровно один из них.
func (w *Worker) promoteLoop(ctx context.Context) {
	ticker := time.NewTicker(promoteInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("Stopping delayed job promoter.")
			return
		case <-ticker.C:
			w.promoteDue(ctx)
		}
	}
}

func (w *Worker) promoteDue(ctx context.Context) {
	now := time.Now().UnixMilli()
	members, err := w.redisClient.ZRangeByScore(ctx, delayedQueueKey, &redis.ZRangeBy{
		Min: "-inf",
		Max: strconv.FormatInt(now, 10),
	}).Result()
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			w.logger.WithError(err).Error("Failed to read delayed jobs")
		}
		return
	}

	for _, member := range members {
		removed, err := w.redisClient.ZRem(ctx, delayedQueueKey, member).Result()
		if err != nil {
			w.logger.WithError(err).Error("Failed to remove delayed job")
			continue
		}
		if removed == 0 {
			continue // Задание уже забрал другой процесс
		}
		if err := w.redisClient.LPush(ctx, readyQueueKey, member).Err(); err != nil {
			w.logger.WithError(err).Error("Failed to promote delayed job")
		}
	}
}
