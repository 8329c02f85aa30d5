package scheduler

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue"
)

// Scheduler периодически ставит в очередь задания опроса внешних сервисов.
// Сами опросы выполняются обработчиками очереди, поэтому перезапуск процесса
// не теряет уже поставленные задания.
type Scheduler struct {
	enqueuer queue.Enqueuer
	logger   *logrus.Logger

	weatherInterval time.Duration
	socialInterval  time.Duration
}

// NewScheduler создает новый Scheduler
func NewScheduler(enqueuer queue.Enqueuer, logger *logrus.Logger, weatherInterval, socialInterval time.Duration) *Scheduler {
	return &Scheduler{
		enqueuer:        enqueuer,
		logger:          logger,
		weatherInterval: weatherInterval,
		socialInterval:  socialInterval,
	}
}

// Start запускает горутины-тикеры; останавливаются отменой контекста
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting pollers scheduler...")
	go s.run(ctx, jobs.JobPollWeather, s.weatherInterval, func() any {
		return jobs.PollWeatherJobPayload{}
	})
	go s.run(ctx, jobs.JobPollSocial, s.socialInterval, func() any {
		return jobs.PollSocialJobPayload{}
	})
}

func (s *Scheduler) run(ctx context.Context, jobName string, interval time.Duration, payload func() any) {
	// Первый опрос сразу при старте, далее по тикеру
	s.enqueuePoll(ctx, jobName, payload())

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			s.logger.WithField("job", jobName).Info("Stopping poller.")
			return
		case <-ticker.C:
			s.enqueuePoll(ctx, jobName, payload())
		}
	}
}

func (s *Scheduler) enqueuePoll(ctx context.Context, jobName string, payload any) {
	if _, err := s.enqueuer.Enqueue(ctx, jobName, payload, 0); err != nil {
		s.logger.WithError(err).WithField("job", jobName).Error("Failed to enqueue poll job")
		return
	}
	s.logger.WithField("job", jobName).Debug("Poll job enqueued")
}
