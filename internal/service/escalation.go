package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue"
)

const escalationReasonTimeout = "timeout"

// TimeoutEscalationPolicy повышает уровень алерта, не подтвержденного в
// течение окна. Повторная проверка статуса выполняется на уровне бд, поэтому
// политика безопасна при гонке с подтверждением.
type TimeoutEscalationPolicy struct {
	repo     AlertRepository
	enqueuer queue.Enqueuer
	logger   *logrus.Logger
}

func NewTimeoutEscalationPolicy(repo AlertRepository, enqueuer queue.Enqueuer, logger *logrus.Logger) *TimeoutEscalationPolicy {
	return &TimeoutEscalationPolicy{
		repo:     repo,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// Escalate повышает уровень алерта и запускает каскад реакций нового уровня
func (p *TimeoutEscalationPolicy) Escalate(ctx context.Context, alert *models.Alert, nextLevel models.AlertLevel) error {
	log := p.logger.WithFields(logrus.Fields{
		"alert_id":   alert.ID,
		"from_level": alert.Level,
		"next_level": nextLevel,
	})

	escalated, err := p.repo.EscalateAlert(ctx, alert.ID, alert.Level, nextLevel, escalationReasonTimeout)
	if err != nil {
		log.WithError(err).Error("Failed to escalate alert")
		return fmt.Errorf("escalation policy: %w", err)
	}
	if !escalated {
		// Кто-то успел подтвердить алерт между проверкой и транзакцией
		log.Info("Alert no longer TRIGGERED, escalation skipped")
		return nil
	}
	log.Warn("Alert auto-escalated after acknowledgment timeout")

	// Эскалация до LOCKDOWN запускает блокировку здания, если оно известно
	if nextLevel == models.LevelLockdown && alert.BuildingID != nil {
		if _, err := p.enqueuer.Enqueue(ctx, jobs.JobLockdown, jobs.LockdownJobPayload{
			AlertID:       alert.ID,
			SiteID:        alert.SiteID,
			BuildingID:    *alert.BuildingID,
			TriggeredByID: alert.TriggeredByID,
		}, 0); err != nil {
			log.WithError(err).Error("Failed to enqueue lockdown after escalation")
			return fmt.Errorf("escalation policy: could not enqueue lockdown: %w", err)
		}
	}

	if _, err := p.enqueuer.Enqueue(ctx, jobs.JobNotifyStaff, jobs.NotifyStaffJobPayload{
		AlertID: alert.ID,
		SiteID:  alert.SiteID,
		Level:   nextLevel,
		Message: fmt.Sprintf("Alert escalated to %s: %s", nextLevel, alert.Message),
	}, 0); err != nil {
		log.WithError(err).Error("Failed to enqueue staff notification after escalation")
		return fmt.Errorf("escalation policy: could not enqueue staff notification: %w", err)
	}
	return nil
}
