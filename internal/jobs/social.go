package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue"
	"github.com/sirupsen/logrus"
)

// SocialPollHandler обрабатывает задание poll-social-media. Повторный опрос
// одного окна идемпотентен: события дедуплицируются по externalId.
type SocialPollHandler struct {
	signals  SignalRepository
	alerts   AlertRepository
	adapter  SocialMediaAdapter
	enqueuer queue.Enqueuer
	logger   *logrus.Logger

	watermarkFallback time.Duration
}

// NewSocialPollHandler создает новый SocialPollHandler
func NewSocialPollHandler(signals SignalRepository, alerts AlertRepository, adapter SocialMediaAdapter, enqueuer queue.Enqueuer, logger *logrus.Logger, watermarkFallback time.Duration) *SocialPollHandler {
	return &SocialPollHandler{
		signals:           signals,
		alerts:            alerts,
		adapter:           adapter,
		enqueuer:          enqueuer,
		logger:            logger,
		watermarkFallback: watermarkFallback,
	}
}

// Handle опрашивает адаптер с водяного знака, сохраняет новые события и для
// HIGH/CRITICAL синтезирует алерт безопасности с уведомлением персонала
func (h *SocialPollHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input PollSocialJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal poll-social payload: %w", err)
	}

	since := time.Now().Add(-h.watermarkFallback)
	if input.Since != nil {
		since = *input.Since
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":     JobPollSocial,
		"adapter": h.adapter.Name(),
		"since":   since,
	})
	log.Debug("Polling social media adapter")

	events, err := h.adapter.PollAlerts(ctx, since)
	if err != nil {
		log.WithError(err).Error("Social media adapter call failed")
		return fmt.Errorf("social media adapter: %w", err)
	}

	created := 0
	for _, event := range events {
		exists, err := h.signals.SocialAlertExists(ctx, event.ID)
		if err != nil {
			log.WithError(err).Error("Failed to check social alert existence")
			return fmt.Errorf("failed to check social alert: %w", err)
		}
		if exists {
			continue
		}

		if err := h.ingestEvent(ctx, event, log); err != nil {
			return err
		}
		created++
	}

	log.WithFields(logrus.Fields{
		"events_polled": len(events),
		"events_new":    created,
	}).Info("Social media poll completed")
	return nil
}

// ingestEvent сначала сохраняет событие (именно эта запись - ключ
// идемпотентности при повторах), затем при высокой серьезности создает
// алерт и привязывает его к сохраненной записи
func (h *SocialPollHandler) ingestEvent(ctx context.Context, event SocialEvent, log *logrus.Entry) error {
	socialAlert := &models.SocialMediaAlert{
		ExternalID:   event.ID,
		Source:       event.Source,
		Platform:     event.Platform,
		ContentType:  event.ContentType,
		Content:      event.Content,
		Category:     event.Category,
		Severity:     event.Severity,
		StudentName:  event.StudentName,
		StudentGrade: event.StudentGrade,
	}
	if err := h.signals.CreateSocialMediaAlert(ctx, socialAlert); err != nil {
		log.WithError(err).Error("Failed to persist social media alert")
		return fmt.Errorf("failed to persist social media alert: %w", err)
	}

	level, escalatable := socialSeverityLevel(event.Severity)
	if !escalatable {
		return nil
	}

	site, err := h.signals.GetPrimarySite(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to resolve primary site")
		return fmt.Errorf("failed to resolve primary site: %w", err)
	}
	staffID, err := h.signals.GetSiteStaffUserID(ctx, site.ID)
	if err != nil {
		log.WithError(err).Error("Failed to resolve site staff user")
		return fmt.Errorf("failed to resolve site staff user: %w", err)
	}
	if staffID == nil {
		// Без дежурного сотрудника алерт создать нельзя (некому приписать
		// triggeredById) - остается только сохраненное событие
		log.WithField("site_id", site.ID).Warn("Site has no eligible staff user, storing event without alert")
		return nil
	}

	alert := &models.Alert{
		SiteID:        site.ID,
		Level:         level,
		Status:        models.StatusTriggered,
		Source:        models.SourceAutomated,
		Message:       fmt.Sprintf("Social media threat (%s/%s): %s", event.Platform, event.Category, event.Content),
		TriggeredByID: *staffID,
		Metadata: map[string]any{
			"social_external_id": event.ID,
			"platform":           event.Platform,
			"category":           event.Category,
		},
	}
	if err := h.alerts.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert from social event")
		return fmt.Errorf("failed to create alert: %w", err)
	}
	if err := h.signals.LinkSocialAlert(ctx, event.ID, alert.ID); err != nil {
		log.WithError(err).Error("Failed to link social alert")
		return fmt.Errorf("failed to link social alert: %w", err)
	}

	if _, err := h.enqueuer.Enqueue(ctx, JobNotifyStaff, NotifyStaffJobPayload{
		AlertID: alert.ID,
		SiteID:  alert.SiteID,
		Level:   alert.Level,
		Message: alert.Message,
	}, 0); err != nil {
		log.WithError(err).Error("Failed to enqueue staff notification")
		return fmt.Errorf("failed to enqueue staff notification: %w", err)
	}

	log.WithFields(logrus.Fields{
		"alert_id": alert.ID,
		"level":    alert.Level,
	}).Info("Safety alert synthesized from social media event")
	return nil
}

// socialSeverityLevel отображает серьезность события на уровень алерта
func socialSeverityLevel(severity string) (models.AlertLevel, bool) {
	switch severity {
	case models.SocialSeverityCritical:
		return models.LevelActiveThreat, true
	case models.SocialSeverityHigh:
		return models.LevelLockdown, true
	default:
		return "", false
	}
}
