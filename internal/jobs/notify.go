package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// NotifyStaffHandler обрабатывает задание notify-staff
type NotifyStaffHandler struct {
	notifications NotificationRepository
	adapter       NotificationAdapter
	logger        *logrus.Logger
}

// NewNotifyStaffHandler создает новый NotifyStaffHandler
func NewNotifyStaffHandler(notifications NotificationRepository, adapter NotificationAdapter, logger *logrus.Logger) *NotifyStaffHandler {
	return &NotifyStaffHandler{
		notifications: notifications,
		adapter:       adapter,
		logger:        logger,
	}
}

// Handle вызывает адаптер уведомлений по нагрузке алерта и пишет одну
// сводную запись журнала (channel=ALL, status=SENT)
func (h *NotifyStaffHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input NotifyStaffJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal notify-staff payload: %w", err)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":      JobNotifyStaff,
		"alert_id": input.AlertID,
		"level":    input.Level,
	})
	log.Info("Notifying staff about alert")

	if err := h.adapter.Notify(ctx, NotificationPayload{
		AlertID:  &input.AlertID,
		SiteID:   input.SiteID,
		Level:    input.Level,
		Message:  input.Message,
		Channels: []string{models.ChannelSMS, models.ChannelEmail, models.ChannelPush},
	}); err != nil {
		log.WithError(err).Error("Notification adapter call failed")
		return fmt.Errorf("notification adapter: %w", err)
	}

	entry := &models.NotificationLog{
		AlertID: &input.AlertID,
		SiteID:  input.SiteID,
		Channel: models.NotificationChannelAll,
		Message: input.Message,
		Status:  models.NotificationStatusSent,
	}
	if err := h.notifications.CreateNotificationLog(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to create notification log")
		return fmt.Errorf("failed to log staff notification: %w", err)
	}

	log.Info("Staff notified successfully")
	return nil
}

// MassNotifyHandler обрабатывает задание mass-notify
type MassNotifyHandler struct {
	notifications NotificationRepository
	adapter       NotificationAdapter
	logger        *logrus.Logger
}

// NewMassNotifyHandler создает новый MassNotifyHandler
func NewMassNotifyHandler(notifications NotificationRepository, adapter NotificationAdapter, logger *logrus.Logger) *MassNotifyHandler {
	return &MassNotifyHandler{
		notifications: notifications,
		adapter:       adapter,
		logger:        logger,
	}
}

// Handle вызывает адаптер один раз на весь батч. Если для пары
// (площадка, сообщение) уже есть QUEUED-запись журнала, она переводится
// в SENT; новая запись в этом случае не создается (двухфазный паттерн
// "queued-then-confirmed" без знания id записи на стороне вызывающего).
func (h *MassNotifyHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input MassNotifyJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal mass-notify payload: %w", err)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":      JobMassNotify,
		"site_id":  input.SiteID,
		"scope":    input.RecipientScope,
		"channels": input.Channels,
	})
	log.Info("Sending mass notification batch")

	if err := h.adapter.Notify(ctx, NotificationPayload{
		AlertID:        input.AlertID,
		SiteID:         input.SiteID,
		Message:        input.Message,
		RecipientScope: input.RecipientScope,
		RecipientIDs:   input.RecipientIDs,
		Channels:       input.Channels,
	}); err != nil {
		log.WithError(err).Error("Notification adapter call failed")
		return fmt.Errorf("notification adapter: %w", err)
	}

	flipped, err := h.notifications.MarkQueuedNotificationSent(ctx, input.SiteID, input.Message)
	if err != nil {
		log.WithError(err).Error("Failed to confirm queued notification")
		return fmt.Errorf("failed to confirm queued notification: %w", err)
	}
	if flipped {
		log.Info("Queued notification confirmed as sent")
		return nil
	}

	entry := &models.NotificationLog{
		AlertID:        input.AlertID,
		SiteID:         input.SiteID,
		Channel:        models.NotificationChannelAll,
		RecipientCount: len(input.RecipientIDs),
		Message:        input.Message,
		Status:         models.NotificationStatusSent,
	}
	if err := h.notifications.CreateNotificationLog(ctx, entry); err != nil {
		log.WithError(err).Error("Failed to create notification log")
		return fmt.Errorf("failed to log mass notification: %w", err)
	}

	log.Info("Mass notification sent")
	return nil
}
