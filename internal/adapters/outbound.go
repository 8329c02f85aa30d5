package adapters

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
)

// HTTPDispatchAdapter отправляет запросы на вызов экстренных служб во
// внешнюю диспетчерскую систему
type HTTPDispatchAdapter struct {
	sender *httpSender
	url    string
	logger *logrus.Logger
}

// NewHTTPDispatchAdapter создает новый HTTPDispatchAdapter
func NewHTTPDispatchAdapter(url, secret string, timeout time.Duration, logger *logrus.Logger) *HTTPDispatchAdapter {
	return &HTTPDispatchAdapter{
		sender: newHTTPSender(secret, timeout, logger),
		url:    url,
		logger: logger,
	}
}

func (a *HTTPDispatchAdapter) Dispatch(ctx context.Context, payload jobs.DispatchJobPayload) error {
	a.logger.WithFields(logrus.Fields{
		"alert_id": payload.AlertID,
		"site_id":  payload.SiteID,
	}).Info("Dispatching emergency services request")
	return a.sender.postJSON(ctx, a.url, payload)
}

// HTTPLockdownAdapter передает команды блокировки во внешнюю систему
// управления дверьми
type HTTPLockdownAdapter struct {
	sender *httpSender
	url    string
	logger *logrus.Logger
}

// NewHTTPLockdownAdapter создает новый HTTPLockdownAdapter
func NewHTTPLockdownAdapter(url, secret string, timeout time.Duration, logger *logrus.Logger) *HTTPLockdownAdapter {
	return &HTTPLockdownAdapter{
		sender: newHTTPSender(secret, timeout, logger),
		url:    url,
		logger: logger,
	}
}

func (a *HTTPLockdownAdapter) Lockdown(ctx context.Context, payload jobs.LockdownJobPayload) error {
	a.logger.WithFields(logrus.Fields{
		"alert_id":    payload.AlertID,
		"building_id": payload.BuildingID,
	}).Info("Sending lockdown command to access control system")
	return a.sender.postJSON(ctx, a.url, payload)
}

// HTTPNotificationAdapter доставляет уведомления через внешний сервис
// рассылки (SMS/email/push/PA)
type HTTPNotificationAdapter struct {
	sender *httpSender
	url    string
	logger *logrus.Logger
}

// NewHTTPNotificationAdapter создает новый HTTPNotificationAdapter
func NewHTTPNotificationAdapter(url, secret string, timeout time.Duration, logger *logrus.Logger) *HTTPNotificationAdapter {
	return &HTTPNotificationAdapter{
		sender: newHTTPSender(secret, timeout, logger),
		url:    url,
		logger: logger,
	}
}

func (a *HTTPNotificationAdapter) Notify(ctx context.Context, payload jobs.NotificationPayload) error {
	a.logger.WithFields(logrus.Fields{
		"site_id":    payload.SiteID,
		"recipients": len(payload.Recipients),
		"channels":   payload.Channels,
	}).Debug("Sending notification batch")
	return a.sender.postJSON(ctx, a.url, payload)
}
