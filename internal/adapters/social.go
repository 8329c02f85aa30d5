package adapters

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
)

// SentinelSocialAdapter опрашивает внешний сервис мониторинга соцсетей:
// GET /alerts?since=<RFC3339>
type SentinelSocialAdapter struct {
	sender  *httpSender
	baseURL string
	logger  *logrus.Logger
}

// NewSentinelSocialAdapter создает новый SentinelSocialAdapter
func NewSentinelSocialAdapter(baseURL, secret string, timeout time.Duration, logger *logrus.Logger) *SentinelSocialAdapter {
	return &SentinelSocialAdapter{
		sender:  newHTTPSender(secret, timeout, logger),
		baseURL: baseURL,
		logger:  logger,
	}
}

func (a *SentinelSocialAdapter) Name() string {
	return "sentinel"
}

// socialAlertsResponse - конверт ответа сервиса мониторинга
type socialAlertsResponse struct {
	Alerts []jobs.SocialEvent `json:"alerts"`
}

// PollAlerts возвращает события, появившиеся после since
func (a *SentinelSocialAdapter) PollAlerts(ctx context.Context, since time.Time) ([]jobs.SocialEvent, error) {
	endpoint := fmt.Sprintf("%s/alerts?since=%s", a.baseURL,
		url.QueryEscape(since.UTC().Format(time.RFC3339)))

	var resp socialAlertsResponse
	if err := a.sender.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("social monitoring service: %w", err)
	}

	a.logger.WithFields(logrus.Fields{
		"since":  since,
		"events": len(resp.Alerts),
	}).Debug("Social monitoring service polled")
	return resp.Alerts, nil
}
