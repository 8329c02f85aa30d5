package adapters

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
)

// NWSWeatherAdapter опрашивает сервис погодных предупреждений в формате
// National Weather Service: GET /alerts/active?point=lat,lon
type NWSWeatherAdapter struct {
	sender  *httpSender
	baseURL string
	logger  *logrus.Logger
}

// NewNWSWeatherAdapter создает новый NWSWeatherAdapter
func NewNWSWeatherAdapter(baseURL, secret string, timeout time.Duration, logger *logrus.Logger) *NWSWeatherAdapter {
	return &NWSWeatherAdapter{
		sender:  newHTTPSender(secret, timeout, logger),
		baseURL: baseURL,
		logger:  logger,
	}
}

// nwsAlertsResponse - конверт ответа сервиса погодных предупреждений
type nwsAlertsResponse struct {
	Features []struct {
		Properties struct {
			ID       string `json:"id"`
			Severity string `json:"severity"`
			Event    string `json:"event"`
			Headline string `json:"headline"`
			Onset    string `json:"onset"`
			Expires  string `json:"expires"`
		} `json:"properties"`
	} `json:"features"`
}

// GetActiveAlerts возвращает активные погодные предупреждения для точки
func (a *NWSWeatherAdapter) GetActiveAlerts(ctx context.Context, lat, lon float64) ([]jobs.WeatherEvent, error) {
	endpoint := fmt.Sprintf("%s/alerts/active?point=%s", a.baseURL,
		url.QueryEscape(fmt.Sprintf("%f,%f", lat, lon)))

	var resp nwsAlertsResponse
	if err := a.sender.getJSON(ctx, endpoint, &resp); err != nil {
		return nil, fmt.Errorf("weather service: %w", err)
	}

	events := make([]jobs.WeatherEvent, 0, len(resp.Features))
	for _, feature := range resp.Features {
		events = append(events, jobs.WeatherEvent{
			ID:       feature.Properties.ID,
			Severity: feature.Properties.Severity,
			Event:    feature.Properties.Event,
			Headline: feature.Properties.Headline,
			Onset:    feature.Properties.Onset,
			Expires:  feature.Properties.Expires,
		})
	}

	a.logger.WithFields(logrus.Fields{
		"lat":    lat,
		"lon":    lon,
		"alerts": len(events),
	}).Debug("Weather service polled")
	return events, nil
}
