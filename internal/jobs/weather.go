package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Серьезности NWS, по которым создается алерт
const (
	weatherSeverityExtreme = "Extreme"
	weatherSeveritySevere  = "Severe"
)

// WeatherPollHandler обрабатывает задание poll-weather: опрашивает погодный
// сервис по каждой площадке с координатами и создает WEATHER-алерты.
// Дедупликация идет по metadata.nws_alert_id, пока первый алерт не закрыт.
type WeatherPollHandler struct {
	signals  SignalRepository
	alerts   AlertRepository
	adapter  WeatherAdapter
	enqueuer queue.Enqueuer
	logger   *logrus.Logger
}

// NewWeatherPollHandler создает новый WeatherPollHandler
func NewWeatherPollHandler(signals SignalRepository, alerts AlertRepository, adapter WeatherAdapter, enqueuer queue.Enqueuer, logger *logrus.Logger) *WeatherPollHandler {
	return &WeatherPollHandler{
		signals:  signals,
		alerts:   alerts,
		adapter:  adapter,
		enqueuer: enqueuer,
		logger:   logger,
	}
}

// Handle опрашивает адаптер по всем площадкам с координатами
func (h *WeatherPollHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input PollWeatherJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal poll-weather payload: %w", err)
	}

	log := h.logger.WithField("job", JobPollWeather)
	log.Debug("Polling weather adapter")

	sites, err := h.signals.ListSitesWithCoordinates(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list sites")
		return fmt.Errorf("failed to list sites: %w", err)
	}

	for _, site := range sites {
		if err := h.pollSite(ctx, site, log); err != nil {
			return err
		}
	}

	log.WithField("sites", len(sites)).Info("Weather poll completed")
	return nil
}

// pollSite обрабатывает активные предупреждения одной площадки
func (h *WeatherPollHandler) pollSite(ctx context.Context, site *models.Site, log *logrus.Entry) error {
	siteLog := log.WithField("site_id", site.ID)

	staffID, err := h.signals.GetSiteStaffUserID(ctx, site.ID)
	if err != nil {
		siteLog.WithError(err).Error("Failed to resolve site staff user")
		return fmt.Errorf("failed to resolve site staff user: %w", err)
	}
	if staffID == nil {
		// Некому приписать triggeredById - площадка пропускается целиком
		siteLog.Warn("Site has no eligible staff user, skipping weather poll")
		return nil
	}

	events, err := h.adapter.GetActiveAlerts(ctx, *site.Latitude, *site.Longitude)
	if err != nil {
		siteLog.WithError(err).Error("Weather adapter call failed")
		return fmt.Errorf("weather adapter: %w", err)
	}

	for _, event := range events {
		if event.Severity != weatherSeverityExtreme && event.Severity != weatherSeveritySevere {
			continue
		}

		existing, err := h.alerts.FindTriggeredWeatherAlert(ctx, site.ID, event.ID)
		if err != nil {
			siteLog.WithError(err).Error("Failed to check for existing weather alert")
			return fmt.Errorf("failed to check weather alert: %w", err)
		}
		if existing != nil {
			siteLog.WithField("nws_alert_id", event.ID).Debug("Weather alert already active, skipping")
			continue
		}

		if err := h.createWeatherAlert(ctx, site, *staffID, event, siteLog); err != nil {
			return err
		}
	}
	return nil
}

func (h *WeatherPollHandler) createWeatherAlert(ctx context.Context, site *models.Site, staffID uuid.UUID, event WeatherEvent, log *logrus.Entry) error {
	metadata := models.WeatherAlertMetadata{
		NWSAlertID: event.ID,
		Severity:   event.Severity,
		Event:      event.Event,
		Headline:   event.Headline,
		Onset:      event.Onset,
		Expires:    event.Expires,
	}

	alert := &models.Alert{
		SiteID:        site.ID,
		Level:         models.LevelWeather,
		Status:        models.StatusTriggered,
		Source:        models.SourceAutomated,
		Message:       fmt.Sprintf("Severe weather: %s", event.Event),
		TriggeredByID: staffID,
		Metadata:      metadata.Map(),
	}
	if err := h.alerts.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create weather alert")
		return fmt.Errorf("failed to create weather alert: %w", err)
	}

	if _, err := h.enqueuer.Enqueue(ctx, JobMassNotify, MassNotifyJobPayload{
		AlertID:        &alert.ID,
		SiteID:         site.ID,
		Channels:       []string{models.ChannelSMS, models.ChannelEmail, models.ChannelPush, models.ChannelPA},
		Message:        alert.Message,
		RecipientScope: "all-staff",
	}, 0); err != nil {
		log.WithError(err).Error("Failed to enqueue mass notification")
		return fmt.Errorf("failed to enqueue mass notification: %w", err)
	}

	log.WithFields(logrus.Fields{
		"alert_id":     alert.ID,
		"nws_alert_id": event.ID,
		"severity":     event.Severity,
	}).Info("Weather alert created")
	return nil
}
