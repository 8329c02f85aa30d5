package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/geo"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// GPSUpdateHandler обрабатывает задание process-gps-update: по координатам
// автобуса определяет прибытие на остановку активного маршрута и шлет
// ETA-уведомления родителям учеников этой остановки.
type GPSUpdateHandler struct {
	transport TransportRepository
	adapter   NotificationAdapter
	cooldowns CooldownStore
	logger    *logrus.Logger

	radiusMeters float64
	// renotifyCooldown подавляет повторные уведомления по паре
	// (автобус, остановка). Ноль воспроизводит исходное поведение:
	// каждое GPS-обновление внутри радиуса уведомляет заново, и
	// единственным троттлингом остается частота GPS-обновлений.
	renotifyCooldown time.Duration
}

// NewGPSUpdateHandler создает новый GPSUpdateHandler
func NewGPSUpdateHandler(transport TransportRepository, adapter NotificationAdapter, cooldowns CooldownStore, logger *logrus.Logger, radiusMeters float64, renotifyCooldown time.Duration) *GPSUpdateHandler {
	return &GPSUpdateHandler{
		transport:        transport,
		adapter:          adapter,
		cooldowns:        cooldowns,
		logger:           logger,
		radiusMeters:     radiusMeters,
		renotifyCooldown: renotifyCooldown,
	}
}

// Handle проходит по остановкам активного маршрута в порядке следования и
// для каждой остановки в радиусе геозоны уведомляет родителей
func (h *GPSUpdateHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input GPSUpdateJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal gps-update payload: %w", err)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":    JobGPSUpdate,
		"bus_id": input.BusID,
	})
	log.Debug("Processing GPS update")

	bus, err := h.transport.GetBusByID(ctx, input.BusID)
	if err != nil {
		log.WithError(err).Error("Failed to load bus")
		return fmt.Errorf("failed to load bus: %w", err)
	}

	stops, err := h.transport.GetActiveRouteStops(ctx, input.BusID)
	if err != nil {
		log.WithError(err).Error("Failed to load route stops")
		return fmt.Errorf("failed to load route stops: %w", err)
	}
	if len(stops) == 0 {
		// Без активного маршрута уведомлять некого
		log.Debug("Bus has no active route stops, skipping")
		return nil
	}

	for _, stop := range stops {
		if stop.Latitude == nil || stop.Longitude == nil {
			continue
		}
		distance := geo.Haversine(input.Latitude, input.Longitude, *stop.Latitude, *stop.Longitude)
		if distance > h.radiusMeters {
			continue
		}

		if h.renotifyCooldown > 0 {
			key := fmt.Sprintf("geofence:%s:%s", input.BusID, stop.ID)
			acquired, err := h.cooldowns.TryAcquire(ctx, key, h.renotifyCooldown)
			if err != nil {
				log.WithError(err).Error("Failed to check geofence cooldown")
				return fmt.Errorf("failed to check geofence cooldown: %w", err)
			}
			if !acquired {
				log.WithField("stop_id", stop.ID).Debug("Arrival recently notified, cooldown active")
				continue
			}
			if err := h.notifyArrival(ctx, bus, stop, log); err != nil {
				// Снимаем маркер, иначе повтор задания будет подавлен
				// собственным кулдауном и уведомление потеряется
				if releaseErr := h.cooldowns.Release(ctx, key); releaseErr != nil {
					log.WithError(releaseErr).Error("Failed to release geofence cooldown")
				}
				return err
			}
			continue
		}

		if err := h.notifyArrival(ctx, bus, stop, log); err != nil {
			return err
		}
	}

	return nil
}

// notifyArrival уведомляет родителей учеников остановки о прибытии автобуса
func (h *GPSUpdateHandler) notifyArrival(ctx context.Context, bus *models.Bus, stop *models.Stop, log *logrus.Entry) error {
	cards, err := h.transport.GetStudentCardsByStop(ctx, stop.ID)
	if err != nil {
		log.WithError(err).Error("Failed to load stop assignments")
		return fmt.Errorf("failed to load stop assignments: %w", err)
	}

	notified := 0
	for _, card := range cards {
		contacts, err := h.transport.GetContactsByStudentCard(ctx, card.ID)
		if err != nil {
			log.WithError(err).Error("Failed to load parent contacts")
			return fmt.Errorf("failed to load parent contacts: %w", err)
		}

		for _, contact := range contacts {
			if !contact.ETAAlerts {
				continue
			}
			channels := contact.EnabledChannels()
			if len(channels) == 0 {
				continue
			}

			if err := h.adapter.Notify(ctx, NotificationPayload{
				SiteID:     bus.SiteID,
				Message:    fmt.Sprintf("Bus %s is arriving at %s", bus.Number, stop.Name),
				Recipients: []Recipient{{Name: contact.Name, Phone: contact.Phone, Email: contact.Email}},
				Channels:   channels,
			}); err != nil {
				log.WithError(err).Error("Notification adapter call failed")
				return fmt.Errorf("notification adapter: %w", err)
			}
			notified++
		}
	}

	log.WithFields(logrus.Fields{
		"stop_id":           stop.ID,
		"contacts_notified": notified,
	}).Info("Bus arrival notifications sent")
	return nil
}
