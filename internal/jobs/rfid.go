package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// RFIDScanHandler обрабатывает задание process-rfid-scan.
// Это маршрут общения с родителями, а не маршрут безопасности:
// Alert для рутинных сканирований не создается.
type RFIDScanHandler struct {
	transport TransportRepository
	adapter   NotificationAdapter
	logger    *logrus.Logger
}

// NewRFIDScanHandler создает новый RFIDScanHandler
func NewRFIDScanHandler(transport TransportRepository, adapter NotificationAdapter, logger *logrus.Logger) *RFIDScanHandler {
	return &RFIDScanHandler{
		transport: transport,
		adapter:   adapter,
		logger:    logger,
	}
}

// Handle находит контакты родителей по карте ученика, фильтрует по подписке
// на тип сканирования и шлет уведомление каждому контакту по его каналам
func (h *RFIDScanHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input RFIDScanJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal rfid-scan payload: %w", err)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":             JobRFIDScan,
		"student_card_id": input.StudentCardID,
		"scan_type":       input.ScanType,
		"bus_number":      input.BusNumber,
	})
	log.Info("Processing RFID scan")

	bus, err := h.transport.GetBusByID(ctx, input.BusID)
	if err != nil {
		log.WithError(err).Error("Failed to load bus")
		return fmt.Errorf("failed to load bus: %w", err)
	}

	contacts, err := h.transport.GetContactsByStudentCard(ctx, input.StudentCardID)
	if err != nil {
		log.WithError(err).Error("Failed to load parent contacts")
		return fmt.Errorf("failed to load parent contacts: %w", err)
	}

	notified := 0
	for _, contact := range contacts {
		if !optedIn(contact, input.ScanType) {
			continue
		}
		channels := contact.EnabledChannels()
		if len(channels) == 0 {
			// Ожидаемое состояние, а не ошибка: у контакта нет ни одного
			// рабочего канала
			log.WithField("contact_id", contact.ID).Debug("Contact has no enabled channels, skipping")
			continue
		}

		if err := h.adapter.Notify(ctx, NotificationPayload{
			SiteID:     bus.SiteID,
			Message:    renderScanMessage(input, channels),
			Recipients: []Recipient{{Name: contact.Name, Phone: contact.Phone, Email: contact.Email}},
			Channels:   channels,
		}); err != nil {
			log.WithError(err).Error("Notification adapter call failed")
			return fmt.Errorf("notification adapter: %w", err)
		}
		notified++
	}

	log.WithField("contacts_notified", notified).Info("RFID scan processed")
	return nil
}

// optedIn проверяет подписку контакта на тип сканирования
func optedIn(contact *models.ParentContact, scanType string) bool {
	switch scanType {
	case ScanTypeBoard:
		return contact.BoardAlerts
	case ScanTypeExit:
		return contact.ExitAlerts
	default:
		return false
	}
}

// renderScanMessage выбирает шаблон по каналам: у SMS и PUSH разный текст,
// SMS предпочтителен при наличии обоих
func renderScanMessage(input RFIDScanJobPayload, channels []string) string {
	at := input.ScannedAt.Format("15:04")
	action := "boarded"
	if input.ScanType == ScanTypeExit {
		action = "exited"
	}

	for _, ch := range channels {
		if ch == models.ChannelSMS {
			return fmt.Sprintf("%s %s bus %s at %s", input.StudentName, action, input.BusNumber, at)
		}
	}
	return fmt.Sprintf("Bus update: %s has %s bus %s (%s)", input.StudentName, action, input.BusNumber, at)
}
