package models

import (
	"time"

	"github.com/google/uuid"
)

// Bus - школьный автобус с активным назначением маршрута
type Bus struct {
	ID        uuid.UUID `json:"id"`
	Number    string    `json:"number"`
	SiteID    uuid.UUID `json:"site_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Route - маршрут, владеющий упорядоченной последовательностью остановок
type Route struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	SiteID uuid.UUID `json:"site_id"`
}

// Stop - остановка маршрута с координатами (могут отсутствовать)
type Stop struct {
	ID        uuid.UUID `json:"id"`
	RouteID   uuid.UUID `json:"route_id"`
	Name      string    `json:"name"`
	Sequence  int       `json:"sequence"`
	Latitude  *float64  `json:"latitude,omitempty"`
	Longitude *float64  `json:"longitude,omitempty"`
}

// StudentCard - RFID-карта ученика
type StudentCard struct {
	ID          uuid.UUID `json:"id"`
	StudentName string    `json:"student_name"`
	Grade       string    `json:"grade,omitempty"`
	SiteID      uuid.UUID `json:"site_id"`
}

// StopAssignment - привязка ученика к остановке маршрута
type StopAssignment struct {
	ID            uuid.UUID `json:"id"`
	StopID        uuid.UUID `json:"stop_id"`
	StudentCardID uuid.UUID `json:"student_card_id"`
}

// ParentContact - подписка родителя на уведомления по ученику.
// Контакт получает уведомление на канале только при одновременном
// наличии включенного флага канала и самого адреса.
type ParentContact struct {
	ID            uuid.UUID `json:"id"`
	StudentCardID uuid.UUID `json:"student_card_id"`
	Name          string    `json:"name"`
	Phone         *string   `json:"phone,omitempty"`
	Email         *string   `json:"email,omitempty"`
	SMSEnabled    bool      `json:"sms_enabled"`
	EmailEnabled  bool      `json:"email_enabled"`
	PushEnabled   bool      `json:"push_enabled"`
	BoardAlerts   bool      `json:"board_alerts"`
	ExitAlerts    bool      `json:"exit_alerts"`
	ETAAlerts     bool      `json:"eta_alerts"`
}

// EnabledChannels возвращает каналы, доступные контакту
func (c ParentContact) EnabledChannels() []string {
	channels := make([]string, 0, 3)
	if c.SMSEnabled && c.Phone != nil && *c.Phone != "" {
		channels = append(channels, ChannelSMS)
	}
	if c.EmailEnabled && c.Email != nil && *c.Email != "" {
		channels = append(channels, ChannelEmail)
	}
	if c.PushEnabled {
		channels = append(channels, ChannelPush)
	}
	return channels
}
