package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrAlertNotFound возвращается, когда алерта с указанным ID не существует.
// Потребители отличают по нему "алерта больше нет" от временной ошибки хранилища.
var ErrAlertNotFound = errors.New("alert not found")

// AlertLevel - уровень угрозы алерта
type AlertLevel string

const (
	LevelActiveThreat AlertLevel = "ACTIVE_THREAT"
	LevelLockdown     AlertLevel = "LOCKDOWN"
	LevelFire         AlertLevel = "FIRE"
	LevelMedical      AlertLevel = "MEDICAL"
	LevelWeather      AlertLevel = "WEATHER"
	LevelAllClear     AlertLevel = "ALL_CLEAR"
	LevelCustom       AlertLevel = "CUSTOM"
)

// AlertStatus - статус жизненного цикла алерта.
// TRIGGERED -> ACKNOWLEDGED | DISPATCHED | SUPPRESSED -> RESOLVED | CANCELLED.
// Эскалация меняет уровень, а не статус.
type AlertStatus string

const (
	StatusTriggered    AlertStatus = "TRIGGERED"
	StatusAcknowledged AlertStatus = "ACKNOWLEDGED"
	StatusDispatched   AlertStatus = "DISPATCHED"
	StatusSuppressed   AlertStatus = "SUPPRESSED"
	StatusResolved     AlertStatus = "RESOLVED"
	StatusCancelled    AlertStatus = "CANCELLED"
)

// AlertSource - источник срабатывания
type AlertSource string

const (
	SourceDashboard AlertSource = "DASHBOARD"
	SourceAutomated AlertSource = "AUTOMATED"
	SourcePanic     AlertSource = "PANIC_BUTTON"
	SourceFirePanel AlertSource = "FIRE_PANEL"
	SourceWeapons   AlertSource = "WEAPONS_DETECTOR"
)

// Alert представляет событие безопасности с уровнем, статусом и локацией.
// Записи никогда не удаляются: история ведется через переходы статуса
// и связанные записи (DispatchRecord, LockdownCommand, NotificationLog).
type Alert struct {
	ID            uuid.UUID      `json:"id"`
	SiteID        uuid.UUID      `json:"site_id"`
	Level         AlertLevel     `json:"level"`
	Status        AlertStatus    `json:"status"`
	Source        AlertSource    `json:"source"`
	Message       string         `json:"message"`
	BuildingID    *uuid.UUID     `json:"building_id,omitempty"`
	BuildingName  string         `json:"building_name,omitempty"`
	Room          string         `json:"room,omitempty"`
	Floor         string         `json:"floor,omitempty"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	TriggeredByID uuid.UUID      `json:"triggered_by_id"`
	Metadata      map[string]any `json:"metadata,omitempty"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

// WeatherAlertMetadata - типизированная часть metadata для алертов уровня WEATHER.
// NWSAlertID служит ключом дедупликации при повторных опросах.
type WeatherAlertMetadata struct {
	NWSAlertID string `json:"nws_alert_id"`
	Severity   string `json:"severity"`
	Event      string `json:"event"`
	Headline   string `json:"headline,omitempty"`
	Onset      string `json:"onset,omitempty"`
	Expires    string `json:"expires,omitempty"`
}

// Map переводит типизированные метаданные в открытый metadata-словарь алерта
func (m WeatherAlertMetadata) Map() map[string]any {
	out := map[string]any{
		"nws_alert_id": m.NWSAlertID,
		"severity":     m.Severity,
		"event":        m.Event,
	}
	if m.Headline != "" {
		out["headline"] = m.Headline
	}
	if m.Onset != "" {
		out["onset"] = m.Onset
	}
	if m.Expires != "" {
		out["expires"] = m.Expires
	}
	return out
}

// EscalationAudit - запись аудита автоэскалации
type EscalationAudit struct {
	ID        int64      `json:"id"`
	AlertID   uuid.UUID  `json:"alert_id"`
	FromLevel AlertLevel `json:"from_level"`
	ToLevel   AlertLevel `json:"to_level"`
	Reason    string     `json:"reason"`
	CreatedAt time.Time  `json:"created_at"`
}
