package v1

import (
	"time"

	"github.com/google/uuid"
)

// TriggerAlertRequest DTO для создания алерта
// @Description DTO для создания алерта (тревожная кнопка, дашборд, панель)
type TriggerAlertRequest struct {
	SiteID        uuid.UUID  `json:"site_id" validate:"required"`
	Level         string     `json:"level" validate:"required,oneof=ACTIVE_THREAT LOCKDOWN FIRE MEDICAL WEATHER ALL_CLEAR CUSTOM"`
	Source        string     `json:"source,omitempty" validate:"omitempty,oneof=DASHBOARD AUTOMATED PANIC_BUTTON FIRE_PANEL WEAPONS_DETECTOR"`
	Message       string     `json:"message" validate:"required,min=2,max=1024"`
	BuildingID    *uuid.UUID `json:"building_id,omitempty"`
	BuildingName  string     `json:"building_name,omitempty"`
	Room          string     `json:"room,omitempty"`
	Floor         string     `json:"floor,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude     *float64   `json:"longitude,omitempty" validate:"omitempty,longitude"`
	TriggeredByID uuid.UUID  `json:"triggered_by_id" validate:"required"`
}

// AlertResponse DTO для ответа с информацией об алерте
// @Description DTO для ответа с информацией об алерте
type AlertResponse struct {
	ID            uuid.UUID  `json:"id"`
	SiteID        uuid.UUID  `json:"site_id"`
	Level         string     `json:"level"`
	Status        string     `json:"status"`
	Source        string     `json:"source"`
	Message       string     `json:"message"`
	BuildingID    *uuid.UUID `json:"building_id,omitempty"`
	BuildingName  string     `json:"building_name,omitempty"`
	Room          string     `json:"room,omitempty"`
	Floor         string     `json:"floor,omitempty"`
	Latitude      *float64   `json:"latitude,omitempty"`
	Longitude     *float64   `json:"longitude,omitempty"`
	TriggeredByID uuid.UUID  `json:"triggered_by_id"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// RFIDScanRequest DTO для вебхука RFID-сканирования в автобусе
// @Description DTO для вебхука RFID-сканирования в автобусе
type RFIDScanRequest struct {
	StudentCardID uuid.UUID `json:"student_card_id" validate:"required"`
	StudentName   string    `json:"student_name" validate:"required"`
	BusID         uuid.UUID `json:"bus_id" validate:"required"`
	BusNumber     string    `json:"bus_number,omitempty"`
	ScanType      string    `json:"scan_type" validate:"required,oneof=BOARD EXIT"`
	ScannedAt     time.Time `json:"scanned_at" validate:"required"`
}

// GPSUpdateRequest DTO для вебхука GPS-обновления автобуса
// @Description DTO для вебхука GPS-обновления автобуса
type GPSUpdateRequest struct {
	BusID     uuid.UUID `json:"bus_id" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"required,latitude"`
	Longitude float64   `json:"longitude" validate:"required,longitude"`
}

// JobAcceptedResponse DTO для подтверждения постановки задания в очередь
// @Description DTO для подтверждения постановки задания в очередь
type JobAcceptedResponse struct {
	JobID string `json:"job_id"`
}
