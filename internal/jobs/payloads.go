package jobs

import (
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/google/uuid"
)

// Имена заданий очереди
const (
	JobDispatch    = "dispatch-911"
	JobLockdown    = "auto-lockdown"
	JobNotifyStaff = "notify-staff"
	JobMassNotify  = "mass-notify"
	JobEscalate    = "auto-escalate"
	JobRFIDScan    = "process-rfid-scan"
	JobGPSUpdate   = "process-gps-update"
	JobPollSocial  = "poll-social-media"
	JobPollWeather = "poll-weather"
)

// Типы RFID-сканирования
const (
	ScanTypeBoard = "BOARD"
	ScanTypeExit  = "EXIT"
)

// DispatchJobPayload - нагрузка задания dispatch-911
type DispatchJobPayload struct {
	AlertID      uuid.UUID         `json:"alert_id"`
	SiteID       uuid.UUID         `json:"site_id"`
	Level        models.AlertLevel `json:"level"`
	Message      string            `json:"message"`
	BuildingName string            `json:"building_name,omitempty"`
	Room         string            `json:"room,omitempty"`
	Floor        string            `json:"floor,omitempty"`
	Latitude     *float64          `json:"latitude,omitempty"`
	Longitude    *float64          `json:"longitude,omitempty"`
}

// LockdownJobPayload - нагрузка задания auto-lockdown
type LockdownJobPayload struct {
	AlertID       uuid.UUID `json:"alert_id"`
	SiteID        uuid.UUID `json:"site_id"`
	BuildingID    uuid.UUID `json:"building_id"`
	TriggeredByID uuid.UUID `json:"triggered_by_id"`
}

// NotifyStaffJobPayload - нагрузка задания notify-staff
type NotifyStaffJobPayload struct {
	AlertID uuid.UUID         `json:"alert_id"`
	SiteID  uuid.UUID         `json:"site_id"`
	Level   models.AlertLevel `json:"level"`
	Message string            `json:"message"`
}

// MassNotifyJobPayload - нагрузка задания mass-notify
type MassNotifyJobPayload struct {
	AlertID        *uuid.UUID  `json:"alert_id,omitempty"`
	SiteID         uuid.UUID   `json:"site_id"`
	Channels       []string    `json:"channels"`
	Message        string      `json:"message"`
	RecipientScope string      `json:"recipient_scope"`
	RecipientIDs   []uuid.UUID `json:"recipient_ids,omitempty"`
}

// EscalateJobPayload - нагрузка задания auto-escalate
type EscalateJobPayload struct {
	AlertID      uuid.UUID         `json:"alert_id"`
	CurrentLevel models.AlertLevel `json:"current_level"`
	NextLevel    models.AlertLevel `json:"next_level"`
}

// RFIDScanJobPayload - нагрузка задания process-rfid-scan
type RFIDScanJobPayload struct {
	StudentCardID uuid.UUID `json:"student_card_id"`
	StudentName   string    `json:"student_name"`
	BusID         uuid.UUID `json:"bus_id"`
	BusNumber     string    `json:"bus_number"`
	ScanType      string    `json:"scan_type"`
	ScannedAt     time.Time `json:"scanned_at"`
}

// GPSUpdateJobPayload - нагрузка задания process-gps-update
type GPSUpdateJobPayload struct {
	BusID     uuid.UUID `json:"bus_id"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
}

// PollSocialJobPayload - нагрузка задания poll-social-media.
// Since - водяной знак; при отсутствии используется окно по умолчанию.
type PollSocialJobPayload struct {
	Since *time.Time `json:"since,omitempty"`
}

// PollWeatherJobPayload - нагрузка задания poll-weather
type PollWeatherJobPayload struct{}
