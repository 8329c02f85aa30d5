package models

import (
	"time"

	"github.com/google/uuid"
)

// NotificationLog - один батч уведомлений (не один получатель)
type NotificationLog struct {
	ID             uuid.UUID  `json:"id"`
	AlertID        *uuid.UUID `json:"alert_id,omitempty"`
	SiteID         uuid.UUID  `json:"site_id"`
	Channel        string     `json:"channel"`
	RecipientCount int        `json:"recipient_count"`
	Message        string     `json:"message"`
	Status         string     `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

const (
	NotificationChannelAll = "ALL"

	NotificationStatusQueued = "QUEUED"
	NotificationStatusSent   = "SENT"
)

// Каналы доставки, используемые при подборе каналов на контакт
const (
	ChannelSMS   = "SMS"
	ChannelEmail = "EMAIL"
	ChannelPush  = "PUSH"
	ChannelPA    = "PA"
)
