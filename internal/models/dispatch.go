package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchRecord - одна попытка передачи алерта в диспетчерскую службу (911).
// Принадлежит алерту (1:N, на практике обычно 1:1).
type DispatchRecord struct {
	ID            uuid.UUID  `json:"id"`
	AlertID       uuid.UUID  `json:"alert_id"`
	Method        string     `json:"method"`
	Status        string     `json:"status"`
	SentAt        time.Time  `json:"sent_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	ResponseMs    int        `json:"response_ms"`
	CreatedAt     time.Time  `json:"created_at"`
}

const (
	DispatchMethodConsole = "CONSOLE"
	DispatchStatusSent    = "SENT"
)
