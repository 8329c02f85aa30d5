package models

import (
	"time"

	"github.com/google/uuid"
)

// LockdownScope - охват команды блокировки
type LockdownScope string

const (
	ScopeBuilding LockdownScope = "BUILDING"
	ScopeSite     LockdownScope = "SITE"
	ScopeZone     LockdownScope = "ZONE"
)

// LockdownCommand - команда блокировки дверей, привязанная к алерту
type LockdownCommand struct {
	ID            uuid.UUID     `json:"id"`
	AlertID       uuid.UUID     `json:"alert_id"`
	Scope         LockdownScope `json:"scope"`
	TargetID      uuid.UUID     `json:"target_id"`
	InitiatedByID uuid.UUID     `json:"initiated_by_id"`
	CreatedAt     time.Time     `json:"created_at"`
}

// Door - управляемая дверь здания. Двери аварийных выходов
// (IsEmergencyExit=true) никогда не блокируются автоматикой.
type Door struct {
	ID              uuid.UUID `json:"id"`
	BuildingID      uuid.UUID `json:"building_id"`
	Name            string    `json:"name"`
	Status          string    `json:"status"`
	IsEmergencyExit bool      `json:"is_emergency_exit"`
	UpdatedAt       time.Time `json:"updated_at"`
}

const (
	DoorStatusLocked   = "LOCKED"
	DoorStatusUnlocked = "UNLOCKED"
)
