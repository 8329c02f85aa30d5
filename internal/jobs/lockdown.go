package jobs

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// LockdownHandler обрабатывает задание auto-lockdown
type LockdownHandler struct {
	lockdowns LockdownRepository
	adapter   LockdownAdapter
	logger    *logrus.Logger
}

// NewLockdownHandler создает новый LockdownHandler
func NewLockdownHandler(lockdowns LockdownRepository, adapter LockdownAdapter, logger *logrus.Logger) *LockdownHandler {
	return &LockdownHandler{
		lockdowns: lockdowns,
		adapter:   adapter,
		logger:    logger,
	}
}

// Handle вызывает адаптер блокировки и фиксирует команду вместе с
// блокировкой дверей здания. Двери аварийных выходов не блокируются:
// у людей внутри должен оставаться путь эвакуации.
func (h *LockdownHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input LockdownJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal lockdown payload: %w", err)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":         JobLockdown,
		"alert_id":    input.AlertID,
		"building_id": input.BuildingID,
	})
	log.Info("Executing automatic building lockdown")

	if err := h.adapter.Lockdown(ctx, input); err != nil {
		log.WithError(err).Error("Lockdown adapter call failed")
		return fmt.Errorf("lockdown adapter: %w", err)
	}

	cmd := &models.LockdownCommand{
		AlertID:       input.AlertID,
		Scope:         models.ScopeBuilding,
		TargetID:      input.BuildingID,
		InitiatedByID: input.TriggeredByID,
	}
	locked, err := h.lockdowns.LockBuildingDoors(ctx, cmd)
	if err != nil {
		log.WithError(err).Error("Failed to record lockdown command")
		return fmt.Errorf("failed to record lockdown: %w", err)
	}

	log.WithField("doors_locked", locked).Info("Building lockdown recorded")
	return nil
}
