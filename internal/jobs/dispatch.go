package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// dispatchResponseMs - фиксированная задержка ответа консоли,
// пока адаптер не сообщает собственную
const dispatchResponseMs = 150

// DispatchHandler обрабатывает задание dispatch-911
type DispatchHandler struct {
	alerts  AlertRepository
	adapter DispatchAdapter
	logger  *logrus.Logger
}

// NewDispatchHandler создает новый DispatchHandler
func NewDispatchHandler(alerts AlertRepository, adapter DispatchAdapter, logger *logrus.Logger) *DispatchHandler {
	return &DispatchHandler{
		alerts:  alerts,
		adapter: adapter,
		logger:  logger,
	}
}

// Handle создает DispatchRecord, переводит алерт в DISPATCHED и затем
// вызывает адаптер. Порядок store-then-adapter принципиален: локальное
// состояние должно быть надежно записано до медленного внешнего вызова.
// Ошибка адаптера всплывает в очередь и приводит к повтору задания.
func (h *DispatchHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input DispatchJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal dispatch payload: %w", err)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":      JobDispatch,
		"alert_id": input.AlertID,
		"level":    input.Level,
	})
	log.Info("Dispatching alert to emergency services")

	now := time.Now().UTC()
	record := &models.DispatchRecord{
		AlertID:     input.AlertID,
		Method:      models.DispatchMethodConsole,
		Status:      models.DispatchStatusSent,
		SentAt:      now,
		ConfirmedAt: &now,
		ResponseMs:  dispatchResponseMs,
	}
	if err := h.alerts.CreateDispatchRecord(ctx, record); err != nil {
		log.WithError(err).Error("Failed to create dispatch record")
		return fmt.Errorf("failed to create dispatch record: %w", err)
	}

	// Статус DISPATCHED допустим только после появления DispatchRecord
	if err := h.alerts.UpdateAlertStatus(ctx, input.AlertID, models.StatusDispatched); err != nil {
		log.WithError(err).Error("Failed to update alert status")
		return fmt.Errorf("failed to mark alert dispatched: %w", err)
	}

	if err := h.adapter.Dispatch(ctx, input); err != nil {
		log.WithError(err).Error("Dispatch adapter call failed")
		return fmt.Errorf("dispatch adapter: %w", err)
	}

	log.Info("Alert dispatched successfully")
	return nil
}
