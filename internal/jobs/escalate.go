package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/sirupsen/logrus"
)

// EscalateHandler обрабатывает задание auto-escalate. Задание обычно
// ставится с задержкой в момент создания алерта, поэтому к моменту
// срабатывания мир мог измениться: обработчик перечитывает текущий статус
// и молча выходит, если алерт уже не TRIGGERED.
type EscalateHandler struct {
	alerts AlertRepository
	policy EscalationPolicy
	logger *logrus.Logger
}

// NewEscalateHandler создает новый EscalateHandler. Политика эскалации
// обязательна: ее отсутствие - ошибка сборки приложения, а не повод для
// дублирующей ветки логики в обработчике.
func NewEscalateHandler(alerts AlertRepository, policy EscalationPolicy, logger *logrus.Logger) (*EscalateHandler, error) {
	if policy == nil {
		return nil, fmt.Errorf("escalation policy is required")
	}
	return &EscalateHandler{
		alerts: alerts,
		policy: policy,
		logger: logger,
	}, nil
}

// Handle перечитывает алерт и эскалирует его через политику, только если
// статус все еще TRIGGERED. Без этой проверки возможна двойная эскалация
// или эскалация уже закрытого алерта.
func (h *EscalateHandler) Handle(ctx context.Context, payload json.RawMessage) error {
	var input EscalateJobPayload
	if err := json.Unmarshal(payload, &input); err != nil {
		return fmt.Errorf("failed to unmarshal escalate payload: %w", err)
	}

	log := h.logger.WithFields(logrus.Fields{
		"job":        JobEscalate,
		"alert_id":   input.AlertID,
		"next_level": input.NextLevel,
	})

	alert, err := h.alerts.GetAlertByID(ctx, input.AlertID)
	if err != nil {
		if errors.Is(err, models.ErrAlertNotFound) {
			// Алерта больше нет - эскалировать нечего
			log.Info("Alert not found, skipping escalation")
			return nil
		}
		// Временная ошибка чтения не должна отменять эскалацию -
		// возвращаем ее в очередь на повтор
		log.WithError(err).Error("Failed to re-read alert")
		return fmt.Errorf("failed to re-read alert: %w", err)
	}

	if alert.Status != models.StatusTriggered {
		log.WithField("status", alert.Status).Info("Alert already acted on, skipping escalation")
		return nil
	}

	if err := h.policy.Escalate(ctx, alert, input.NextLevel); err != nil {
		log.WithError(err).Error("Escalation policy failed")
		return fmt.Errorf("escalation policy: %w", err)
	}

	log.WithField("from_level", input.CurrentLevel).Info("Alert auto-escalated")
	return nil
}
