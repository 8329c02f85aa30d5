package jobs_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs/mocks"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newEscalateHandler(t *testing.T) (*jobs.EscalateHandler, *mocks.MockAlertRepository, *mocks.MockEscalationPolicy) {
	t.Helper()
	ctrl := gomock.NewController(t)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	policyMock := mocks.NewMockEscalationPolicy(ctrl)
	handler, err := jobs.NewEscalateHandler(alertsMock, policyMock, newTestLogger())
	require.NoError(t, err)
	return handler, alertsMock, policyMock
}

func TestNewEscalateHandler_RequiresPolicy(t *testing.T) {
	// Отсутствие политики - ошибка сборки, а не повод для запасной ветки
	ctrl := gomock.NewController(t)
	_, err := jobs.NewEscalateHandler(mocks.NewMockAlertRepository(ctrl), nil, newTestLogger())
	require.Error(t, err)
}

func TestEscalateHandler_EscalatesTriggeredAlert(t *testing.T) {
	// Подготовка
	handler, alertsMock, policyMock := newEscalateHandler(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:     alertID,
		Level:  models.LevelActiveThreat,
		Status: models.StatusTriggered,
	}
	payload := jobs.EscalateJobPayload{
		AlertID:      alertID,
		CurrentLevel: models.LevelActiveThreat,
		NextLevel:    models.LevelLockdown,
	}

	// Ожидания
	alertsMock.EXPECT().GetAlertByID(ctx, alertID).Return(alert, nil)
	policyMock.EXPECT().Escalate(ctx, alert, models.LevelLockdown).Return(nil)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.NoError(t, err)
}

func TestEscalateHandler_NoOpWhenAcknowledged(t *testing.T) {
	// Подготовка: человек уже подтвердил алерт до срабатывания таймера
	handler, alertsMock, policyMock := newEscalateHandler(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{
		ID:     alertID,
		Level:  models.LevelActiveThreat,
		Status: models.StatusAcknowledged,
	}
	payload := jobs.EscalateJobPayload{
		AlertID:      alertID,
		CurrentLevel: models.LevelActiveThreat,
		NextLevel:    models.LevelLockdown,
	}

	// Ожидания: политика не вызывается, уровень не меняется
	alertsMock.EXPECT().GetAlertByID(ctx, alertID).Return(alert, nil)
	policyMock.EXPECT().Escalate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки: no-op, без ошибки
	require.NoError(t, err)
	assert.Equal(t, models.LevelActiveThreat, alert.Level)
}

func TestEscalateHandler_NoOpWhenResolved(t *testing.T) {
	// Подготовка
	handler, alertsMock, policyMock := newEscalateHandler(t)
	ctx := context.Background()
	alertID := uuid.New()
	alert := &models.Alert{ID: alertID, Status: models.StatusResolved}

	// Ожидания
	alertsMock.EXPECT().GetAlertByID(ctx, alertID).Return(alert, nil)
	policyMock.EXPECT().Escalate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, jobs.EscalateJobPayload{AlertID: alertID}))

	// Проверки
	require.NoError(t, err)
}

func TestEscalateHandler_NoOpWhenAlertGone(t *testing.T) {
	// Подготовка: алерт не найден - задание молча завершается
	handler, alertsMock, policyMock := newEscalateHandler(t)
	ctx := context.Background()
	alertID := uuid.New()
	notFound := fmt.Errorf("alert with id %s: %w", alertID, models.ErrAlertNotFound)

	// Ожидания
	alertsMock.EXPECT().GetAlertByID(ctx, alertID).Return(nil, notFound)
	policyMock.EXPECT().Escalate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, jobs.EscalateJobPayload{AlertID: alertID}))

	// Проверки: не ошибка, повтор очереди не нужен
	require.NoError(t, err)
}

func TestEscalateHandler_TransientReadErrorRetried(t *testing.T) {
	// Подготовка: временный сбой чтения не должен отменять эскалацию -
	// ошибка уходит в очередь, и задание будет повторено
	handler, alertsMock, policyMock := newEscalateHandler(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	alertsMock.EXPECT().GetAlertByID(ctx, alertID).Return(nil, assert.AnError)
	policyMock.EXPECT().Escalate(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, jobs.EscalateJobPayload{
		AlertID:   alertID,
		NextLevel: models.LevelLockdown,
	}))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
