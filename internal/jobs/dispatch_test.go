package jobs_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs/mocks"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func TestDispatchHandler_StoreThenAdapterOrdering(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	adapterMock := mocks.NewMockDispatchAdapter(ctrl)
	handler := jobs.NewDispatchHandler(alertsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	alertID := uuid.New()
	payload := jobs.DispatchJobPayload{
		AlertID: alertID,
		SiteID:  uuid.New(),
		Level:   models.LevelActiveThreat,
		Message: "Weapons detector triggered",
	}

	// Ожидания: локальные записи строго до вызова адаптера
	recordCall := alertsMock.EXPECT().
		CreateDispatchRecord(ctx, gomock.Any()).
		Do(func(_ context.Context, record *models.DispatchRecord) {
			assert.Equal(t, alertID, record.AlertID)
			assert.Equal(t, models.DispatchMethodConsole, record.Method)
			assert.Equal(t, models.DispatchStatusSent, record.Status)
			assert.NotNil(t, record.ConfirmedAt)
		}).Return(nil)
	statusCall := alertsMock.EXPECT().
		UpdateAlertStatus(ctx, alertID, models.StatusDispatched).
		Return(nil)
	adapterCall := adapterMock.EXPECT().
		Dispatch(ctx, payload).
		Return(nil)
	gomock.InOrder(recordCall, statusCall, adapterCall)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.NoError(t, err)
}

func TestDispatchHandler_AdapterFailureSurfacesAfterStoreWrites(t *testing.T) {
	// Подготовка: ошибка адаптера всплывает в очередь, локальные записи
	// не откатываются (at-least-once, а не exactly-once)
	ctrl := gomock.NewController(t)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	adapterMock := mocks.NewMockDispatchAdapter(ctrl)
	handler := jobs.NewDispatchHandler(alertsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	payload := jobs.DispatchJobPayload{AlertID: uuid.New(), SiteID: uuid.New(), Level: models.LevelFire}

	// Ожидания
	alertsMock.EXPECT().CreateDispatchRecord(ctx, gomock.Any()).Return(nil)
	alertsMock.EXPECT().UpdateAlertStatus(ctx, payload.AlertID, models.StatusDispatched).Return(nil)
	adapterMock.EXPECT().Dispatch(ctx, payload).Return(assert.AnError)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestDispatchHandler_RecordFailureSkipsAdapter(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	alertsMock := mocks.NewMockAlertRepository(ctrl)
	adapterMock := mocks.NewMockDispatchAdapter(ctrl)
	handler := jobs.NewDispatchHandler(alertsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	payload := jobs.DispatchJobPayload{AlertID: uuid.New(), SiteID: uuid.New(), Level: models.LevelMedical}

	// Ожидания: при отказе записи адаптер не вызывается
	alertsMock.EXPECT().CreateDispatchRecord(ctx, gomock.Any()).Return(assert.AnError)
	adapterMock.EXPECT().Dispatch(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.Error(t, err)
}
