package jobs_test

import (
	"context"
	"testing"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs/mocks"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLockdownHandler_Success(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	lockdownsMock := mocks.NewMockLockdownRepository(ctrl)
	adapterMock := mocks.NewMockLockdownAdapter(ctrl)
	handler := jobs.NewLockdownHandler(lockdownsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	payload := jobs.LockdownJobPayload{
		AlertID:       uuid.New(),
		SiteID:        uuid.New(),
		BuildingID:    uuid.New(),
		TriggeredByID: uuid.New(),
	}

	// Ожидания
	adapterMock.EXPECT().Lockdown(ctx, payload).Return(nil)
	lockdownsMock.EXPECT().
		LockBuildingDoors(ctx, gomock.Any()).
		Do(func(_ context.Context, cmd *models.LockdownCommand) {
			assert.Equal(t, payload.AlertID, cmd.AlertID)
			assert.Equal(t, models.ScopeBuilding, cmd.Scope)
			assert.Equal(t, payload.BuildingID, cmd.TargetID)
			assert.Equal(t, payload.TriggeredByID, cmd.InitiatedByID)
		}).Return(int64(14), nil)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.NoError(t, err)
}

func TestLockdownHandler_AdapterFailure(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	lockdownsMock := mocks.NewMockLockdownRepository(ctrl)
	adapterMock := mocks.NewMockLockdownAdapter(ctrl)
	handler := jobs.NewLockdownHandler(lockdownsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	payload := jobs.LockdownJobPayload{AlertID: uuid.New(), BuildingID: uuid.New()}

	// Ожидания: команда не фиксируется, если адаптер недоступен
	adapterMock.EXPECT().Lockdown(ctx, payload).Return(assert.AnError)
	lockdownsMock.EXPECT().LockBuildingDoors(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}
