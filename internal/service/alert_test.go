package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	queue_mocks "github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue/mocks"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/service/mocks"
)

// newTestAlertService — вспомогательная функция для создания сервиса с моками.
func newTestAlertService(t *testing.T) (*alertService, *mocks.MockAlertRepository, *queue_mocks.MockEnqueuer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	enqueuerMock := queue_mocks.NewMockEnqueuer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	service := NewAlertService(repoMock, enqueuerMock, logger, 120*time.Second, 15*time.Second)
	return service.(*alertService), repoMock, enqueuerMock
}

func TestTriggerAlert_ActiveThreat_FullCascade(t *testing.T) {
	// Подготовка
	service, repoMock, enqueuerMock := newTestAlertService(t)
	ctx := context.Background()
	buildingID := uuid.New()
	alert := &models.Alert{
		SiteID:        uuid.New(),
		Level:         models.LevelActiveThreat,
		Source:        models.SourcePanic,
		Message:       "Intruder reported in main hall",
		BuildingID:    &buildingID,
		TriggeredByID: uuid.New(),
	}

	// Ожидания: уведомление персонала, вызов 911, блокировка и отложенная эскалация
	repoMock.EXPECT().
		CreateAlert(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		})
	enqueuerMock.EXPECT().
		Enqueue(ctx, jobs.JobNotifyStaff, gomock.Any(), time.Duration(0)).
		Return("job-1", nil)
	enqueuerMock.EXPECT().
		Enqueue(ctx, jobs.JobDispatch, gomock.Any(), time.Duration(0)).
		Return("job-2", nil)
	enqueuerMock.EXPECT().
		Enqueue(ctx, jobs.JobLockdown, gomock.Any(), time.Duration(0)).
		DoAndReturn(func(_ context.Context, _ string, payload any, _ time.Duration) (string, error) {
			lockdown, ok := payload.(jobs.LockdownJobPayload)
			require.True(t, ok)
			assert.Equal(t, buildingID, lockdown.BuildingID)
			return "job-3", nil
		})
	enqueuerMock.EXPECT().
		Enqueue(ctx, jobs.JobEscalate, gomock.Any(), 120*time.Second).
		DoAndReturn(func(_ context.Context, _ string, payload any, _ time.Duration) (string, error) {
			escalate, ok := payload.(jobs.EscalateJobPayload)
			require.True(t, ok)
			assert.Equal(t, models.LevelActiveThreat, escalate.CurrentLevel)
			assert.Equal(t, models.LevelLockdown, escalate.NextLevel)
			return "job-4", nil
		})

	// Действие
	err := service.TriggerAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.StatusTriggered, alert.Status)
}

func TestTriggerAlert_Fire_UsesShortEscalationWindow(t *testing.T) {
	// Подготовка
	service, repoMock, enqueuerMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{
		SiteID:        uuid.New(),
		Level:         models.LevelFire,
		Source:        models.SourceFirePanel,
		Message:       "Fire alarm, building A",
		TriggeredByID: uuid.New(),
	}

	// Ожидания: эскалация планируется в окне подтверждения пожарной сигнализации
	repoMock.EXPECT().
		CreateAlert(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		})
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobNotifyStaff, gomock.Any(), time.Duration(0)).Return("job-1", nil)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobDispatch, gomock.Any(), time.Duration(0)).Return("job-2", nil)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobEscalate, gomock.Any(), 15*time.Second).Return("job-3", nil)

	// Действие
	err := service.TriggerAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
}

func TestTriggerAlert_ActiveThreatWithoutBuilding_SkipsLockdown(t *testing.T) {
	// Подготовка
	service, repoMock, enqueuerMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{
		SiteID:        uuid.New(),
		Level:         models.LevelActiveThreat,
		Message:       "Threat reported outdoors",
		TriggeredByID: uuid.New(),
	}

	// Ожидания: блокировка не ставится в очередь без привязки к зданию
	repoMock.EXPECT().
		CreateAlert(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		})
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobNotifyStaff, gomock.Any(), time.Duration(0)).Return("job-1", nil)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobDispatch, gomock.Any(), time.Duration(0)).Return("job-2", nil)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobLockdown, gomock.Any(), gomock.Any()).Times(0)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobEscalate, gomock.Any(), 120*time.Second).Return("job-3", nil)

	// Действие
	err := service.TriggerAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
}

func TestTriggerAlert_Medical_NoLockdownNoEscalation(t *testing.T) {
	// Подготовка
	service, repoMock, enqueuerMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{
		SiteID:        uuid.New(),
		Level:         models.LevelMedical,
		Message:       "Student injury, gym",
		TriggeredByID: uuid.New(),
	}

	// Ожидания: медицинский алерт требует 911 и персонал, но не блокировку
	repoMock.EXPECT().
		CreateAlert(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		})
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobNotifyStaff, gomock.Any(), time.Duration(0)).Return("job-1", nil)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobDispatch, gomock.Any(), time.Duration(0)).Return("job-2", nil)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobLockdown, gomock.Any(), gomock.Any()).Times(0)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobEscalate, gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.TriggerAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
}

func TestTriggerAlert_AllClear_OnlyNotifiesStaff(t *testing.T) {
	// Подготовка
	service, repoMock, enqueuerMock := newTestAlertService(t)
	ctx := context.Background()
	alert := &models.Alert{
		SiteID:        uuid.New(),
		Level:         models.LevelAllClear,
		Message:       "All clear",
		TriggeredByID: uuid.New(),
	}

	// Ожидания
	repoMock.EXPECT().
		CreateAlert(ctx, alert).
		DoAndReturn(func(_ context.Context, a *models.Alert) error {
			a.ID = uuid.New()
			return nil
		})
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobNotifyStaff, gomock.Any(), time.Duration(0)).Return("job-1", nil)

	// Действие
	err := service.TriggerAlert(ctx, alert)

	// Проверки
	require.NoError(t, err)
}

func TestAcknowledgeAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetAlertByID(ctx, alertID).
		Return(&models.Alert{ID: alertID, Status: models.StatusTriggered}, nil)
	repoMock.EXPECT().
		UpdateAlertStatus(ctx, alertID, models.StatusAcknowledged).
		Return(nil)

	// Действие
	err := service.AcknowledgeAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
}

func TestAcknowledgeAlert_RejectsNonTriggered(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания: статус уже RESOLVED, перевод запрещен
	repoMock.EXPECT().
		GetAlertByID(ctx, alertID).
		Return(&models.Alert{ID: alertID, Status: models.StatusResolved}, nil)
	repoMock.EXPECT().UpdateAlertStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := service.AcknowledgeAlert(ctx, alertID)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot acknowledge")
}

func TestResolveAlert_Success(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetAlertByID(ctx, alertID).
		Return(&models.Alert{ID: alertID, Status: models.StatusAcknowledged}, nil)
	repoMock.EXPECT().
		UpdateAlertStatus(ctx, alertID, models.StatusResolved).
		Return(nil)

	// Действие
	err := service.ResolveAlert(ctx, alertID)

	// Проверки
	require.NoError(t, err)
}

func TestResolveAlert_AlreadyClosed(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestAlertService(t)
	ctx := context.Background()
	alertID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetAlertByID(ctx, alertID).
		Return(&models.Alert{ID: alertID, Status: models.StatusCancelled}, nil)

	// Действие
	err := service.ResolveAlert(ctx, alertID)

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already closed")
}
