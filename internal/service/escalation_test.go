package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	queue_mocks "github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue/mocks"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/service/mocks"
)

func newTestEscalationPolicy(t *testing.T) (*TimeoutEscalationPolicy, *mocks.MockAlertRepository, *queue_mocks.MockEnqueuer) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	enqueuerMock := queue_mocks.NewMockEnqueuer(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})

	return NewTimeoutEscalationPolicy(repoMock, enqueuerMock, logger), repoMock, enqueuerMock
}

func TestEscalate_LockdownCascade(t *testing.T) {
	// Подготовка
	policy, repoMock, enqueuerMock := newTestEscalationPolicy(t)
	ctx := context.Background()
	buildingID := uuid.New()
	alert := &models.Alert{
		ID:            uuid.New(),
		SiteID:        uuid.New(),
		Level:         models.LevelActiveThreat,
		Status:        models.StatusTriggered,
		Message:       "Intruder in main hall",
		BuildingID:    &buildingID,
		TriggeredByID: uuid.New(),
	}

	// Ожидания: эскалация в бд, затем блокировка и повторное уведомление
	repoMock.EXPECT().
		EscalateAlert(ctx, alert.ID, models.LevelActiveThreat, models.LevelLockdown, "timeout").
		Return(true, nil)
	enqueuerMock.EXPECT().
		Enqueue(ctx, jobs.JobLockdown, gomock.Any(), time.Duration(0)).
		Return("job-1", nil)
	enqueuerMock.EXPECT().
		Enqueue(ctx, jobs.JobNotifyStaff, gomock.Any(), time.Duration(0)).
		Return("job-2", nil)

	// Действие
	err := policy.Escalate(ctx, alert, models.LevelLockdown)

	// Проверки
	require.NoError(t, err)
}

func TestEscalate_SkipsWhenAlreadyActedOn(t *testing.T) {
	// Подготовка: бд отказала в эскалации - алерт уже не TRIGGERED
	policy, repoMock, enqueuerMock := newTestEscalationPolicy(t)
	ctx := context.Background()
	alert := &models.Alert{
		ID:      uuid.New(),
		SiteID:  uuid.New(),
		Level:   models.LevelActiveThreat,
		Message: "Intruder in main hall",
	}

	// Ожидания: никаких последующих заданий
	repoMock.EXPECT().
		EscalateAlert(ctx, alert.ID, models.LevelActiveThreat, models.LevelLockdown, "timeout").
		Return(false, nil)
	enqueuerMock.EXPECT().Enqueue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := policy.Escalate(ctx, alert, models.LevelLockdown)

	// Проверки
	require.NoError(t, err)
}

func TestEscalate_NoLockdownWithoutBuilding(t *testing.T) {
	// Подготовка
	policy, repoMock, enqueuerMock := newTestEscalationPolicy(t)
	ctx := context.Background()
	alert := &models.Alert{
		ID:      uuid.New(),
		SiteID:  uuid.New(),
		Level:   models.LevelFire,
		Message: "Fire alarm",
	}

	// Ожидания: без здания ставится только уведомление персонала
	repoMock.EXPECT().
		EscalateAlert(ctx, alert.ID, models.LevelFire, models.LevelLockdown, "timeout").
		Return(true, nil)
	enqueuerMock.EXPECT().Enqueue(ctx, jobs.JobLockdown, gomock.Any(), gomock.Any()).Times(0)
	enqueuerMock.EXPECT().
		Enqueue(ctx, jobs.JobNotifyStaff, gomock.Any(), time.Duration(0)).
		Return("job-1", nil)

	// Действие
	err := policy.Escalate(ctx, alert, models.LevelLockdown)

	// Проверки
	require.NoError(t, err)
}
