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

func TestNotifyStaffHandler_Success(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)
	adapterMock := mocks.NewMockNotificationAdapter(ctrl)
	handler := jobs.NewNotifyStaffHandler(notificationsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	payload := jobs.NotifyStaffJobPayload{
		AlertID: uuid.New(),
		SiteID:  uuid.New(),
		Level:   models.LevelFire,
		Message: "Fire alarm in building A",
	}

	// Ожидания
	adapterMock.EXPECT().
		Notify(ctx, gomock.Any()).
		Do(func(_ context.Context, np jobs.NotificationPayload) {
			assert.Equal(t, payload.Message, np.Message)
			assert.Equal(t, payload.SiteID, np.SiteID)
		}).Return(nil)
	notificationsMock.EXPECT().
		CreateNotificationLog(ctx, gomock.Any()).
		Do(func(_ context.Context, entry *models.NotificationLog) {
			assert.Equal(t, models.NotificationChannelAll, entry.Channel)
			assert.Equal(t, models.NotificationStatusSent, entry.Status)
			assert.Equal(t, payload.Message, entry.Message)
		}).Return(nil)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.NoError(t, err)
}

func TestMassNotifyHandler_FlipsQueuedRow(t *testing.T) {
	// Подготовка: для пары (площадка, сообщение) уже есть QUEUED-запись
	ctrl := gomock.NewController(t)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)
	adapterMock := mocks.NewMockNotificationAdapter(ctrl)
	handler := jobs.NewMassNotifyHandler(notificationsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	siteID := uuid.New()
	payload := jobs.MassNotifyJobPayload{
		SiteID:         siteID,
		Channels:       []string{models.ChannelSMS, models.ChannelEmail, models.ChannelPush, models.ChannelPA},
		Message:        "Severe weather: Tornado Warning",
		RecipientScope: "all-staff",
	}

	// Ожидания: запись переводится в SENT, новая не создается
	adapterMock.EXPECT().Notify(ctx, gomock.Any()).Return(nil)
	notificationsMock.EXPECT().
		MarkQueuedNotificationSent(ctx, siteID, payload.Message).
		Return(true, nil)
	notificationsMock.EXPECT().CreateNotificationLog(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.NoError(t, err)
}

func TestMassNotifyHandler_PassesRecipientScopeToAdapter(t *testing.T) {
	// Подготовка: сторона доставки должна отличать "all-staff" от явного
	// списка получателей
	ctrl := gomock.NewController(t)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)
	adapterMock := mocks.NewMockNotificationAdapter(ctrl)
	handler := jobs.NewMassNotifyHandler(notificationsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	recipientIDs := []uuid.UUID{uuid.New(), uuid.New()}
	payload := jobs.MassNotifyJobPayload{
		SiteID:         uuid.New(),
		Channels:       []string{models.ChannelSMS},
		Message:        "Reunification point moved to the gym",
		RecipientScope: "explicit",
		RecipientIDs:   recipientIDs,
	}

	// Ожидания
	adapterMock.EXPECT().
		Notify(ctx, gomock.Any()).
		Do(func(_ context.Context, np jobs.NotificationPayload) {
			assert.Equal(t, "explicit", np.RecipientScope)
			assert.Equal(t, recipientIDs, np.RecipientIDs)
		}).Return(nil)
	notificationsMock.EXPECT().
		MarkQueuedNotificationSent(ctx, payload.SiteID, payload.Message).
		Return(false, nil)
	notificationsMock.EXPECT().CreateNotificationLog(ctx, gomock.Any()).Return(nil)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.NoError(t, err)
}

func TestMassNotifyHandler_CreatesRowWhenNoQueued(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)
	adapterMock := mocks.NewMockNotificationAdapter(ctrl)
	handler := jobs.NewMassNotifyHandler(notificationsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	payload := jobs.MassNotifyJobPayload{
		SiteID:         uuid.New(),
		Channels:       []string{models.ChannelSMS},
		Message:        "Early dismissal today",
		RecipientScope: "all-staff",
	}

	// Ожидания
	adapterMock.EXPECT().Notify(ctx, gomock.Any()).Return(nil)
	notificationsMock.EXPECT().
		MarkQueuedNotificationSent(ctx, payload.SiteID, payload.Message).
		Return(false, nil)
	notificationsMock.EXPECT().
		CreateNotificationLog(ctx, gomock.Any()).
		Do(func(_ context.Context, entry *models.NotificationLog) {
			assert.Equal(t, models.NotificationStatusSent, entry.Status)
		}).Return(nil)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.NoError(t, err)
}

func TestMassNotifyHandler_AdapterFailure(t *testing.T) {
	// Подготовка
	ctrl := gomock.NewController(t)
	notificationsMock := mocks.NewMockNotificationRepository(ctrl)
	adapterMock := mocks.NewMockNotificationAdapter(ctrl)
	handler := jobs.NewMassNotifyHandler(notificationsMock, adapterMock, newTestLogger())

	ctx := context.Background()
	payload := jobs.MassNotifyJobPayload{SiteID: uuid.New(), Message: "msg"}

	// Ожидания: журнал не трогаем, ошибка уходит в очередь на повтор
	adapterMock.EXPECT().Notify(ctx, gomock.Any()).Return(assert.AnError)
	notificationsMock.EXPECT().MarkQueuedNotificationSent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	err := handler.Handle(ctx, mustMarshal(t, payload))

	// Проверки
	require.Error(t, err)
}
