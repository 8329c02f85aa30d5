package jobs_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах
	return logger
}

func TestRouter_DispatchKnownJob(t *testing.T) {
	// Подготовка
	router := jobs.NewRouter(newTestLogger())
	called := false
	router.Register("dispatch-911", func(ctx context.Context, payload json.RawMessage) error {
		called = true
		return nil
	})

	// Действие
	handled, err := router.Dispatch(context.Background(), "dispatch-911", json.RawMessage(`{}`))

	// Проверки
	require.NoError(t, err)
	assert.True(t, handled)
	assert.True(t, called)
}

func TestRouter_UnknownJobNameDropped(t *testing.T) {
	// Подготовка
	router := jobs.NewRouter(newTestLogger())

	// Действие: неизвестное имя - не ошибка, задание просто отбрасывается
	handled, err := router.Dispatch(context.Background(), "job-added-in-v2", json.RawMessage(`{}`))

	// Проверки
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestRouter_HandlerErrorPropagates(t *testing.T) {
	// Подготовка: ошибка обработчика должна дойти до очереди,
	// повторы - ее ответственность, а не роутера
	router := jobs.NewRouter(newTestLogger())
	router.Register("auto-lockdown", func(ctx context.Context, payload json.RawMessage) error {
		return assert.AnError
	})

	// Действие
	handled, err := router.Dispatch(context.Background(), "auto-lockdown", json.RawMessage(`{}`))

	// Проверки
	assert.True(t, handled)
	assert.ErrorIs(t, err, assert.AnError)
}
