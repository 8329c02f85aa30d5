package adapters

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
)

func newTestLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return logger
}

func TestHTTPDispatchAdapter_SignsRequest(t *testing.T) {
	// Подготовка
	var gotBody []byte
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		gotSignature = r.Header.Get("X-Webhook-Signature")
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := NewHTTPDispatchAdapter(server.URL, "test-secret", 5*time.Second, newTestLogger())
	payload := jobs.DispatchJobPayload{
		AlertID: uuid.New(),
		SiteID:  uuid.New(),
		Message: "active threat reported",
	}

	// Действие
	err := adapter.Dispatch(context.Background(), payload)

	// Проверки
	require.NoError(t, err)

	var decoded jobs.DispatchJobPayload
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, payload.AlertID, decoded.AlertID)

	mac := hmac.New(sha256.New, []byte("test-secret"))
	mac.Write(gotBody)
	assert.Equal(t, hex.EncodeToString(mac.Sum(nil)), gotSignature)
}

func TestHTTPDispatchAdapter_NoSignatureWithoutSecret(t *testing.T) {
	// Подготовка
	var gotSignature string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSignature = r.Header.Get("X-Webhook-Signature")
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	adapter := NewHTTPDispatchAdapter(server.URL, "", 5*time.Second, newTestLogger())

	// Действие
	err := adapter.Dispatch(context.Background(), jobs.DispatchJobPayload{AlertID: uuid.New()})

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, gotSignature)
}

func TestHTTPLockdownAdapter_ErrorOnServerFailure(t *testing.T) {
	// Подготовка: внешняя система отвечает 500 - ошибка уходит в очередь на retry
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	adapter := NewHTTPLockdownAdapter(server.URL, "secret", 5*time.Second, newTestLogger())

	// Действие
	err := adapter.Lockdown(context.Background(), jobs.LockdownJobPayload{AlertID: uuid.New()})

	// Проверки
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestHTTPNotificationAdapter_SendsPayload(t *testing.T) {
	// Подготовка
	var gotBody []byte
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	adapter := NewHTTPNotificationAdapter(server.URL, "", 5*time.Second, newTestLogger())
	phone := "+15551230000"
	payload := jobs.NotificationPayload{
		SiteID:     uuid.New(),
		Message:    "Bus 42 is arriving at Main St",
		Channels:   []string{"SMS"},
		Recipients: []jobs.Recipient{{Name: "Jamie Doe", Phone: &phone}},
	}

	// Действие
	err := adapter.Notify(context.Background(), payload)

	// Проверки
	require.NoError(t, err)

	var decoded jobs.NotificationPayload
	require.NoError(t, json.Unmarshal(gotBody, &decoded))
	assert.Equal(t, payload.Message, decoded.Message)
	require.Len(t, decoded.Recipients, 1)
	assert.Equal(t, "Jamie Doe", decoded.Recipients[0].Name)
}

func TestNWSWeatherAdapter_ParsesFeatures(t *testing.T) {
	// Подготовка
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.String()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"features": [
				{"properties": {"id": "nws-1", "severity": "Extreme", "event": "Tornado Warning", "headline": "Tornado Warning issued"}},
				{"properties": {"id": "nws-2", "severity": "Minor", "event": "Frost Advisory"}}
			]
		}`))
	}))
	defer server.Close()

	adapter := NewNWSWeatherAdapter(server.URL, "", 5*time.Second, newTestLogger())

	// Действие
	events, err := adapter.GetActiveAlerts(context.Background(), 40.7128, -74.006)

	// Проверки
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "nws-1", events[0].ID)
	assert.Equal(t, "Extreme", events[0].Severity)
	assert.Equal(t, "Tornado Warning", events[0].Event)
	assert.Contains(t, gotPath, "/alerts/active?point=")
}

func TestSentinelSocialAdapter_PassesWatermark(t *testing.T) {
	// Подготовка
	var gotSince string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSince = r.URL.Query().Get("since")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"alerts": [{"id": "sm-1", "platform": "twitter", "severity": "CRITICAL", "content": "threat"}]}`))
	}))
	defer server.Close()

	adapter := NewSentinelSocialAdapter(server.URL, "", 5*time.Second, newTestLogger())
	since := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	// Действие
	events, err := adapter.PollAlerts(context.Background(), since)

	// Проверки
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "sm-1", events[0].ID)
	assert.Equal(t, "2026-03-01T12:00:00Z", gotSince)
	assert.Equal(t, "sentinel", adapter.Name())
}
