package adapters

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// httpSender - общий HTTP-клиент исходящих адаптеров. Каждый вызов - ровно
// одна попытка: повторы обеспечивает очередь заданий, а не адаптер.
type httpSender struct {
	httpClient *http.Client
	secret     string
	logger     *logrus.Logger
}

func newHTTPSender(secret string, timeout time.Duration, logger *logrus.Logger) *httpSender {
	return &httpSender{
		httpClient: &http.Client{Timeout: timeout},
		secret:     secret,
		logger:     logger,
	}
}

// postJSON отправляет подписанный JSON на url и требует 2xx в ответ
func (s *httpSender) postJSON(ctx context.Context, url string, body any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal adapter payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to create adapter request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	// Добавляем HMAC подпись, если ADAPTER_SECRET задан
	if s.secret != "" {
		req.Header.Set("X-Webhook-Signature", generateHMACSHA256(raw, s.secret))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("adapter request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("adapter returned status %d", resp.StatusCode)
	}

	s.logger.WithField("url", url).Debug("Adapter call delivered")
	return nil
}

// getJSON выполняет GET и декодирует тело ответа в out
func (s *httpSender) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create adapter request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("adapter request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("adapter returned status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read adapter response: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal adapter response: %w", err)
	}
	return nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data []byte, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}
