package jobs

import (
	"context"
	"time"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/google/uuid"
)

// AlertRepository определяет контракт для работы с бд алертов
type AlertRepository interface {
	GetAlertByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	CreateAlert(ctx context.Context, alert *models.Alert) error
	UpdateAlertStatus(ctx context.Context, id uuid.UUID, status models.AlertStatus) error
	CreateDispatchRecord(ctx context.Context, record *models.DispatchRecord) error
	FindTriggeredWeatherAlert(ctx context.Context, siteID uuid.UUID, nwsAlertID string) (*models.Alert, error)
}

// LockdownRepository определяет контракт для команд блокировки и дверей
type LockdownRepository interface {
	// LockBuildingDoors в одной транзакции создает LockdownCommand и
	// блокирует все двери здания, кроме аварийных выходов; возвращает
	// количество заблокированных дверей
	LockBuildingDoors(ctx context.Context, cmd *models.LockdownCommand) (int64, error)
}

// NotificationRepository определяет контракт для журналов уведомлений
type NotificationRepository interface {
	CreateNotificationLog(ctx context.Context, entry *models.NotificationLog) error
	// MarkQueuedNotificationSent переводит существующую QUEUED-запись с тем же
	// сообщением и площадкой в SENT; возвращает false, если такой записи нет
	MarkQueuedNotificationSent(ctx context.Context, siteID uuid.UUID, message string) (bool, error)
}

// TransportRepository определяет контракт для транспортных данных
type TransportRepository interface {
	GetBusByID(ctx context.Context, busID uuid.UUID) (*models.Bus, error)
	// GetActiveRouteStops возвращает остановки активного маршрута автобуса
	// в порядке следования
	GetActiveRouteStops(ctx context.Context, busID uuid.UUID) ([]*models.Stop, error)
	GetContactsByStudentCard(ctx context.Context, cardID uuid.UUID) ([]*models.ParentContact, error)
	GetStudentCardsByStop(ctx context.Context, stopID uuid.UUID) ([]*models.StudentCard, error)
}

// SignalRepository определяет контракт для внешних сигналов и площадок
type SignalRepository interface {
	SocialAlertExists(ctx context.Context, externalID string) (bool, error)
	CreateSocialMediaAlert(ctx context.Context, alert *models.SocialMediaAlert) error
	// LinkSocialAlert привязывает уже сохраненное событие к синтезированному алерту
	LinkSocialAlert(ctx context.Context, externalID string, alertID uuid.UUID) error
	ListSitesWithCoordinates(ctx context.Context) ([]*models.Site, error)
	// GetPrimarySite возвращает основную площадку округа - к ней
	// привязываются алерты из сигналов без собственной геопривязки
	GetPrimarySite(ctx context.Context) (*models.Site, error)
	// GetSiteStaffUserID возвращает ID дежурного сотрудника площадки
	// или nil, если такого нет
	GetSiteStaffUserID(ctx context.Context, siteID uuid.UUID) (*uuid.UUID, error)
}

// CooldownStore - короткоживущие маркеры подавления повторных уведомлений
type CooldownStore interface {
	// TryAcquire ставит маркер с TTL и возвращает true, если маркера еще не было
	TryAcquire(ctx context.Context, key string, ttl time.Duration) (bool, error)
	// Release снимает маркер досрочно, чтобы повтор задания после сбоя
	// доставки не был подавлен собственным маркером
	Release(ctx context.Context, key string) error
}

// Recipient - получатель уведомления
type Recipient struct {
	Name  string  `json:"name"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty"`
}

// NotificationPayload - нормализованная нагрузка для адаптера уведомлений.
// Либо Recipients заполнен явно, либо RecipientScope/RecipientIDs описывают
// аудиторию, которую разрешает сторона доставки.
type NotificationPayload struct {
	AlertID        *uuid.UUID        `json:"alert_id,omitempty"`
	SiteID         uuid.UUID         `json:"site_id"`
	Level          models.AlertLevel `json:"level,omitempty"`
	Message        string            `json:"message"`
	Recipients     []Recipient       `json:"recipients,omitempty"`
	RecipientScope string            `json:"recipient_scope,omitempty"`
	RecipientIDs   []uuid.UUID       `json:"recipient_ids,omitempty"`
	Channels       []string          `json:"channels"`
}

// WeatherEvent - активное погодное предупреждение из внешнего сервиса
type WeatherEvent struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Event    string `json:"event"`
	Headline string `json:"headline"`
	Onset    string `json:"onset"`
	Expires  string `json:"expires"`
}

// SocialEvent - событие мониторинга соцсетей
type SocialEvent struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Platform     string `json:"platform"`
	ContentType  string `json:"content_type"`
	Content      string `json:"content"`
	Category     string `json:"category"`
	Severity     string `json:"severity"`
	StudentName  string `json:"student_name,omitempty"`
	StudentGrade string `json:"student_grade,omitempty"`
}

// DispatchAdapter - внешняя диспетчерская служба (аналог 911)
type DispatchAdapter interface {
	Dispatch(ctx context.Context, payload DispatchJobPayload) error
}

// LockdownAdapter - внешняя система управления дверьми
type LockdownAdapter interface {
	Lockdown(ctx context.Context, payload LockdownJobPayload) error
}

// NotificationAdapter - внешняя система доставки уведомлений (SMS/email/push/PA)
type NotificationAdapter interface {
	Notify(ctx context.Context, payload NotificationPayload) error
}

// WeatherAdapter - внешний сервис погодных предупреждений
type WeatherAdapter interface {
	GetActiveAlerts(ctx context.Context, lat, lon float64) ([]WeatherEvent, error)
}

// SocialMediaAdapter - внешний сервис мониторинга соцсетей
type SocialMediaAdapter interface {
	Name() string
	PollAlerts(ctx context.Context, since time.Time) ([]SocialEvent, error)
}

// EscalationPolicy инкапсулирует протокольные правила эскалации
// (включая PAS-семантику пожарной сигнализации). Политика обязана быть
// внедрена при сборке приложения.
type EscalationPolicy interface {
	Escalate(ctx context.Context, alert *models.Alert, nextLevel models.AlertLevel) error
}
