package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/jobs"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/queue"
)

// AlertRepository определяет контракт для работы с бд алертов
type AlertRepository interface {
	CreateAlert(ctx context.Context, alert *models.Alert) error
	GetAlertByID(ctx context.Context, id uuid.UUID) (*models.Alert, error)
	UpdateAlertStatus(ctx context.Context, id uuid.UUID, status models.AlertStatus) error
	EscalateAlert(ctx context.Context, alertID uuid.UUID, from, to models.AlertLevel, reason string) (bool, error)
}

// AlertService определяет контракт для бизнес-логики жизненного цикла алертов
type AlertService interface {
	TriggerAlert(ctx context.Context, alert *models.Alert) error
	AcknowledgeAlert(ctx context.Context, id uuid.UUID) error
	ResolveAlert(ctx context.Context, id uuid.UUID) error
	GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error)
}

type alertService struct {
	repo     AlertRepository
	enqueuer queue.Enqueuer
	logger   *logrus.Logger

	escalationWindow     time.Duration
	fireEscalationWindow time.Duration
}

func NewAlertService(repo AlertRepository, enqueuer queue.Enqueuer, logger *logrus.Logger, escalationWindow, fireEscalationWindow time.Duration) AlertService {
	return &alertService{
		repo:                 repo,
		enqueuer:             enqueuer,
		logger:               logger,
		escalationWindow:     escalationWindow,
		fireEscalationWindow: fireEscalationWindow,
	}
}

// TriggerAlert создает алерт и ставит в очередь весь каскад реакций:
// уведомление персонала, вызов экстренных служб, блокировку и отложенную
// автоэскалацию
func (s *alertService) TriggerAlert(ctx context.Context, alert *models.Alert) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "alert",
		"method":  "TriggerAlert",
		"level":   alert.Level,
		"site_id": alert.SiteID,
	})
	log.Info("Attempting to trigger a new alert")

	alert.Status = models.StatusTriggered
	if alert.Source == "" {
		alert.Source = models.SourceDashboard
	}
	if err := s.repo.CreateAlert(ctx, alert); err != nil {
		log.WithError(err).Error("Failed to create alert in repository")
		return fmt.Errorf("service: could not create alert: %w", err)
	}
	log = log.WithField("alert_id", alert.ID)

	// Персонал уведомляется при любом уровне угрозы
	if _, err := s.enqueuer.Enqueue(ctx, jobs.JobNotifyStaff, jobs.NotifyStaffJobPayload{
		AlertID: alert.ID,
		SiteID:  alert.SiteID,
		Level:   alert.Level,
		Message: alert.Message,
	}, 0); err != nil {
		log.WithError(err).Error("Failed to enqueue staff notification")
		return fmt.Errorf("service: could not enqueue staff notification: %w", err)
	}

	if requiresDispatch(alert.Level) {
		if _, err := s.enqueuer.Enqueue(ctx, jobs.JobDispatch, jobs.DispatchJobPayload{
			AlertID:      alert.ID,
			SiteID:       alert.SiteID,
			Level:        alert.Level,
			Message:      alert.Message,
			BuildingName: alert.BuildingName,
			Room:         alert.Room,
			Floor:        alert.Floor,
			Latitude:     alert.Latitude,
			Longitude:    alert.Longitude,
		}, 0); err != nil {
			log.WithError(err).Error("Failed to enqueue emergency dispatch")
			return fmt.Errorf("service: could not enqueue dispatch: %w", err)
		}
	}

	if alert.Level == models.LevelActiveThreat {
		if alert.BuildingID == nil {
			// Блокировать нечего: алерт не привязан к зданию
			log.Warn("Active threat alert has no building, skipping auto-lockdown")
		} else {
			if _, err := s.enqueuer.Enqueue(ctx, jobs.JobLockdown, jobs.LockdownJobPayload{
				AlertID:       alert.ID,
				SiteID:        alert.SiteID,
				BuildingID:    *alert.BuildingID,
				TriggeredByID: alert.TriggeredByID,
			}, 0); err != nil {
				log.WithError(err).Error("Failed to enqueue auto-lockdown")
				return fmt.Errorf("service: could not enqueue auto-lockdown: %w", err)
			}
		}
	}

	if nextLevel, ok := escalationTarget(alert.Level); ok {
		window := s.escalationWindow
		if alert.Level == models.LevelFire {
			// Окно подтверждения пожарной сигнализации существенно короче
			window = s.fireEscalationWindow
		}
		if _, err := s.enqueuer.Enqueue(ctx, jobs.JobEscalate, jobs.EscalateJobPayload{
			AlertID:      alert.ID,
			CurrentLevel: alert.Level,
			NextLevel:    nextLevel,
		}, window); err != nil {
			log.WithError(err).Error("Failed to schedule auto-escalation")
			return fmt.Errorf("service: could not schedule escalation: %w", err)
		}
		log.WithFields(logrus.Fields{
			"next_level": nextLevel,
			"window":     window,
		}).Info("Auto-escalation scheduled")
	}

	log.Info("Alert triggered successfully")
	return nil
}

// AcknowledgeAlert подтверждает алерт; разрешен только переход из TRIGGERED
func (s *alertService) AcknowledgeAlert(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "AcknowledgeAlert",
		"alert_id": id,
	})
	log.Info("Attempting to acknowledge alert")

	alert, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to acknowledge a non-existent alert")
		return fmt.Errorf("service: alert %s not found for acknowledge: %w", id, err)
	}
	if alert.Status != models.StatusTriggered {
		return fmt.Errorf("service: cannot acknowledge alert in status %s", alert.Status)
	}

	if err := s.repo.UpdateAlertStatus(ctx, id, models.StatusAcknowledged); err != nil {
		log.WithError(err).Error("Failed to acknowledge alert in repository")
		return fmt.Errorf("service: could not acknowledge alert: %w", err)
	}
	log.Info("Alert acknowledged successfully")
	return nil
}

// ResolveAlert закрывает алерт
func (s *alertService) ResolveAlert(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":  "alert",
		"method":   "ResolveAlert",
		"alert_id": id,
	})
	log.Info("Attempting to resolve alert")

	alert, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Attempted to resolve a non-existent alert")
		return fmt.Errorf("service: alert %s not found for resolve: %w", id, err)
	}
	if alert.Status == models.StatusResolved || alert.Status == models.StatusCancelled {
		return fmt.Errorf("service: alert already closed with status %s", alert.Status)
	}

	if err := s.repo.UpdateAlertStatus(ctx, id, models.StatusResolved); err != nil {
		log.WithError(err).Error("Failed to resolve alert in repository")
		return fmt.Errorf("service: could not resolve alert: %w", err)
	}
	log.Info("Alert resolved successfully")
	return nil
}

// GetAlert получает алерт по ID
func (s *alertService) GetAlert(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert, err := s.repo.GetAlertByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get alert: %w", err)
	}
	return alert, nil
}

// requiresDispatch определяет, требует ли уровень вызова экстренных служб
func requiresDispatch(level models.AlertLevel) bool {
	switch level {
	case models.LevelActiveThreat, models.LevelFire, models.LevelMedical:
		return true
	default:
		return false
	}
}

// escalationTarget возвращает уровень, на который повышается алерт, не
// подтвержденный в течение окна. LOCKDOWN - общезащитная реакция кампуса
// как на неподтвержденную угрозу, так и на неподтвержденный пожар.
func escalationTarget(level models.AlertLevel) (models.AlertLevel, bool) {
	switch level {
	case models.LevelActiveThreat, models.LevelFire:
		return models.LevelLockdown, true
	default:
		return "", false
	}
}
