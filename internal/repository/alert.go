package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
)

type AlertRepository struct {
	db *pgxpool.Pool
}

func NewAlertRepository(db *pgxpool.Pool) *AlertRepository {
	return &AlertRepository{db: db}
}

// CreateAlert создает новую запись об алерте в бд
func (r *AlertRepository) CreateAlert(ctx context.Context, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (site_id, level, status, source, message, building_id, building_name, room, floor, latitude, longitude, triggered_by_id, metadata)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.SiteID,
		alert.Level,
		alert.Status,
		alert.Source,
		alert.Message,
		alert.BuildingID,
		alert.BuildingName,
		alert.Room,
		alert.Floor,
		alert.Latitude,
		alert.Longitude,
		alert.TriggeredByID,
		alert.Metadata,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetAlertByID возвращает алерт по его UUID
func (r *AlertRepository) GetAlertByID(ctx context.Context, id uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		SELECT id, site_id, level, status, source, message, building_id, building_name, room, floor, latitude, longitude, triggered_by_id, metadata, created_at, updated_at
		FROM alerts
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&alert.ID,
		&alert.SiteID,
		&alert.Level,
		&alert.Status,
		&alert.Source,
		&alert.Message,
		&alert.BuildingID,
		&alert.BuildingName,
		&alert.Room,
		&alert.Floor,
		&alert.Latitude,
		&alert.Longitude,
		&alert.TriggeredByID,
		&alert.Metadata,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert with id %s: %w", id, models.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// UpdateAlertStatus переводит алерт в новый статус
func (r *AlertRepository) UpdateAlertStatus(ctx context.Context, id uuid.UUID, status models.AlertStatus) error {
	query := `
		UPDATE alerts SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update alert status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert with id %s not found for update", id)
	}
	return nil
}

// CreateDispatchRecord сохраняет запись о передаче алерта в диспетчерскую службу
func (r *AlertRepository) CreateDispatchRecord(ctx context.Context, record *models.DispatchRecord) error {
	query := `
		INSERT INTO dispatch_records (alert_id, method, status, sent_at, confirmed_at, response_ms)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		record.AlertID,
		record.Method,
		record.Status,
		record.SentAt,
		record.ConfirmedAt,
		record.ResponseMs,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create dispatch record: %w", err)
	}
	return nil
}

// FindTriggeredWeatherAlert ищет активный погодный алерт площадки с тем же
// внешним идентификатором предупреждения; nil без ошибки, если такого нет
func (r *AlertRepository) FindTriggeredWeatherAlert(ctx context.Context, siteID uuid.UUID, nwsAlertID string) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		SELECT id, site_id, level, status, message, metadata, created_at
		FROM alerts
		WHERE site_id = $1
			AND level = 'WEATHER'
			AND status = 'TRIGGERED'
			AND metadata->>'nws_alert_id' = $2
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query, siteID, nwsAlertID).Scan(
		&alert.ID,
		&alert.SiteID,
		&alert.Level,
		&alert.Status,
		&alert.Message,
		&alert.Metadata,
		&alert.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find weather alert: %w", err)
	}
	return alert, nil
}

// EscalateAlert в одной транзакции повышает уровень алерта и пишет запись
// аудита. Повторная проверка статуса в WHERE защищает от гонки с
// подтверждением: возвращает false, если алерт уже не TRIGGERED.
func (r *AlertRepository) EscalateAlert(ctx context.Context, alertID uuid.UUID, from, to models.AlertLevel, reason string) (bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin escalation transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	annotation := fmt.Sprintf(" [AUTO-ESCALATED from %s]", from)
	updateQuery := `
		UPDATE alerts SET
			level = $1,
			message = message || $2,
			updated_at = NOW()
		WHERE id = $3 AND status = 'TRIGGERED';
	`
	cmdTag, err := tx.Exec(ctx, updateQuery, to, annotation, alertID)
	if err != nil {
		return false, fmt.Errorf("failed to escalate alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return false, nil
	}

	auditQuery := `
		INSERT INTO escalation_audits (alert_id, from_level, to_level, reason)
		VALUES ($1, $2, $3, $4);
	`
	if _, err := tx.Exec(ctx, auditQuery, alertID, from, to, reason); err != nil {
		return false, fmt.Errorf("failed to create escalation audit: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit escalation transaction: %w", err)
	}
	return true, nil
}
