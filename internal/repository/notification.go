package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
)

type NotificationRepository struct {
	db *pgxpool.Pool
}

func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// CreateNotificationLog сохраняет запись о батче уведомлений
func (r *NotificationRepository) CreateNotificationLog(ctx context.Context, entry *models.NotificationLog) error {
	query := `
		INSERT INTO notification_logs (alert_id, site_id, channel, recipient_count, message, status)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		entry.AlertID,
		entry.SiteID,
		entry.Channel,
		entry.RecipientCount,
		entry.Message,
		entry.Status,
	).Scan(&entry.ID, &entry.CreatedAt, &entry.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create notification log: %w", err)
	}
	return nil
}

// MarkQueuedNotificationSent переводит ожидающую QUEUED-запись с тем же
// сообщением и площадкой в SENT; возвращает false, если такой записи нет
func (r *NotificationRepository) MarkQueuedNotificationSent(ctx context.Context, siteID uuid.UUID, message string) (bool, error) {
	query := `
		UPDATE notification_logs SET
			status = 'SENT',
			updated_at = NOW()
		WHERE id = (
			SELECT id FROM notification_logs
			WHERE site_id = $1 AND message = $2 AND status = 'QUEUED'
			ORDER BY created_at ASC
			LIMIT 1
		);
	`
	cmdTag, err := r.db.Exec(ctx, query, siteID, message)
	if err != nil {
		return false, fmt.Errorf("failed to mark notification sent: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}
