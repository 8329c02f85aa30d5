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

type SignalRepository struct {
	db *pgxpool.Pool
}

func NewSignalRepository(db *pgxpool.Pool) *SignalRepository {
	return &SignalRepository{db: db}
}

// SocialAlertExists проверяет, было ли событие с таким externalId уже обработано
func (r *SignalRepository) SocialAlertExists(ctx context.Context, externalID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM social_media_alerts WHERE external_id = $1);`
	var exists bool
	if err := r.db.QueryRow(ctx, query, externalID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check social alert existence: %w", err)
	}
	return exists, nil
}

// CreateSocialMediaAlert сохраняет событие мониторинга соцсетей
func (r *SignalRepository) CreateSocialMediaAlert(ctx context.Context, alert *models.SocialMediaAlert) error {
	query := `
		INSERT INTO social_media_alerts (external_id, source, platform, content_type, content, category, severity, student_name, student_grade, alert_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		alert.ExternalID,
		alert.Source,
		alert.Platform,
		alert.ContentType,
		alert.Content,
		alert.Category,
		alert.Severity,
		alert.StudentName,
		alert.StudentGrade,
		alert.AlertID,
	).Scan(&alert.ID, &alert.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create social media alert: %w", err)
	}
	return nil
}

// LinkSocialAlert привязывает сохраненное событие соцсетей к алерту
func (r *SignalRepository) LinkSocialAlert(ctx context.Context, externalID string, alertID uuid.UUID) error {
	query := `UPDATE social_media_alerts SET alert_id = $1 WHERE external_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, alertID, externalID)
	if err != nil {
		return fmt.Errorf("failed to link social alert: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("social alert with external id %s not found for link", externalID)
	}
	return nil
}

// ListSitesWithCoordinates возвращает площадки, пригодные для погодного опроса
func (r *SignalRepository) ListSitesWithCoordinates(ctx context.Context) ([]*models.Site, error) {
	query := `
		SELECT id, name, latitude, longitude
		FROM sites
		WHERE latitude IS NOT NULL AND longitude IS NOT NULL
		ORDER BY name ASC;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	sites := make([]*models.Site, 0)
	for rows.Next() {
		site := &models.Site{}
		if err := rows.Scan(&site.ID, &site.Name, &site.Latitude, &site.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan site row: %w", err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error sites iteration: %w", err)
	}
	return sites, nil
}

// GetPrimarySite возвращает основную площадку округа
func (r *SignalRepository) GetPrimarySite(ctx context.Context) (*models.Site, error) {
	site := &models.Site{}
	query := `
		SELECT id, name, latitude, longitude
		FROM sites
		ORDER BY is_primary DESC, created_at ASC
		LIMIT 1;
	`
	err := r.db.QueryRow(ctx, query).Scan(&site.ID, &site.Name, &site.Latitude, &site.Longitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("no sites configured")
		}
		return nil, fmt.Errorf("failed to get primary site: %w", err)
	}
	return site, nil
}

// GetSiteStaffUserID возвращает ID дежурного сотрудника площадки или nil,
// если подходящего пользователя нет
func (r *SignalRepository) GetSiteStaffUserID(ctx context.Context, siteID uuid.UUID) (*uuid.UUID, error) {
	query := `
		SELECT id FROM users
		WHERE site_id = $1 AND role IN ('ADMIN', 'STAFF') AND is_active = TRUE
		ORDER BY created_at ASC
		LIMIT 1;
	`
	var id uuid.UUID
	err := r.db.QueryRow(ctx, query, siteID).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get site staff user: %w", err)
	}
	return &id, nil
}
