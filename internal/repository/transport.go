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

type TransportRepository struct {
	db *pgxpool.Pool
}

func NewTransportRepository(db *pgxpool.Pool) *TransportRepository {
	return &TransportRepository{db: db}
}

// GetBusByID возвращает автобус по его UUID
func (r *TransportRepository) GetBusByID(ctx context.Context, busID uuid.UUID) (*models.Bus, error) {
	bus := &models.Bus{}
	query := `
		SELECT id, number, site_id, created_at
		FROM buses
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, busID).Scan(&bus.ID, &bus.Number, &bus.SiteID, &bus.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("bus with id %s not found", busID)
		}
		return nil, fmt.Errorf("failed to get bus by id: %w", err)
	}
	return bus, nil
}

// GetActiveRouteStops возвращает остановки активного маршрута автобуса
// в порядке следования
func (r *TransportRepository) GetActiveRouteStops(ctx context.Context, busID uuid.UUID) ([]*models.Stop, error) {
	query := `
		SELECT s.id, s.route_id, s.name, s.sequence, s.latitude, s.longitude
		FROM stops s
		JOIN route_assignments ra ON ra.route_id = s.route_id
		WHERE ra.bus_id = $1 AND ra.is_active = TRUE
		ORDER BY s.sequence ASC;
	`
	rows, err := r.db.Query(ctx, query, busID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active route stops: %w", err)
	}
	defer rows.Close()

	stops := make([]*models.Stop, 0)
	for rows.Next() {
		stop := &models.Stop{}
		err := rows.Scan(
			&stop.ID,
			&stop.RouteID,
			&stop.Name,
			&stop.Sequence,
			&stop.Latitude,
			&stop.Longitude,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan stop row: %w", err)
		}
		stops = append(stops, stop)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error stops iteration: %w", err)
	}
	return stops, nil
}

// GetContactsByStudentCard возвращает родительские контакты по карте ученика
func (r *TransportRepository) GetContactsByStudentCard(ctx context.Context, cardID uuid.UUID) ([]*models.ParentContact, error) {
	query := `
		SELECT id, student_card_id, name, phone, email, sms_enabled, email_enabled, push_enabled, board_alerts, exit_alerts, eta_alerts
		FROM parent_contacts
		WHERE student_card_id = $1;
	`
	rows, err := r.db.Query(ctx, query, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get contacts by card: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.ParentContact, 0)
	for rows.Next() {
		contact := &models.ParentContact{}
		err := rows.Scan(
			&contact.ID,
			&contact.StudentCardID,
			&contact.Name,
			&contact.Phone,
			&contact.Email,
			&contact.SMSEnabled,
			&contact.EmailEnabled,
			&contact.PushEnabled,
			&contact.BoardAlerts,
			&contact.ExitAlerts,
			&contact.ETAAlerts,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error contacts iteration: %w", err)
	}
	return contacts, nil
}

// GetStudentCardsByStop возвращает карты учеников, привязанных к остановке
func (r *TransportRepository) GetStudentCardsByStop(ctx context.Context, stopID uuid.UUID) ([]*models.StudentCard, error) {
	query := `
		SELECT c.id, c.student_name, c.grade, c.site_id
		FROM student_cards c
		JOIN stop_assignments sa ON sa.student_card_id = c.id
		WHERE sa.stop_id = $1;
	`
	rows, err := r.db.Query(ctx, query, stopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get student cards by stop: %w", err)
	}
	defer rows.Close()

	cards := make([]*models.StudentCard, 0)
	for rows.Next() {
		card := &models.StudentCard{}
		if err := rows.Scan(&card.ID, &card.StudentName, &card.Grade, &card.SiteID); err != nil {
			return nil, fmt.Errorf("failed to scan student card row: %w", err)
		}
		cards = append(cards, card)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error student cards iteration: %w", err)
	}
	return cards, nil
}
