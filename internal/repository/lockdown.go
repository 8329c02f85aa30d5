package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/SafeSchoolOS/safeschool-os-sub001/internal/models"
)

type LockdownRepository struct {
	db *pgxpool.Pool
}

func NewLockdownRepository(db *pgxpool.Pool) *LockdownRepository {
	return &LockdownRepository{db: db}
}

// LockBuildingDoors в одной транзакции создает команду блокировки и
// блокирует все двери здания, кроме аварийных выходов. Возвращает
// количество заблокированных дверей.
func (r *LockdownRepository) LockBuildingDoors(ctx context.Context, cmd *models.LockdownCommand) (int64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to begin lockdown transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	cmdQuery := `
		INSERT INTO lockdown_commands (alert_id, scope, target_id, initiated_by_id)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err = tx.QueryRow(ctx, cmdQuery,
		cmd.AlertID,
		cmd.Scope,
		cmd.TargetID,
		cmd.InitiatedByID,
	).Scan(&cmd.ID, &cmd.CreatedAt)
	if err != nil {
		return 0, fmt.Errorf("failed to create lockdown command: %w", err)
	}

	// Аварийные выходы остаются открытыми при любой блокировке
	doorsQuery := `
		UPDATE doors SET
			status = 'LOCKED',
			updated_at = NOW()
		WHERE building_id = $1 AND is_emergency_exit = FALSE;
	`
	cmdTag, err := tx.Exec(ctx, doorsQuery, cmd.TargetID)
	if err != nil {
		return 0, fmt.Errorf("failed to lock building doors: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("failed to commit lockdown transaction: %w", err)
	}
	return cmdTag.RowsAffected(), nil
}
