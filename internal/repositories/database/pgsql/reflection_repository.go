package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

type PgxReflectionRepository struct {
	BaseRepository
}

func newPgxReflectionRepository(pool *pgxpool.Pool) ports.ReflectionRepository {
	return &PgxReflectionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ ports.ReflectionRepository = (*PgxReflectionRepository)(nil)

const reflectionColumns = `reflection_id, user_id, week_start, boundary_check, weekly_goal, created_at, last_updated_at`

func scanReflection(row pgx.Row) (*models.WeeklyReflection, error) {
	var reflection models.WeeklyReflection
	err := row.Scan(
		&reflection.ReflectionID,
		&reflection.UserID,
		&reflection.WeekStart,
		&reflection.BoundaryCheck,
		&reflection.WeeklyGoal,
		&reflection.CreatedAt,
		&reflection.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan reflection row: %w", err)
	}
	return &reflection, nil
}

// UpsertReflection inserts the reflection, or overwrites the text fields of
// the existing row for the same (user_id, week_start). The single atomic
// statement means concurrent saves for the same week cannot create duplicate
// rows; the last writer wins.
func (r *PgxReflectionRepository) UpsertReflection(ctx context.Context, reflection models.WeeklyReflection) (*models.WeeklyReflection, error) {
	query := `
        INSERT INTO weekly_reflections (reflection_id, user_id, week_start, boundary_check, weekly_goal, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        ON CONFLICT (user_id, week_start) DO UPDATE SET
            boundary_check = EXCLUDED.boundary_check,
            weekly_goal = EXCLUDED.weekly_goal,
            last_updated_at = EXCLUDED.last_updated_at
        RETURNING ` + reflectionColumns + `;
    `
	saved, err := scanReflection(r.Pool.QueryRow(ctx, query,
		reflection.ReflectionID,
		reflection.UserID,
		reflection.WeekStart,
		reflection.BoundaryCheck,
		reflection.WeeklyGoal,
		reflection.CreatedAt,
		reflection.LastUpdatedAt,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to upsert weekly reflection: %w", err)
	}
	return saved, nil
}

func (r *PgxReflectionRepository) FindReflectionByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklyReflection, error) {
	query := `SELECT ` + reflectionColumns + ` FROM weekly_reflections WHERE user_id = $1 AND week_start = $2;`
	reflection, err := scanReflection(r.Pool.QueryRow(ctx, query, userID, weekStart))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find weekly reflection: %w", err)
	}
	return reflection, nil
}
