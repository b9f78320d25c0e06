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

type PgxEntryRepository struct {
	BaseRepository
}

func newPgxEntryRepository(pool *pgxpool.Pool) ports.EntryRepository {
	return &PgxEntryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ ports.EntryRepository = (*PgxEntryRepository)(nil)

const entryColumns = `entry_id, user_id, content, mood, emotion, energy, sleep,
	jaw_tension, shoulder_tension, stomach_discomfort, headache,
	trigger_event, negative_thought, reframed_thought,
	gratitude_1, gratitude_2, gratitude_3, affirmation,
	created_at, last_updated_at`

func scanEntry(row pgx.Row) (*models.Entry, error) {
	var entry models.Entry
	err := row.Scan(
		&entry.EntryID,
		&entry.UserID,
		&entry.Content,
		&entry.Mood,
		&entry.Emotion,
		&entry.Energy,
		&entry.Sleep,
		&entry.JawTension,
		&entry.ShoulderTension,
		&entry.StomachDiscomfort,
		&entry.Headache,
		&entry.TriggerEvent,
		&entry.NegativeThought,
		&entry.ReframedThought,
		&entry.Gratitude1,
		&entry.Gratitude2,
		&entry.Gratitude3,
		&entry.Affirmation,
		&entry.CreatedAt,
		&entry.LastUpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan entry row: %w", err)
	}
	return &entry, nil
}

func (r *PgxEntryRepository) queryEntries(ctx context.Context, query string, args ...any) ([]models.Entry, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query entries: %w", err)
	}
	defer rows.Close()

	entries := []models.Entry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, *entry)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", rows.Err())
	}
	return entries, nil
}

func (r *PgxEntryRepository) SaveEntry(ctx context.Context, entry models.Entry) error {
	query := `
        INSERT INTO entries (
            entry_id, user_id, content, mood, emotion, energy, sleep,
            jaw_tension, shoulder_tension, stomach_discomfort, headache,
            trigger_event, negative_thought, reframed_thought,
            gratitude_1, gratitude_2, gratitude_3, affirmation,
            created_at, last_updated_at
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20);
    `
	_, err := r.Pool.Exec(ctx, query,
		entry.EntryID,
		entry.UserID,
		entry.Content,
		entry.Mood,
		entry.Emotion,
		entry.Energy,
		entry.Sleep,
		entry.JawTension,
		entry.ShoulderTension,
		entry.StomachDiscomfort,
		entry.Headache,
		entry.TriggerEvent,
		entry.NegativeThought,
		entry.ReframedThought,
		entry.Gratitude1,
		entry.Gratitude2,
		entry.Gratitude3,
		entry.Affirmation,
		entry.CreatedAt,
		entry.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save entry: %w", err)
	}
	return nil
}

func (r *PgxEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entry by ID %s: %w", entryID, err)
	}
	return entry, nil
}

func (r *PgxEntryRepository) FindRecentEntriesByUser(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM entries
        WHERE user_id = $1
        ORDER BY created_at DESC
        LIMIT $2;
    `
	return r.queryEntries(ctx, query, userID, limit)
}

func (r *PgxEntryRepository) FindEntriesSince(ctx context.Context, userID string, since time.Time) ([]models.Entry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM entries
        WHERE user_id = $1 AND created_at >= $2
        ORDER BY created_at DESC;
    `
	return r.queryEntries(ctx, query, userID, since)
}

func (r *PgxEntryRepository) FindAllEntriesByUser(ctx context.Context, userID string) ([]models.Entry, error) {
	query := `
        SELECT ` + entryColumns + `
        FROM entries
        WHERE user_id = $1
        ORDER BY created_at DESC;
    `
	return r.queryEntries(ctx, query, userID)
}

func (r *PgxEntryRepository) UpdateEntry(ctx context.Context, entry models.Entry) error {
	query := `
        UPDATE entries
        SET content = $1, mood = $2, emotion = $3, energy = $4, sleep = $5, last_updated_at = $6
        WHERE entry_id = $7;
    `
	cmdTag, err := r.Pool.Exec(ctx, query,
		entry.Content,
		entry.Mood,
		entry.Emotion,
		entry.Energy,
		entry.Sleep,
		entry.LastUpdatedAt,
		entry.EntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes the entry row. The ON DELETE CASCADE constraint on
// entry_media removes the attachment rows in the same statement.
func (r *PgxEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxEntryRepository) CountEntriesByUser(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM entries WHERE user_id = $1;`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count entries: %w", err)
	}
	return count, nil
}
