package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

type PgxMediaRepository struct {
	BaseRepository
}

func newPgxMediaRepository(pool *pgxpool.Pool) ports.MediaRepository {
	return &PgxMediaRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ ports.MediaRepository = (*PgxMediaRepository)(nil)

func (r *PgxMediaRepository) SaveMedia(ctx context.Context, media models.EntryMedia) error {
	query := `
        INSERT INTO entry_media (media_id, entry_id, file_path, media_type, created_at, last_updated_at)
        VALUES ($1, $2, $3, $4, $5, $6);
    `
	_, err := r.Pool.Exec(ctx, query,
		media.MediaID,
		media.EntryID,
		media.FilePath,
		media.MediaType,
		media.CreatedAt,
		media.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save entry media: %w", err)
	}
	return nil
}

func (r *PgxMediaRepository) FindMediaByEntry(ctx context.Context, entryID string) ([]models.EntryMedia, error) {
	query := `
        SELECT media_id, entry_id, file_path, media_type, created_at, last_updated_at
        FROM entry_media
        WHERE entry_id = $1
        ORDER BY created_at ASC;
    `
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entry media: %w", err)
	}
	defer rows.Close()

	media := []models.EntryMedia{}
	for rows.Next() {
		var m models.EntryMedia
		err := rows.Scan(
			&m.MediaID,
			&m.EntryID,
			&m.FilePath,
			&m.MediaType,
			&m.CreatedAt,
			&m.LastUpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry media row: %w", err)
		}
		media = append(media, m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating entry media rows: %w", rows.Err())
	}
	return media, nil
}
