package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
)

// NewRepositoryProvider creates all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) ports.RepositoryProvider {
	return ports.RepositoryProvider{
		UserRepo:       newPgxUserRepository(pool),
		EntryRepo:      newPgxEntryRepository(pool),
		ReflectionRepo: newPgxReflectionRepository(pool),
		MediaRepo:      newPgxMediaRepository(pool),
	}
}
