package ports

import (
	"context"
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// UserRepository defines persistence operations for users.
type UserRepository interface {
	SaveUser(ctx context.Context, user models.User) error
	FindUserByID(ctx context.Context, userID string) (*models.User, error)
	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*models.User, error)
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error
	UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error
	ClearRefreshToken(ctx context.Context, userID string) error
}

// EntryRepository defines persistence operations for journal entries.
type EntryRepository interface {
	SaveEntry(ctx context.Context, entry models.Entry) error
	FindEntryByID(ctx context.Context, entryID string) (*models.Entry, error)
	// FindRecentEntriesByUser returns at most limit entries ordered by
	// creation time descending.
	FindRecentEntriesByUser(ctx context.Context, userID string, limit int) ([]models.Entry, error)
	// FindEntriesSince returns all entries created at or after since,
	// ordered by creation time descending.
	FindEntriesSince(ctx context.Context, userID string, since time.Time) ([]models.Entry, error)
	FindAllEntriesByUser(ctx context.Context, userID string) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, entry models.Entry) error
	// DeleteEntry removes the entry; associated media rows are removed by
	// the database cascade.
	DeleteEntry(ctx context.Context, entryID string) error
	CountEntriesByUser(ctx context.Context, userID string) (int64, error)
}

// ReflectionRepository defines persistence operations for weekly reflections.
type ReflectionRepository interface {
	// UpsertReflection inserts the reflection or, when a row for
	// (user_id, week_start) already exists, overwrites its text fields.
	UpsertReflection(ctx context.Context, reflection models.WeeklyReflection) (*models.WeeklyReflection, error)
	FindReflectionByUserAndWeek(ctx context.Context, userID string, weekStart time.Time) (*models.WeeklyReflection, error)
}

// MediaRepository defines persistence operations for entry attachments.
type MediaRepository interface {
	SaveMedia(ctx context.Context, media models.EntryMedia) error
	FindMediaByEntry(ctx context.Context, entryID string) ([]models.EntryMedia, error)
}

// RepositoryProvider bundles all repositories for service wiring.
type RepositoryProvider struct {
	UserRepo       UserRepository
	EntryRepo      EntryRepository
	ReflectionRepo ReflectionRepository
	MediaRepo      MediaRepository
}
