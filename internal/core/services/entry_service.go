package services

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/middleware"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

type entryService struct {
	entryRepo ports.EntryRepository
	mediaRepo ports.MediaRepository
}

// NewEntryService creates a new entry service. The media repository is needed
// so that deleting an entry can also remove its stored attachment files.
func NewEntryService(entryRepo ports.EntryRepository, mediaRepo ports.MediaRepository) ports.EntrySvc {
	return &entryService{
		entryRepo: entryRepo,
		mediaRepo: mediaRepo,
	}
}

func (s *entryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*models.Entry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("entry content cannot be empty: %w", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	entry := models.Entry{
		EntryID:           uuid.NewString(),
		UserID:            userID,
		Content:           req.Content,
		Mood:              req.Mood,
		Emotion:           req.Emotion,
		Energy:            req.Energy,
		Sleep:             req.Sleep,
		JawTension:        req.JawTension,
		ShoulderTension:   req.ShoulderTension,
		StomachDiscomfort: req.StomachDiscomfort,
		Headache:          req.Headache,
		TriggerEvent:      req.TriggerEvent,
		NegativeThought:   req.NegativeThought,
		ReframedThought:   req.ReframedThought,
		Gratitude1:        req.Gratitude1,
		Gratitude2:        req.Gratitude2,
		Gratitude3:        req.Gratitude3,
		Affirmation:       req.Affirmation,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.entryRepo.SaveEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to save entry: %w", err)
	}
	return &entry, nil
}

func (s *entryService) GetEntry(ctx context.Context, userID string, entryID string) (*models.Entry, error) {
	return s.findOwnedEntry(ctx, userID, entryID)
}

func (s *entryService) ListEntries(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	if limit <= 0 || limit > recentEntriesLimit {
		limit = recentEntriesLimit
	}
	entries, err := s.entryRepo.FindRecentEntriesByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	return entries, nil
}

// UpdateEntry replaces the editable subset of an entry: content, mood,
// emotion, energy and sleep. All other fields keep their original values.
func (s *entryService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*models.Entry, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("entry content cannot be empty: %w", apperrors.ErrValidation)
	}

	entry, err := s.findOwnedEntry(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	entry.Content = req.Content
	entry.Mood = req.Mood
	entry.Emotion = req.Emotion
	entry.Energy = req.Energy
	entry.Sleep = req.Sleep
	entry.LastUpdatedAt = time.Now().UTC()

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}
	return entry, nil
}

// DeleteEntry removes the entry and its attachments. Media rows go with the
// entry via the database cascade; stored files are removed afterwards,
// best-effort, since the row deletion is the authoritative operation.
func (s *entryService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	if _, err := s.findOwnedEntry(ctx, userID, entryID); err != nil {
		return err
	}

	media, err := s.mediaRepo.FindMediaByEntry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("failed to list entry media: %w", err)
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	logger := middleware.GetLoggerFromCtx(ctx)
	for _, m := range media {
		if err := os.Remove(m.FilePath); err != nil && !os.IsNotExist(err) {
			logger.Warn("Failed to remove media file", slog.String("path", m.FilePath), slog.String("error", err.Error()))
		}
	}
	return nil
}

// findOwnedEntry fetches an entry and verifies the caller owns it. A miss is
// ErrNotFound; someone else's entry is ErrForbidden and is never returned.
func (s *entryService) findOwnedEntry(ctx context.Context, userID string, entryID string) (*models.Entry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("entry %s is not owned by caller: %w", entryID, apperrors.ErrForbidden)
	}
	return entry, nil
}
