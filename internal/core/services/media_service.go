package services

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// allowedImageExtensions is the upload allowlist. Only images are accepted
// for now even though the media type tag also knows audio and video.
var allowedImageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
}

type mediaService struct {
	mediaRepo ports.MediaRepository
	entryRepo ports.EntryRepository
	uploadDir string
}

// NewMediaService creates a new media service storing files under uploadDir.
func NewMediaService(mediaRepo ports.MediaRepository, entryRepo ports.EntryRepository, uploadDir string) ports.MediaSvc {
	return &mediaService{
		mediaRepo: mediaRepo,
		entryRepo: entryRepo,
		uploadDir: uploadDir,
	}
}

// AttachImage stores an uploaded image on disk under a random name and
// records it against the entry. The caller must own the entry.
func (s *mediaService) AttachImage(ctx context.Context, userID string, entryID string, filename string, file io.Reader) (*models.EntryMedia, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("entry %s is not owned by caller: %w", entryID, apperrors.ErrForbidden)
	}

	ext := strings.ToLower(filepath.Ext(filename))
	if !allowedImageExtensions[ext] {
		return nil, fmt.Errorf("file extension %q is not an allowed image type: %w", ext, apperrors.ErrValidation)
	}

	if err := os.MkdirAll(s.uploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	storedPath := filepath.Join(s.uploadDir, uuid.NewString()+ext)
	dst, err := os.Create(storedPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create media file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(storedPath)
		return nil, fmt.Errorf("failed to write media file: %w", err)
	}

	now := time.Now().UTC()
	media := models.EntryMedia{
		MediaID:   uuid.NewString(),
		EntryID:   entryID,
		FilePath:  storedPath,
		MediaType: models.MediaImage,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.mediaRepo.SaveMedia(ctx, media); err != nil {
		os.Remove(storedPath)
		return nil, fmt.Errorf("failed to save media record: %w", err)
	}
	return &media, nil
}

func (s *mediaService) ListEntryMedia(ctx context.Context, userID string, entryID string) ([]models.EntryMedia, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find entry %s: %w", entryID, err)
	}
	if entry.UserID != userID {
		return nil, fmt.Errorf("entry %s is not owned by caller: %w", entryID, apperrors.ErrForbidden)
	}

	media, err := s.mediaRepo.FindMediaByEntry(ctx, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media for entry %s: %w", entryID, err)
	}
	return media, nil
}
