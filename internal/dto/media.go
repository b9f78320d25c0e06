package dto

import (
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// MediaResponse defines the data returned for an entry attachment.
type MediaResponse struct {
	MediaID   string    `json:"mediaID"`
	EntryID   string    `json:"entryID"`
	FilePath  string    `json:"filePath"`
	MediaType string    `json:"mediaType"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToMediaResponse converts a models.EntryMedia to a MediaResponse DTO.
func ToMediaResponse(media *models.EntryMedia) MediaResponse {
	return MediaResponse{
		MediaID:   media.MediaID,
		EntryID:   media.EntryID,
		FilePath:  media.FilePath,
		MediaType: string(media.MediaType),
		CreatedAt: media.CreatedAt,
	}
}
