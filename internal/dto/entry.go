package dto

import (
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// CreateEntryRequest defines the data needed to create a journal entry.
// Content and mood are required; everything else is optional, using pointers
// to distinguish omitted fields from zero values. Non-numeric input for the
// integer fields fails binding and is surfaced as a validation error.
type CreateEntryRequest struct {
	Content string  `json:"content" binding:"required,notblank"`
	Mood    int     `json:"mood" binding:"required"`
	Emotion *string `json:"emotion"`
	Energy  *int    `json:"energy"`
	Sleep   *int    `json:"sleep"`

	JawTension        *int `json:"jawTension"`
	ShoulderTension   *int `json:"shoulderTension"`
	StomachDiscomfort *int `json:"stomachDiscomfort"`
	Headache          *int `json:"headache"`

	TriggerEvent    *string `json:"triggerEvent"`
	NegativeThought *string `json:"negativeThought"`
	ReframedThought *string `json:"reframedThought"`

	Gratitude1  *string `json:"gratitude1"`
	Gratitude2  *string `json:"gratitude2"`
	Gratitude3  *string `json:"gratitude3"`
	Affirmation *string `json:"affirmation"`
}

// UpdateEntryRequest defines the fields the edit path may change. The edit
// surface is narrower than creation on purpose: sensation, reframing and
// gratitude fields are captured in the moment and not editable afterwards.
type UpdateEntryRequest struct {
	Content string  `json:"content" binding:"required,notblank"`
	Mood    int     `json:"mood" binding:"required"`
	Emotion *string `json:"emotion"`
	Energy  *int    `json:"energy"`
	Sleep   *int    `json:"sleep"`
}

// EntryResponse defines the data returned for a journal entry.
type EntryResponse struct {
	EntryID string  `json:"entryID"`
	Content string  `json:"content"`
	Mood    int     `json:"mood"`
	Emotion *string `json:"emotion,omitempty"`
	Energy  *int    `json:"energy,omitempty"`
	Sleep   *int    `json:"sleep,omitempty"`

	JawTension        *int `json:"jawTension,omitempty"`
	ShoulderTension   *int `json:"shoulderTension,omitempty"`
	StomachDiscomfort *int `json:"stomachDiscomfort,omitempty"`
	Headache          *int `json:"headache,omitempty"`

	TriggerEvent    *string `json:"triggerEvent,omitempty"`
	NegativeThought *string `json:"negativeThought,omitempty"`
	ReframedThought *string `json:"reframedThought,omitempty"`

	Gratitude1  *string `json:"gratitude1,omitempty"`
	Gratitude2  *string `json:"gratitude2,omitempty"`
	Gratitude3  *string `json:"gratitude3,omitempty"`
	Affirmation *string `json:"affirmation,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListEntriesResponse wraps the list of entries.
type ListEntriesResponse struct {
	Entries []EntryResponse `json:"entries"`
}

// ToEntryResponse converts a models.Entry to an EntryResponse DTO.
func ToEntryResponse(entry *models.Entry) EntryResponse {
	return EntryResponse{
		EntryID:           entry.EntryID,
		Content:           entry.Content,
		Mood:              entry.Mood,
		Emotion:           entry.Emotion,
		Energy:            entry.Energy,
		Sleep:             entry.Sleep,
		JawTension:        entry.JawTension,
		ShoulderTension:   entry.ShoulderTension,
		StomachDiscomfort: entry.StomachDiscomfort,
		Headache:          entry.Headache,
		TriggerEvent:      entry.TriggerEvent,
		NegativeThought:   entry.NegativeThought,
		ReframedThought:   entry.ReframedThought,
		Gratitude1:        entry.Gratitude1,
		Gratitude2:        entry.Gratitude2,
		Gratitude3:        entry.Gratitude3,
		Affirmation:       entry.Affirmation,
		CreatedAt:         entry.CreatedAt,
		LastUpdatedAt:     entry.LastUpdatedAt,
	}
}

// ToListEntriesResponse converts a slice of models.Entry to a ListEntriesResponse DTO.
func ToListEntriesResponse(entries []models.Entry) ListEntriesResponse {
	responses := make([]EntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToEntryResponse(&entries[i])
	}
	return ListEntriesResponse{Entries: responses}
}
