package models

// MediaType tags the kind of file attached to an entry.
type MediaType string

const (
	MediaImage MediaType = "image"
	MediaAudio MediaType = "audio"
	MediaVideo MediaType = "video"
)

// EntryMedia is a file attached to exactly one entry. Rows are removed by the
// database when the owning entry is deleted (ON DELETE CASCADE); the stored
// file itself is cleaned up by the entry service.
type EntryMedia struct {
	MediaID   string    `json:"mediaID" db:"media_id"`
	EntryID   string    `json:"entryID" db:"entry_id"`
	FilePath  string    `json:"filePath" db:"file_path"`
	MediaType MediaType `json:"mediaType" db:"media_type"`
	AuditFields
}
