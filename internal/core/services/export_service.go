package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
)

type exportService struct {
	entryRepo ports.EntryRepository
	userRepo  ports.UserRepository
}

// NewExportService creates a new export service.
func NewExportService(entryRepo ports.EntryRepository, userRepo ports.UserRepository) ports.ExportSvc {
	return &exportService{entryRepo: entryRepo, userRepo: userRepo}
}

// ExportEntriesPDF renders the user's entire journal, newest first, into a
// single PDF document.
func (s *exportService) ExportEntriesPDF(ctx context.Context, userID string) ([]byte, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to find user for export: %w", err)
	}

	entries, err := s.entryRepo.FindAllEntriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch entries for export: %w", err)
	}

	pdf := gofpdf.New("P", "pt", "Letter", "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.AddPage()

	pdf.MultiCell(0, 14, "Mental Health Journal", "", "L", false)
	pdf.MultiCell(0, 14, "User: "+user.Username, "", "L", false)
	pdf.MultiCell(0, 14, "--------------------------------------------------", "", "L", false)

	for _, entry := range entries {
		pdf.Ln(8)
		pdf.MultiCell(0, 14, entry.CreatedAt.Format("2006-01-02 15:04"), "", "L", false)

		emotion := ""
		if entry.Emotion != nil {
			emotion = *entry.Emotion
		}
		pdf.MultiCell(0, 14, fmt.Sprintf("Mood: %d/5 | Emotion: %s", entry.Mood, emotion), "", "L", false)
		pdf.MultiCell(0, 14, entry.Content, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render PDF: %w", err)
	}
	return buf.Bytes(), nil
}
