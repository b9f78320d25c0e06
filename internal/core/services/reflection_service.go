package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

type reflectionService struct {
	reflectionRepo ports.ReflectionRepository
	now            func() time.Time
}

// NewReflectionService creates a new reflection service.
func NewReflectionService(reflectionRepo ports.ReflectionRepository) ports.ReflectionSvc {
	return &reflectionService{
		reflectionRepo: reflectionRepo,
		now:            time.Now,
	}
}

// SaveWeeklyReflection upserts the reflection for the current calendar week,
// keyed by its Monday. Saving twice in the same week overwrites the text
// fields in place; the unique constraint on (user_id, week_start) guarantees
// a single row even under concurrent requests.
func (s *reflectionService) SaveWeeklyReflection(ctx context.Context, userID string, req dto.SaveReflectionRequest) (*models.WeeklyReflection, error) {
	now := s.now()

	reflection := models.WeeklyReflection{
		ReflectionID:  uuid.NewString(),
		UserID:        userID,
		WeekStart:     WeekStartFor(now),
		BoundaryCheck: req.BoundaryCheck,
		WeeklyGoal:    req.WeeklyGoal,
		AuditFields: models.AuditFields{
			CreatedAt:     now.UTC(),
			LastUpdatedAt: now.UTC(),
		},
	}

	saved, err := s.reflectionRepo.UpsertReflection(ctx, reflection)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert weekly reflection: %w", err)
	}
	return saved, nil
}
