package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
)

// dashboardService recomputes the analytics bundle from scratch on every
// call. There is no caching: the weekly window is wall-clock relative to the
// moment of the request.
type dashboardService struct {
	entryRepo      ports.EntryRepository
	reflectionRepo ports.ReflectionRepository
	now            func() time.Time
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(entryRepo ports.EntryRepository, reflectionRepo ports.ReflectionRepository) ports.DashboardSvc {
	return &dashboardService{
		entryRepo:      entryRepo,
		reflectionRepo: reflectionRepo,
		now:            time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error) {
	now := s.now()

	recent, err := s.entryRepo.FindRecentEntriesByUser(ctx, userID, recentEntriesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch recent entries: %w", err)
	}

	weekAgo := now.UTC().Add(-7 * 24 * time.Hour)
	weekly, err := s.entryRepo.FindEntriesSince(ctx, userID, weekAgo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch weekly entries: %w", err)
	}

	resp := &dto.DashboardResponse{
		Entries:     dto.ToListEntriesResponse(recent).Entries,
		WeeklyStats: ComputeWeeklyStats(weekly),
		Streak:      ComputeStreak(recent, now),
	}

	reflection, err := s.reflectionRepo.FindReflectionByUserAndWeek(ctx, userID, WeekStartFor(now))
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to fetch weekly reflection: %w", err)
	}
	if reflection != nil {
		r := dto.ToReflectionResponse(reflection)
		resp.WeeklyReflection = &r
	}

	return resp, nil
}
