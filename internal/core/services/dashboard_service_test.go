package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/core/services"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

type DashboardServiceTestSuite struct {
	suite.Suite
	mockEntryRepo      *MockEntryRepository
	mockReflectionRepo *MockReflectionRepository
	service            ports.DashboardSvc
}

func (suite *DashboardServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockReflectionRepo = new(MockReflectionRepository)
	suite.service = services.NewDashboardService(suite.mockEntryRepo, suite.mockReflectionRepo)
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_AssemblesBundle() {
	ctx := context.Background()
	userID := uuid.NewString()
	now := time.Now()

	recent := []models.Entry{
		{
			EntryID: uuid.NewString(), UserID: userID, Content: "today", Mood: 4,
			Emotion:     strPtr("calm"),
			AuditFields: models.AuditFields{CreatedAt: now},
		},
		{
			EntryID: uuid.NewString(), UserID: userID, Content: "yesterday", Mood: 2,
			Emotion:     strPtr("calm"),
			AuditFields: models.AuditFields{CreatedAt: now.AddDate(0, 0, -1)},
		},
	}

	suite.mockEntryRepo.On("FindRecentEntriesByUser", ctx, userID, 100).Return(recent, nil).Once()
	suite.mockEntryRepo.On("FindEntriesSince", ctx, userID, mock.AnythingOfType("time.Time")).Return(recent, nil).Once()
	suite.mockReflectionRepo.On("FindReflectionByUserAndWeek", ctx, userID, mock.AnythingOfType("time.Time")).
		Return(nil, apperrors.ErrNotFound).Once()

	resp, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(resp)
	suite.Len(resp.Entries, 2)
	suite.Equal(2, resp.Streak)
	suite.Require().NotNil(resp.WeeklyStats.AvgMood)
	suite.Equal(3.0, *resp.WeeklyStats.AvgMood)
	suite.Equal("calm", *resp.WeeklyStats.CommonEmotion)
	// No reflection this week is not an error
	suite.Nil(resp.WeeklyReflection)
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockReflectionRepo.AssertExpectations(suite.T())
}

func (suite *DashboardServiceTestSuite) TestGetDashboard_IncludesCurrentReflection() {
	ctx := context.Background()
	userID := uuid.NewString()
	weekStart := services.WeekStartFor(time.Now())

	reflection := &models.WeeklyReflection{
		ReflectionID: uuid.NewString(),
		UserID:       userID,
		WeekStart:    weekStart,
		WeeklyGoal:   strPtr("sleep by eleven"),
	}

	suite.mockEntryRepo.On("FindRecentEntriesByUser", ctx, userID, 100).Return([]models.Entry{}, nil).Once()
	suite.mockEntryRepo.On("FindEntriesSince", ctx, userID, mock.AnythingOfType("time.Time")).Return([]models.Entry{}, nil).Once()
	suite.mockReflectionRepo.On("FindReflectionByUserAndWeek", ctx, userID, mock.MatchedBy(func(t time.Time) bool {
		return t.Equal(weekStart)
	})).Return(reflection, nil).Once()

	resp, err := suite.service.GetDashboard(ctx, userID)

	suite.Require().NoError(err)
	suite.Empty(resp.Entries)
	suite.Equal(0, resp.Streak)
	suite.Nil(resp.WeeklyStats.AvgMood)
	suite.Require().NotNil(resp.WeeklyReflection)
	suite.Equal("sleep by eleven", *resp.WeeklyReflection.WeeklyGoal)
}

func TestDashboardServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DashboardServiceTestSuite))
}
