package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/core/services"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

type ExportServiceTestSuite struct {
	suite.Suite
	mockEntryRepo *MockEntryRepository
	mockUserRepo  *MockUserRepository
	service       ports.ExportSvc
}

func (suite *ExportServiceTestSuite) SetupTest() {
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.mockUserRepo = new(MockUserRepository)
	suite.service = services.NewExportService(suite.mockEntryRepo, suite.mockUserRepo)
}

func (suite *ExportServiceTestSuite) TestExportEntriesPDF() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &models.User{UserID: userID, Username: "journaler"}

	entries := []models.Entry{
		{
			EntryID: uuid.NewString(), UserID: userID,
			Content: "A long walk cleared my head.", Mood: 4, Emotion: strPtr("calm"),
			AuditFields: models.AuditFields{CreatedAt: time.Date(2025, 6, 18, 9, 30, 0, 0, time.UTC)},
		},
		{
			EntryID: uuid.NewString(), UserID: userID,
			Content: "Rough night.", Mood: 2,
			AuditFields: models.AuditFields{CreatedAt: time.Date(2025, 6, 17, 22, 0, 0, 0, time.UTC)},
		},
	}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockEntryRepo.On("FindAllEntriesByUser", ctx, userID).Return(entries, nil).Once()

	data, err := suite.service.ExportEntriesPDF(ctx, userID)

	suite.Require().NoError(err)
	suite.Require().NotEmpty(data)
	suite.Equal("%PDF", string(data[:4]))
	suite.mockEntryRepo.AssertExpectations(suite.T())
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *ExportServiceTestSuite) TestExportEntriesPDF_NoEntries() {
	ctx := context.Background()
	userID := uuid.NewString()
	user := &models.User{UserID: userID, Username: "journaler"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(user, nil).Once()
	suite.mockEntryRepo.On("FindAllEntriesByUser", ctx, userID).Return([]models.Entry{}, nil).Once()

	data, err := suite.service.ExportEntriesPDF(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal("%PDF", string(data[:4]))
}

func TestExportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExportServiceTestSuite))
}
