package services_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/core/services"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

type MediaServiceTestSuite struct {
	suite.Suite
	mockMediaRepo *MockMediaRepository
	mockEntryRepo *MockEntryRepository
	uploadDir     string
	service       ports.MediaSvc
}

func (suite *MediaServiceTestSuite) SetupTest() {
	suite.mockMediaRepo = new(MockMediaRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.uploadDir = suite.T().TempDir()
	suite.service = services.NewMediaService(suite.mockMediaRepo, suite.mockEntryRepo, suite.uploadDir)
}

func (suite *MediaServiceTestSuite) TestAttachImage_Success() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()
	stored := &models.Entry{EntryID: entryID, UserID: userID, Content: "with a photo", Mood: 4}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(stored, nil).Once()
	suite.mockMediaRepo.On("SaveMedia", ctx, mock.MatchedBy(func(media models.EntryMedia) bool {
		return media.EntryID == entryID &&
			media.MediaType == models.MediaImage &&
			strings.HasSuffix(media.FilePath, ".png")
	})).Return(nil).Once()

	media, err := suite.service.AttachImage(ctx, userID, entryID, "sunset.png", strings.NewReader("not-really-a-png"))

	suite.Require().NoError(err)
	suite.Require().NotNil(media)

	// The file made it to disk under a generated name
	data, err := os.ReadFile(media.FilePath)
	suite.Require().NoError(err)
	suite.Equal("not-really-a-png", string(data))
	suite.mockMediaRepo.AssertExpectations(suite.T())
}

func (suite *MediaServiceTestSuite) TestAttachImage_RejectsDisallowedExtension() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()
	stored := &models.Entry{EntryID: entryID, UserID: userID, Content: "entry", Mood: 3}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(stored, nil).Once()

	media, err := suite.service.AttachImage(ctx, userID, entryID, "notes.pdf", strings.NewReader("data"))

	suite.Require().Error(err)
	suite.Nil(media)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockMediaRepo.AssertNotCalled(suite.T(), "SaveMedia", mock.Anything, mock.Anything)
}

func (suite *MediaServiceTestSuite) TestAttachImage_NotOwned() {
	ctx := context.Background()
	entryID := uuid.NewString()
	stored := &models.Entry{EntryID: entryID, UserID: uuid.NewString(), Content: "entry", Mood: 3}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(stored, nil).Once()

	media, err := suite.service.AttachImage(ctx, uuid.NewString(), entryID, "sunset.png", strings.NewReader("data"))

	suite.Require().Error(err)
	suite.Nil(media)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *MediaServiceTestSuite) TestListEntryMedia() {
	ctx := context.Background()
	userID := uuid.NewString()
	entryID := uuid.NewString()
	stored := &models.Entry{EntryID: entryID, UserID: userID, Content: "entry", Mood: 3}
	media := []models.EntryMedia{
		{MediaID: uuid.NewString(), EntryID: entryID, FilePath: "uploads/images/a.png", MediaType: models.MediaImage},
	}

	suite.mockEntryRepo.On("FindEntryByID", ctx, entryID).Return(stored, nil).Once()
	suite.mockMediaRepo.On("FindMediaByEntry", ctx, entryID).Return(media, nil).Once()

	got, err := suite.service.ListEntryMedia(ctx, userID, entryID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.Equal(media[0].MediaID, got[0].MediaID)
}

func TestMediaServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MediaServiceTestSuite))
}
