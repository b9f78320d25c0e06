package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/handlers"
	"github.com/mindlogapp/mindlog_backend/internal/models"
	"github.com/mindlogapp/mindlog_backend/internal/platform/config"
)

// --- Mock EntryService ---
type MockEntryService struct {
	mock.Mock
}

func (m *MockEntryService) CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*models.Entry, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryService) GetEntry(ctx context.Context, userID string, entryID string) (*models.Entry, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryService) ListEntries(ctx context.Context, userID string, limit int) ([]models.Entry, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Entry), args.Error(1)
}

func (m *MockEntryService) UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*models.Entry, error) {
	args := m.Called(ctx, userID, entryID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Entry), args.Error(1)
}

func (m *MockEntryService) DeleteEntry(ctx context.Context, userID string, entryID string) error {
	args := m.Called(ctx, userID, entryID)
	return args.Error(0)
}

var _ ports.EntrySvc = (*MockEntryService)(nil)

// --- Mock MediaService ---
type MockMediaService struct {
	mock.Mock
}

func (m *MockMediaService) AttachImage(ctx context.Context, userID string, entryID string, filename string, file io.Reader) (*models.EntryMedia, error) {
	args := m.Called(ctx, userID, entryID, filename, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EntryMedia), args.Error(1)
}

func (m *MockMediaService) ListEntryMedia(ctx context.Context, userID string, entryID string) ([]models.EntryMedia, error) {
	args := m.Called(ctx, userID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.EntryMedia), args.Error(1)
}

var _ ports.MediaSvc = (*MockMediaService)(nil)

// --- Test Suite ---
type EntryHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockEntryService *MockEntryService
	mockMediaService *MockMediaService
	jwtSecret        string
}

func (suite *EntryHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "mindlog-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *EntryHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.mockEntryService = new(MockEntryService)
	suite.mockMediaService = new(MockMediaService)

	cfg := &config.Config{
		JWTSecret:    suite.jwtSecret,
		IsProduction: true, // keeps swagger out of the test router
	}
	services := &ports.ServiceContainer{
		Entry: suite.mockEntryService,
		Media: suite.mockMediaService,
	}
	handlers.RegisterRoutes(suite.router, cfg, services)
}

func (suite *EntryHandlerTestSuite) doRequest(method, path, token string, body []byte) *httptest.ResponseRecorder {
	req, err := http.NewRequest(method, path, bytes.NewReader(body))
	suite.Require().NoError(err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_Success() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	created := &models.Entry{
		EntryID: uuid.NewString(),
		UserID:  userID,
		Content: "First entry.",
		Mood:    4,
	}

	suite.mockEntryService.On("CreateEntry", mock.Anything, userID, mock.MatchedBy(func(req dto.CreateEntryRequest) bool {
		return req.Content == "First entry." && req.Mood == 4
	})).Return(created, nil).Once()

	body, _ := json.Marshal(gin.H{"content": "First entry.", "mood": 4})
	w := suite.doRequest(http.MethodPost, "/api/v1/entries", token, body)

	suite.Equal(http.StatusCreated, w.Code)

	var resp dto.EntryResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(created.EntryID, resp.EntryID)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_MissingContent() {
	token := suite.generateTestToken(uuid.NewString())

	body, _ := json.Marshal(gin.H{"mood": 4})
	w := suite.doRequest(http.MethodPost, "/api/v1/entries", token, body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockEntryService.AssertNotCalled(suite.T(), "CreateEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *EntryHandlerTestSuite) TestCreateEntry_NoToken() {
	body, _ := json.Marshal(gin.H{"content": "First entry.", "mood": 4})
	w := suite.doRequest(http.MethodPost, "/api/v1/entries", "", body)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_NotFound() {
	userID := uuid.NewString()
	entryID := uuid.NewString()
	token := suite.generateTestToken(userID)

	suite.mockEntryService.On("GetEntry", mock.Anything, userID, entryID).Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *EntryHandlerTestSuite) TestGetEntry_Forbidden() {
	userID := uuid.NewString()
	entryID := uuid.NewString()
	token := suite.generateTestToken(userID)

	suite.mockEntryService.On("GetEntry", mock.Anything, userID, entryID).Return(nil, apperrors.ErrForbidden).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *EntryHandlerTestSuite) TestListEntries_DefaultLimit() {
	userID := uuid.NewString()
	token := suite.generateTestToken(userID)

	entries := []models.Entry{
		{EntryID: uuid.NewString(), UserID: userID, Content: "one", Mood: 3},
	}
	suite.mockEntryService.On("ListEntries", mock.Anything, userID, 100).Return(entries, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/entries", token, nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.ListEntriesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Len(resp.Entries, 1)
}

func (suite *EntryHandlerTestSuite) TestDeleteEntry_NoContent() {
	userID := uuid.NewString()
	entryID := uuid.NewString()
	token := suite.generateTestToken(userID)

	suite.mockEntryService.On("DeleteEntry", mock.Anything, userID, entryID).Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/entries/"+entryID, token, nil)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockEntryService.AssertExpectations(suite.T())
}

func TestEntryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(EntryHandlerTestSuite))
}
