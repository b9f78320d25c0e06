package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/core/services"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/models"
	"github.com/mindlogapp/mindlog_backend/internal/utils"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*models.User, error) {
	args := m.Called(ctx, userID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, authProvider string, providerUserID string) (*models.User, error) {
	args := m.Called(ctx, authProvider, providerUserID)
	var user *models.User
	if args.Get(0) != nil {
		user = args.Get(0).(*models.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, updatedAt time.Time) error {
	args := m.Called(ctx, userID, passwordHash, updatedAt)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateRefreshToken(ctx context.Context, userID string, refreshTokenHash string, refreshTokenExpiryTime time.Time) error {
	args := m.Called(ctx, userID, refreshTokenHash, refreshTokenExpiryTime)
	return args.Error(0)
}

func (m *MockUserRepository) ClearRefreshToken(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Test Suite ---
type UserServiceTestSuite struct {
	suite.Suite
	mockUserRepo  *MockUserRepository
	mockEntryRepo *MockEntryRepository
	service       ports.UserSvc
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.mockUserRepo = new(MockUserRepository)
	suite.mockEntryRepo = new(MockEntryRepository)
	suite.service = services.NewUserService(suite.mockUserRepo, suite.mockEntryRepo)
}

func (suite *UserServiceTestSuite) TestRegister_Success() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "journaler", Password: "password123"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user models.User) bool {
		return user.Username == "journaler" &&
			user.UserID != "" &&
			user.PasswordHash != "" &&
			user.PasswordHash != req.Password
	})).Return(nil).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	suite.Equal("journaler", user.Username)
	suite.True(utils.CheckPasswordHash("password123", user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateUsername() {
	ctx := context.Background()
	req := dto.RegisterRequest{Username: "journaler", Password: "password123"}

	suite.mockUserRepo.On("SaveUser", ctx, mock.AnythingOfType("models.User")).Return(apperrors.ErrDuplicate).Once()

	user, err := suite.service.Register(ctx, req)

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_Success() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &models.User{UserID: uuid.NewString(), Username: "journaler", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "journaler").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "journaler", "password123")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestAuthenticate_WrongPassword() {
	ctx := context.Background()
	hash, err := utils.HashPassword("password123")
	suite.Require().NoError(err)
	stored := &models.User{UserID: uuid.NewString(), Username: "journaler", PasswordHash: hash}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "journaler").Return(stored, nil).Once()

	user, err := suite.service.Authenticate(ctx, "journaler", "wrong-password")

	suite.Require().Error(err)
	suite.Nil(user)
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestAuthenticate_UnknownUser() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByUsername", ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()

	user, err := suite.service.Authenticate(ctx, "ghost", "password123")

	suite.Require().Error(err)
	suite.Nil(user)
	// Unknown user and wrong password are indistinguishable to the caller
	suite.ErrorIs(err, apperrors.ErrUnauthorized)
}

func (suite *UserServiceTestSuite) TestResetPassword_Success() {
	ctx := context.Background()
	stored := &models.User{UserID: uuid.NewString(), Username: "journaler"}

	suite.mockUserRepo.On("FindUserByUsername", ctx, "journaler").Return(stored, nil).Once()
	suite.mockUserRepo.On("UpdatePasswordHash", ctx, stored.UserID, mock.MatchedBy(func(hash string) bool {
		return utils.CheckPasswordHash("new-password-1", hash)
	}), mock.AnythingOfType("time.Time")).Return(nil).Once()

	err := suite.service.ResetPassword(ctx, dto.ResetPasswordRequest{Username: "journaler", NewPassword: "new-password-1"})

	suite.Require().NoError(err)
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func (suite *UserServiceTestSuite) TestGetProfile() {
	ctx := context.Background()
	userID := uuid.NewString()
	stored := &models.User{UserID: userID, Username: "journaler"}

	suite.mockUserRepo.On("FindUserByID", ctx, userID).Return(stored, nil).Once()
	suite.mockEntryRepo.On("CountEntriesByUser", ctx, userID).Return(int64(42), nil).Once()

	profile, err := suite.service.GetProfile(ctx, userID)

	suite.Require().NoError(err)
	suite.Equal("journaler", profile.User.Username)
	suite.Equal(int64(42), profile.TotalEntries)
}

func (suite *UserServiceTestSuite) TestFindOrCreateProviderUser_ExistingUser() {
	ctx := context.Background()
	stored := &models.User{UserID: uuid.NewString(), Username: "journaler"}

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "sub-123").Return(stored, nil).Once()

	user, err := suite.service.FindOrCreateProviderUser(ctx, "google", "sub-123", "journaler")

	suite.Require().NoError(err)
	suite.Equal(stored.UserID, user.UserID)
	suite.mockUserRepo.AssertNotCalled(suite.T(), "SaveUser", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestFindOrCreateProviderUser_CreatesOnFirstSignIn() {
	ctx := context.Background()

	suite.mockUserRepo.On("FindUserByProviderDetails", ctx, "google", "sub-123").Return(nil, apperrors.ErrNotFound).Once()
	suite.mockUserRepo.On("SaveUser", ctx, mock.MatchedBy(func(user models.User) bool {
		return user.AuthProvider.Valid && user.AuthProvider.String == "google" &&
			user.ProviderUserID.Valid && user.ProviderUserID.String == "sub-123" &&
			user.Username == "journaler"
	})).Return(nil).Once()

	user, err := suite.service.FindOrCreateProviderUser(ctx, "google", "sub-123", "journaler")

	suite.Require().NoError(err)
	suite.Require().NotNil(user)
	// Provider accounts never get a usable password
	assert.False(suite.T(), utils.CheckPasswordHash("anything", user.PasswordHash))
	suite.mockUserRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}
