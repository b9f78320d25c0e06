package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/models"
	"github.com/mindlogapp/mindlog_backend/internal/utils"
)

type userService struct {
	userRepo  ports.UserRepository
	entryRepo ports.EntryRepository
}

// NewUserService creates a new user service. The entry repository is only
// used for the profile totals.
func NewUserService(userRepo ports.UserRepository, entryRepo ports.EntryRepository) ports.UserSvc {
	return &userService{userRepo: userRepo, entryRepo: entryRepo}
}

func (s *userService) Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error) {
	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now().UTC()
	user := models.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		PasswordHash: hash,
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil, fmt.Errorf("username %q already exists: %w", req.Username, apperrors.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to save user: %w", err)
	}
	return &user, nil
}

// Authenticate checks the username/password pair. Both a missing user and a
// wrong password come back as ErrUnauthorized so the two cases are
// indistinguishable to the caller.
func (s *userService) Authenticate(ctx context.Context, username string, password string) (*models.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *userService) ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error {
	user, err := s.userRepo.FindUserByUsername(ctx, req.Username)
	if err != nil {
		return fmt.Errorf("failed to look up user for password reset: %w", err)
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.userRepo.UpdatePasswordHash(ctx, user.UserID, hash, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}

func (s *userService) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user for profile: %w", err)
	}

	total, err := s.entryRepo.CountEntriesByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to count entries: %w", err)
	}

	return &dto.ProfileResponse{
		User:         dto.ToUserResponse(user),
		TotalEntries: total,
	}, nil
}

// FindOrCreateProviderUser resolves a Google-authenticated identity to a
// local user, creating the account on first sign-in. Provider accounts carry
// an unusable password hash; they can only ever log in via the provider.
func (s *userService) FindOrCreateProviderUser(ctx context.Context, authProvider string, providerUserID string, username string) (*models.User, error) {
	user, err := s.userRepo.FindUserByProviderDetails(ctx, authProvider, providerUserID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to look up provider user: %w", err)
	}

	now := time.Now().UTC()
	newUser := models.User{
		UserID:         uuid.NewString(),
		Username:       username,
		PasswordHash:   "!", // not a valid bcrypt hash, password login impossible
		AuthProvider:   sql.NullString{String: authProvider, Valid: true},
		ProviderUserID: sql.NullString{String: providerUserID, Valid: true},
		AuditFields: models.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		return nil, fmt.Errorf("failed to create provider user: %w", err)
	}
	return &newUser, nil
}
