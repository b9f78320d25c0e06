package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/apperrors"
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/models"
	"github.com/mindlogapp/mindlog_backend/internal/platform/config"
	"github.com/mindlogapp/mindlog_backend/internal/utils"
)

// tokenService implements TokenSvc for JWT access tokens and opaque refresh
// tokens. Refresh tokens are stored hashed; rotation happens on every refresh.
type tokenService struct {
	cfg      *config.Config
	userRepo ports.UserRepository
}

// NewTokenService creates a new token service.
func NewTokenService(cfg *config.Config, userRepo ports.UserRepository) ports.TokenSvc {
	return &tokenService{cfg: cfg, userRepo: userRepo}
}

func (s *tokenService) GenerateAccessToken(ctx context.Context, user *models.User) (string, time.Time, error) {
	expiryTime := time.Now().Add(s.cfg.JWTExpiryDuration)
	accessToken, err := utils.GenerateJWT(user.UserID, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}
	return accessToken, expiryTime, nil
}

func (s *tokenService) IssueRefreshToken(ctx context.Context, user *models.User) (string, time.Time, error) {
	rawToken, err := utils.GenerateSecureRandomString(32)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	expiryTime := time.Now().Add(s.cfg.RefreshTokenExpiryDuration)
	if err := s.userRepo.UpdateRefreshToken(ctx, user.UserID, utils.HashRefreshToken(rawToken), expiryTime); err != nil {
		return "", time.Time{}, fmt.Errorf("failed to store refresh token: %w", err)
	}
	return rawToken, expiryTime, nil
}

func (s *tokenService) ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*models.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to fetch user for refresh token validation: %w", err)
	}

	if !user.RefreshTokenHash.Valid || !user.RefreshTokenExpiryTime.Valid {
		return nil, apperrors.ErrUnauthorized
	}
	if time.Now().After(user.RefreshTokenExpiryTime.Time) {
		return nil, apperrors.ErrRefreshTokenExpired
	}
	if !utils.CompareRefreshTokenHash(refreshToken, user.RefreshTokenHash.String) {
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

func (s *tokenService) RevokeRefreshToken(ctx context.Context, userID string) error {
	if err := s.userRepo.ClearRefreshToken(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear refresh token: %w", err)
	}
	return nil
}
