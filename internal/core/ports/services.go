package ports

import (
	"context"
	"io"
	"time"

	"github.com/mindlogapp/mindlog_backend/internal/dto"
	"github.com/mindlogapp/mindlog_backend/internal/models"
)

// UserSvc handles account lifecycle and credential checks.
type UserSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*models.User, error)
	Authenticate(ctx context.Context, username string, password string) (*models.User, error)
	ResetPassword(ctx context.Context, req dto.ResetPasswordRequest) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetProfile(ctx context.Context, userID string) (*dto.ProfileResponse, error)
	FindOrCreateProviderUser(ctx context.Context, authProvider string, providerUserID string, username string) (*models.User, error)
}

// TokenSvc issues and validates access and refresh tokens.
type TokenSvc interface {
	GenerateAccessToken(ctx context.Context, user *models.User) (string, time.Time, error)
	// IssueRefreshToken generates a fresh refresh token, persists its hash
	// and returns the raw token with its expiry.
	IssueRefreshToken(ctx context.Context, user *models.User) (string, time.Time, error)
	ValidateRefreshToken(ctx context.Context, userID string, refreshToken string) (*models.User, error)
	RevokeRefreshToken(ctx context.Context, userID string) error
}

// GoogleOAuthSvc drives the Google sign-in flow.
type GoogleOAuthSvc interface {
	AuthCodeURL(state string) string
	// ExchangeAndVerify swaps the authorization code for tokens and
	// validates the returned ID token.
	ExchangeAndVerify(ctx context.Context, code string) (*dto.GoogleUserInfo, error)
}

// EntrySvc handles journal entry CRUD with ownership enforcement.
type EntrySvc interface {
	CreateEntry(ctx context.Context, userID string, req dto.CreateEntryRequest) (*models.Entry, error)
	GetEntry(ctx context.Context, userID string, entryID string) (*models.Entry, error)
	ListEntries(ctx context.Context, userID string, limit int) ([]models.Entry, error)
	UpdateEntry(ctx context.Context, userID string, entryID string, req dto.UpdateEntryRequest) (*models.Entry, error)
	DeleteEntry(ctx context.Context, userID string, entryID string) error
}

// DashboardSvc assembles the analytics bundle for the dashboard view.
type DashboardSvc interface {
	GetDashboard(ctx context.Context, userID string) (*dto.DashboardResponse, error)
}

// ReflectionSvc handles the once-per-week reflection upsert.
type ReflectionSvc interface {
	SaveWeeklyReflection(ctx context.Context, userID string, req dto.SaveReflectionRequest) (*models.WeeklyReflection, error)
}

// MediaSvc handles entry attachments.
type MediaSvc interface {
	AttachImage(ctx context.Context, userID string, entryID string, filename string, file io.Reader) (*models.EntryMedia, error)
	ListEntryMedia(ctx context.Context, userID string, entryID string) ([]models.EntryMedia, error)
}

// ExportSvc renders a user's full journal to a downloadable document.
type ExportSvc interface {
	ExportEntriesPDF(ctx context.Context, userID string) ([]byte, error)
}

// ServiceContainer bundles all services for handler wiring.
type ServiceContainer struct {
	User        UserSvc
	Token       TokenSvc
	GoogleOAuth GoogleOAuthSvc
	Entry       EntrySvc
	Dashboard   DashboardSvc
	Reflection  ReflectionSvc
	Media       MediaSvc
	Export      ExportSvc
}
