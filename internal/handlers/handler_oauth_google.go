package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/middleware"
	"github.com/mindlogapp/mindlog_backend/internal/platform/config"
	"github.com/mindlogapp/mindlog_backend/internal/utils"
)

const googleAuthProvider = "google"

// oauthStateCookieName holds the CSRF state between redirect and callback.
const oauthStateCookieName = "oauth_state"

// GoogleOAuthHandler handles the Google sign-in redirect and callback.
type GoogleOAuthHandler struct {
	oauthService ports.GoogleOAuthSvc
	userService  ports.UserSvc
	authHandler  *AuthHandler
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(os ports.GoogleOAuthSvc, us ports.UserSvc, ah *AuthHandler) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		oauthService: os,
		userService:  us,
		authHandler:  ah,
	}
}

// registerGoogleOAuthRoutes sets up the Google sign-in routes. They are not
// registered when the OAuth credentials are missing.
func registerGoogleOAuthRoutes(rg *gin.Engine, cfg *config.Config, services *ports.ServiceContainer) {
	if cfg.GoogleClientID == "" || cfg.GoogleClientSecret == "" {
		return
	}

	h := NewGoogleOAuthHandler(services.GoogleOAuth, services.User, NewAuthHandler(services.User, services.Token, cfg))

	auth := rg.Group("/api/v1/auth/google")
	{
		auth.GET("/login", h.Login)
		auth.GET("/callback", h.Callback)
	}
}

// Login godoc
// @Summary Start Google sign-in
// @Description Redirects to the Google consent screen.
// @Tags auth
// @Success 307
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) Login(c *gin.Context) {
	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error("Failed to generate OAuth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to start sign-in"})
		return
	}

	c.SetCookie(oauthStateCookieName, state, 300, "/api/v1/auth/google", "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.AuthCodeURL(state))
}

// Callback godoc
// @Summary Google sign-in callback
// @Description Validates the Google response, creates the account on first sign-in and issues tokens.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} ErrorResponse
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookieName)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	c.SetCookie(oauthStateCookieName, "", -1, "/api/v1/auth/google", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Missing authorization code"})
		return
	}

	info, err := h.oauthService.ExchangeAndVerify(c.Request.Context(), code)
	if err != nil {
		logger.Warn("Google token exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Google sign-in failed"})
		return
	}

	user, err := h.userService.FindOrCreateProviderUser(c.Request.Context(), googleAuthProvider, info.Subject, info.Email)
	if err != nil {
		logger.Error("Failed to resolve Google user", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to sign in"})
		return
	}

	h.authHandler.issueTokens(c, user)
}
