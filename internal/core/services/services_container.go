package services

import (
	"github.com/mindlogapp/mindlog_backend/internal/core/ports"
	"github.com/mindlogapp/mindlog_backend/internal/platform/config"
)

// NewServiceContainer wires every service with its repositories. This is the
// only place the concrete service constructors are called.
func NewServiceContainer(cfg *config.Config, repos ports.RepositoryProvider) *ports.ServiceContainer {
	container := &ports.ServiceContainer{}

	container.User = NewUserService(repos.UserRepo, repos.EntryRepo)
	container.Token = NewTokenService(cfg, repos.UserRepo)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Entry = NewEntryService(repos.EntryRepo, repos.MediaRepo)
	container.Dashboard = NewDashboardService(repos.EntryRepo, repos.ReflectionRepo)
	container.Reflection = NewReflectionService(repos.ReflectionRepo)
	container.Media = NewMediaService(repos.MediaRepo, repos.EntryRepo, cfg.UploadDir)
	container.Export = NewExportService(repos.EntryRepo, repos.UserRepo)

	return container
}
