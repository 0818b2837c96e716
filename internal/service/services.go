package service

import (
	"github.com/art-space/artspace/internal/adapter"
	"github.com/art-space/artspace/internal/config"
	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/store"
)

type Services struct {
	AuthService    AuthService
	UserService    UserService
	ArtworkService ArtworkService
	AppInfoService AppInfoService
}

func NewServices(storages store.Storages, cfg config.StructuredConfig, mailer adapter.Mailer, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, err
	}

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, mailer, cfg.App, logger),
		UserService:    NewUserService(storages.UserRepository, logger),
		ArtworkService: NewArtworkService(storages.ArtworkRepository, logger),
		AppInfoService: appInfoService,
	}, nil
}
