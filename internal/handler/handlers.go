package handler

import (
	"github.com/art-space/artspace/internal/config"
	"github.com/art-space/artspace/internal/handler/http"
	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	return &Handlers{
		HTTP: http.NewHandler(services, logger),
	}, nil
}
