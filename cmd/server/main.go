package main

import (
	"context"
	"fmt"

	"github.com/art-space/artspace/internal/adapter"
	"github.com/art-space/artspace/internal/config"
	"github.com/art-space/artspace/internal/handler"
	"github.com/art-space/artspace/internal/logger"
	"github.com/art-space/artspace/internal/server"
	"github.com/art-space/artspace/internal/service"
	"github.com/art-space/artspace/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("artspace-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	mailer := newMailer(cfg.Mailer, log)

	services, err := service.NewServices(*storages, *cfg, mailer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newMailer picks the outbound mail transport: HTTP when a notification
// service address is configured, a logging no-op otherwise.
func newMailer(cfg config.Mailer, log *logger.Logger) adapter.Mailer {
	if cfg.Address == "" {
		log.Warn().Msg("no mailer address configured, password reset mails will be dropped")
		return adapter.NewNopMailer(log)
	}

	mailer, err := adapter.NewHTTPMailer(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mailer")
	}

	return mailer
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
