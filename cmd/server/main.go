package main

import (
	"context"
	"fmt"

	"github.com/campusmarket/campus-market/internal/config"
	"github.com/campusmarket/campus-market/internal/handler"
	"github.com/campusmarket/campus-market/internal/logger"
	"github.com/campusmarket/campus-market/internal/server"
	"github.com/campusmarket/campus-market/internal/service"
	"github.com/campusmarket/campus-market/internal/store"
	"github.com/campusmarket/campus-market/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("campus-market-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	if cfg.UsesDefaultSignKey() {
		log.Warn().Msg("running with the built-in token sign key; set APP_TOKEN_SIGN_KEY in production")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	if err = migrations.Migrate(storages.DB().DB); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	services := service.NewServices(storages, cfg.App, log)

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
