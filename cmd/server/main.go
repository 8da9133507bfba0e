package main

import (
	"context"
	"fmt"

	"github.com/legacykeep/legacy-vault/internal/config"
	myHTTP "github.com/legacykeep/legacy-vault/internal/handler/http"
	"github.com/legacykeep/legacy-vault/internal/logger"
	"github.com/legacykeep/legacy-vault/internal/server"
	"github.com/legacykeep/legacy-vault/internal/service"
	"github.com/legacykeep/legacy-vault/internal/store"
	"github.com/legacykeep/legacy-vault/migrations"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("legacy-vault-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := context.Background()

	db, err := store.NewConnectPostgres(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}

	if err = migrations.Migrate(db.DB); err != nil {
		log.Fatal().Err(err).Msg("error running migrations")
	}

	storages := store.NewStorages(db)
	services := service.NewServices(storages, log)
	handler := myHTTP.NewHandler(services, cfg.Auth, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
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
