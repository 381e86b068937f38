package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-career-guide/internal/adapter"
	"github.com/MKhiriev/go-career-guide/internal/config"
	"github.com/MKhiriev/go-career-guide/internal/handler"
	"github.com/MKhiriev/go-career-guide/internal/logger"
	"github.com/MKhiriev/go-career-guide/internal/oracle"
	"github.com/MKhiriev/go-career-guide/internal/server"
	"github.com/MKhiriev/go-career-guide/internal/service"
	"github.com/MKhiriev/go-career-guide/internal/store"
	"github.com/MKhiriev/go-career-guide/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("career-guide-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Bool("federated_sign_in", cfg.OAuth.Google.Enabled()).
		Str("oracle_model", cfg.Oracle.Model).
		Msg("received configs")

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	oracleClient, err := oracle.NewGemini(ctx, cfg.Oracle, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating oracle client")
	}

	var identityProvider adapter.IdentityProvider
	if cfg.OAuth.Google.Enabled() {
		identityProvider = adapter.NewGoogleProvider(cfg.OAuth.Google, log)
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	services, err := service.NewServices(storages, oracleClient, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, identityProvider, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
	}
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
