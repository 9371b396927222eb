package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/handler"
	"github.com/MKhiriev/go-pod-sync/internal/handler/http"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/server"
	"github.com/MKhiriev/go-pod-sync/internal/serverstate"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/utils"
	"github.com/MKhiriev/go-pod-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-pod-sync-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	var opts []http.Option
	if cfg.Auth.HashKey != "" {
		utils.InitHasherPool(cfg.Auth.HashKey)
		opts = append(opts, http.WithResponseSigning())
	}

	storages, err := store.NewServerStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server storages")
	}
	defer storages.Close()

	state := serverstate.New(storages, clockwork.NewRealClock())
	services := service.NewServices(state, cfg.Auth, log)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	handlers, err := handler.NewHandlers(services, buildInfo, cfg.Server, log, opts...)
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
