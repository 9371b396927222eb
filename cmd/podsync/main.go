package main

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-pod-sync/internal/adapter"
	"github.com/MKhiriev/go-pod-sync/internal/client"
	"github.com/MKhiriev/go-pod-sync/internal/config"
	"github.com/MKhiriev/go-pod-sync/internal/logger"
	"github.com/MKhiriev/go-pod-sync/internal/service"
	"github.com/MKhiriev/go-pod-sync/internal/store"
	"github.com/MKhiriev/go-pod-sync/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-pod-sync-client")
	cfg, err := config.GetClientConfig(buildVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	storages, err := store.NewClientStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	services := service.NewClientServices(storages, serverAdapter, cfg, clockwork.NewRealClock(),
		service.WithSyncListener(client.NewSyncLogger(log)))

	app, err := client.NewApp(services, workers.NewWorkers(services.SyncJob, cfg.Workers, log), cfg.Account, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client run error")
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
