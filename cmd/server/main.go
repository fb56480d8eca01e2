package main

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/handler"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/metrics"
	"github.com/MKhiriev/go-tin-keeper/internal/server"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/store"
	"github.com/MKhiriev/go-tin-keeper/internal/workers"
	"github.com/MKhiriev/go-tin-keeper/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("tin-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	ctx := context.Background()

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(registry)

	var repositories *store.Repositories
	if cfg.Storage.DB.DSN != "" {
		db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
		defer db.Close()
		repositories = store.NewRepositories(db, log)
	} else {
		log.Warn().Msg("no database configured, locale codes are kept in memory")
	}

	services := service.NewServices(repositories, *cfg, buildInfo, m, log)

	initial, err := service.LoadLocaleCodesFile(cfg.App.LocaleCodesFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading locale codes")
	}
	var localeCodeRepository store.LocaleCodeRepository
	if repositories != nil {
		localeCodeRepository = repositories.LocaleCodeRepository
	}
	if err = service.BootstrapLocaleCodes(log.WithContext(ctx), services.LocaleCodeService, localeCodeRepository, initial); err != nil {
		log.Fatal().Err(err).Msg("error installing locale codes")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, m, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	var refresh workers.Worker
	if repositories != nil {
		refresh = workers.NewLocaleRefreshWorker(services.LocaleCodeService, cfg.App.LocaleRefreshInterval, log)
	}

	srv, err := server.NewServer(handlers, cfg.Server, registry, workers.NewWorkers(refresh), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(ctx); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}
