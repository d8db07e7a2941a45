package main

import (
	"context"
	"fmt"
	"os"

	"github.com/arvelin/fieldflow/internal/config"
	"github.com/arvelin/fieldflow/internal/db"
	"github.com/arvelin/fieldflow/internal/excel"
	httphandler "github.com/arvelin/fieldflow/internal/http"
	"github.com/arvelin/fieldflow/internal/logger"
	"github.com/arvelin/fieldflow/internal/pdf"
	"github.com/arvelin/fieldflow/internal/repository"
	"github.com/arvelin/fieldflow/internal/repository/memory"
	"github.com/arvelin/fieldflow/internal/repository/postgres"
	"github.com/arvelin/fieldflow/internal/seed"
	"github.com/arvelin/fieldflow/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Environment)

	var store repository.Store
	if cfg.DB.DSN != "" {
		database, err := db.New(cfg, log)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect database")
		}
		store = postgres.NewStore(database)
		log.Info().Msg("using postgres store")
	} else {
		store = memory.NewStore()
		log.Info().Msg("using in-memory store")
		if cfg.Orders.SeedDemo {
			if err := seed.Demo(context.Background(), store); err != nil {
				log.Fatal().Err(err).Msg("failed to seed demo data")
			}
			log.Info().Msg("seeded demo data")
		}
	}

	reportGenerator := excel.NewGenerator()
	pdfGenerator := pdf.NewGenerator()

	svc := service.New(store, reportGenerator, pdfGenerator, cfg, log)
	handler := httphandler.NewHandler(svc, log)
	router := httphandler.NewRouter(handler, cfg.Environment)

	addr := fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
	log.Info().Str("addr", addr).Msg("starting orders service")

	if err := router.Run(addr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(1)
	}
}
