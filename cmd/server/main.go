package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/autoshowroom/backend/internal/config"
	"github.com/autoshowroom/backend/internal/db"
	"github.com/autoshowroom/backend/internal/es"
	"github.com/autoshowroom/backend/internal/httpserver"
	"github.com/autoshowroom/backend/internal/logging"
	"github.com/autoshowroom/backend/internal/mykafka"
	"github.com/autoshowroom/backend/internal/repo"
	"github.com/autoshowroom/backend/internal/service"
	"github.com/autoshowroom/backend/internal/service/search"
)

func main() {
	cfg, err := config.Load(".env")
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(logging.Options{Level: cfg.LogLevel, Service: cfg.ServiceName})
	slog.SetDefault(logger)

	pool := db.DefaultPool()
	pool.MaxOpenConns = cfg.DBMaxOpenConns

	initCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	gdb, err := db.Open(initCtx, cfg.DatabaseURL, pool)
	cancel()
	if err != nil {
		logger.Error("db_connect_failed", "error", err)
		os.Exit(1)
	}
	logger.Info("db_connected")

	if err := db.Migrate(gdb); err != nil {
		logger.Error("db_migrate_failed", "error", err)
		os.Exit(1)
	}

	events := mykafka.New(cfg.KafkaBrokers, logger)

	catalog := &service.CatalogService{Events: events}
	esClient, err := es.NewClient(cfg)
	if err != nil {
		logger.Warn("search_index_disabled", "reason", "elasticsearch unavailable", "error", err)
	} else if esClient != nil {
		catalog.Index = &search.ESIndex{ES: esClient, Index: cfg.ESIndex}
	}

	store := repo.New(gdb)
	catalog.Repo = store

	e := httpserver.New(&httpserver.Deps{
		UserHandler:    &httpserver.UserHTTP{Svc: &service.UserService{Repo: store, Events: events}},
		CatalogHandler: &httpserver.CatalogHTTP{Svc: catalog},
		ContactHandler: &httpserver.ContactHTTP{Svc: &service.ContactService{Repo: store, Events: events}},
		Ready:          func(ctx context.Context) error { return db.Ping(ctx, gdb) },
		AllowedOrigin:  cfg.CORSAllowedOrigin,
		Logger:         logger,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server_listening", "addr", srv.Addr, "allowed_origin", cfg.CORSAllowedOrigin)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http_server_failed", "error", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("shutting_down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server_shutdown_failed", "error", err)
	}
	if err := events.Close(); err != nil {
		logger.Error("kafka_close_failed", "error", err)
	}
	if err := db.Close(gdb); err != nil {
		logger.Error("db_close_failed", "error", err)
	}

	logger.Info("shutdown_complete")
}
