// CineRec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinerec

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/tomtom215/cinerec/internal/api"
	"github.com/tomtom215/cinerec/internal/config"
	"github.com/tomtom215/cinerec/internal/logging"
	"github.com/tomtom215/cinerec/internal/supervisor"
	"github.com/tomtom215/cinerec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.LoadWithKoanf()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logCfg := logging.DefaultConfig()
	logCfg.Level = cfg.Logging.Level
	logCfg.Format = cfg.Logging.Format
	logCfg.Caller = cfg.Logging.Caller
	logging.Init(logCfg)

	logging.Info().
		Str("version", version).
		Str("storage", cfg.Storage.Backend).
		Bool("events", cfg.Events.Enabled).
		Msg("Starting CineRec")

	if err := run(cfg); err != nil {
		logging.Fatal().Err(err).Msg("CineRec stopped with error")
	}
	logging.Info().Msg("Application stopped gracefully")
}

func run(cfg *config.Config) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := initStore(&cfg.Storage)
	if err != nil {
		return err
	}

	dataset, err := loadDataset(&cfg.Catalog)
	if err != nil {
		_ = store.Close()
		return err
	}
	if err := seedRatings(ctx, store, dataset, cfg.Catalog.SeedRatings, &cfg.Recommend); err != nil {
		_ = store.Close()
		return err
	}

	evt, err := initEvents(&cfg.Events)
	if err != nil {
		_ = store.Close()
		return err
	}

	engine, err := initEngine(ctx, cfg, dataset.Items, store, evt.publisher())
	if err != nil {
		evt.close()
		_ = store.Close()
		return err
	}
	defer func() {
		evt.close()
		if err := engine.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing rating store")
		}
	}()

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	tree.AddModelService(services.NewRefreshService(engine, cfg.Recommend.RefreshInterval, logging.WithComponent("refresh")))

	if err := evt.startConsumer(engine, tree); err != nil {
		return err
	}

	handler := api.NewHandler(engine, version, api.HandlerConfig{
		DefaultResults:  cfg.Recommend.DefaultResults,
		DefaultTopRated: cfg.Recommend.DefaultTopRated,
	})
	router := api.NewRouter(handler, api.ChiMiddlewareConfigFromServer(&cfg.Server))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: cfg.Server.Timeout,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.WithComponent("http")))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case sig := <-sigCh:
			logging.Info().Str("signal", sig.String()).Msg("Received shutdown signal")
			cancel()
		case <-ctx.Done():
		}
	}()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	err = tree.Serve(ctx)

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
