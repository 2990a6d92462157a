package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"subrewriter/internal/config"
	"subrewriter/internal/http/server"
	"subrewriter/internal/linkrewriter"
	"subrewriter/internal/logger"
	"subrewriter/internal/repository/filestore"
	"subrewriter/internal/repository/inmemory"
	"subrewriter/internal/services/converter"
	"subrewriter/internal/subscription"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dedup, err := linkrewriter.ParseDedupPolicy(cfg.DedupPolicy)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	storage := inmemory.NewStorage()
	defer storage.Close()

	if _, err := filestore.Load(ctx, *log, cfg.SourcesFilePath, storage); err != nil {
		log.Fatal().Err(err).Msg("failed to load sources")
	}

	fetcher := subscription.NewFetcher(subscription.Config{
		Timeout:  cfg.FetchTimeout,
		RetryMax: cfg.FetchRetryMax,
		MaxBytes: cfg.FetchMaxBytes,
	}, *log)

	rewriter := linkrewriter.New(linkrewriter.Options{
		Dedup:             dedup,
		RequireTargetHost: cfg.RequireTargetHost,
	})

	svc := converter.NewServiceConverter(storage, fetcher, rewriter, *log,
		converter.WithDirectURLs(cfg.AllowDirectURLs))

	srv, err := server.NewServer(log, *cfg, svc)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create server")
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatal().Err(err).Msg("server stopped")
		}
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("graceful shutdown failed")
		}
	}
}
