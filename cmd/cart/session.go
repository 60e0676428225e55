package main

import (
	"context"
	"os"

	"go.uber.org/zap"

	"github.com/jacksmith/rocketcart/internal/cart"
	"github.com/jacksmith/rocketcart/internal/catalog"
	"github.com/jacksmith/rocketcart/internal/cli"
	"github.com/jacksmith/rocketcart/internal/logger"
	"github.com/jacksmith/rocketcart/internal/storage"
)

// session holds everything one command needs to work on the cart.
type session struct {
	store  *cart.Store
	kv     storage.KV
	logger *zap.Logger
}

// openSession opens the workspace in the current directory, loads its
// config and builds a cart store over the configured backend.
func openSession(ctx context.Context) (*session, error) {
	s, err := storage.Open(".")
	if err != nil {
		return nil, err
	}

	cfg, err := s.LoadConfig()
	if err != nil {
		return nil, err
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	kv, err := s.OpenKV(ctx, cfg)
	if err != nil {
		return nil, err
	}

	client := catalog.NewClient(catalog.Config{
		BaseURL: cfg.APIURL,
		Timeout: cfg.Timeout,
		Retries: cfg.Retries,
	})

	store := cart.New(ctx, kv, client, cart.Options{
		Key:      cfg.StorageKey,
		Logger:   logger.Named(log, "cart"),
		Notifier: cli.Notifier{W: os.Stderr},
	})

	log.Debug("session opened", zap.String("storage", cfg.Storage), zap.String("api_url", cfg.APIURL))
	return &session{store: store, kv: kv, logger: log}, nil
}

// Close releases the store, the storage backend and the logger.
func (s *session) Close() {
	_ = s.store.Close()
	if err := s.kv.Close(); err != nil {
		s.logger.Warn("failed to close storage", zap.Error(err))
	}
	_ = s.logger.Sync()
}
