package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jacksmith/rocketcart/internal/devserver"
	"github.com/jacksmith/rocketcart/internal/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local product/stock service from a fixture file",
	Long: `Serve GET /products/:id and GET /stock/:id from a JSON fixture, for
development without the real stock service.

The fixture has the form:
  {"products": [{"id": 1, "title": "...", "price": 179.9, "image": "..."}],
   "stock":    [{"id": 1, "amount": 3}]}

Examples:
  cart serve --data server.json
  cart serve --data server.json --addr :8080`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

var (
	serveData string
	serveAddr string
)

func init() {
	serveCmd.Flags().StringVar(&serveData, "data", "server.json", "fixture file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":3333", "listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	data, err := devserver.LoadData(serveData)
	if err != nil {
		return err
	}

	log, err := logger.New("info")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	srv := &http.Server{
		Addr:         serveAddr,
		Handler:      devserver.New(data, logger.Named(log, "devserver")),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting",
			zap.String("addr", serveAddr),
			zap.Int("products", len(data.Products)))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	ctx := commandContext(cmd)
	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}
