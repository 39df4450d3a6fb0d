package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"autotrader/configs"
	"autotrader/internal/infra"
	"autotrader/internal/relay"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	cfg := configs.Load()

	logger := infra.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync() //nolint:errcheck

	source, err := buildSource(cfg)
	if err != nil {
		logger.Fatal("failed to build entry source", zap.Error(err))
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Relay.Port),
		Handler:      relay.NewRouter(source, logger),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("entry relay starting",
		zap.String("addr", srv.Addr),
		zap.String("source", cfg.Relay.Source))

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start relay", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down relay")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("relay forced to shutdown", zap.Error(err))
	}

	logger.Info("relay exited gracefully")
}

func buildSource(cfg *configs.Config) (relay.Source, error) {
	switch cfg.Relay.Source {
	case "sheet":
		return relay.NewSheetSource(context.Background(), cfg.Relay.SpreadsheetID, cfg.Relay.SwingRange, cfg.Relay.PosicionalRange)
	case "file":
		return relay.NewFileSource(cfg.Relay.FilePath), nil
	default:
		return nil, fmt.Errorf("unknown RELAY_SOURCE %q (want sheet or file)", cfg.Relay.Source)
	}
}
