package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"autotrader/configs"
	"autotrader/internal/adapter"
	"autotrader/internal/adapter/mailer"
	"autotrader/internal/adapter/telegram"
	deliveryhttp "autotrader/internal/delivery/http"
	"autotrader/internal/domain"
	"autotrader/internal/infra"
	"autotrader/internal/repository"
	"autotrader/internal/service"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// Load configuration
	cfg := configs.Load()

	logger := infra.NewLogger(cfg.Log.Level, cfg.Log.File)
	defer logger.Sync() //nolint:errcheck

	// Initialize embedded store
	db, err := infra.NewStore(cfg.Store.Path)
	if err != nil {
		logger.Fatal("failed to open store", zap.String("path", cfg.Store.Path), zap.Error(err))
	}
	defer db.Close()

	// Initialize repositories
	positionRepo := repository.NewPositionRepository(db, logger)
	settingsRepo := repository.NewSettingsRepository(db, logger)

	// Initialize services
	watchlist := service.NewWatchlistService(cfg.Feed.DefaultCoins)

	var fetcher domain.EntryFetcher
	if cfg.Feed.BackendURL != "" {
		fetcher = adapter.NewEntryClient(cfg.Feed.BackendURL)
		logger.Info("entry feed backend configured", zap.String("url", cfg.Feed.BackendURL))
	} else {
		logger.Warn("BACKEND_URL not set, entry feed serves sample data only")
	}
	feed := service.NewFeedService(fetcher, watchlist, logger)

	prices := buildPriceSource(cfg, logger)
	notifiers := buildNotifiers(cfg, settingsRepo, logger)

	ledger := service.NewLedgerService(positionRepo, prices, logger, notifiers...)
	ledger.Load(context.Background())

	// Initialize schedulers
	scheduler := infra.NewScheduler(feed, ledger, cfg.Feed.RefreshInterval, cfg.Ledger.RevalueInterval, logger)
	if err := scheduler.Start(); err != nil {
		logger.Fatal("failed to start scheduler", zap.Error(err))
	}
	defer scheduler.Stop()

	// Initialize HTTP server
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	deliveryhttp.SetupRoutes(e, &deliveryhttp.RouterConfig{
		EntryHandler:    deliveryhttp.NewEntryHandler(feed),
		ExitHandler:     deliveryhttp.NewExitHandler(ledger),
		CoinsHandler:    deliveryhttp.NewCoinsHandler(watchlist),
		SettingsHandler: deliveryhttp.NewSettingsHandler(settingsRepo),
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	logger.Info("autotrader dashboard starting",
		zap.String("addr", addr),
		zap.String("env", cfg.Server.Env),
		zap.String("price_source", cfg.Ledger.PriceSource))

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited gracefully")
}

// buildPriceSource selects the revaluation price source. The random
// walk is the default; live Binance prices are opt-in.
func buildPriceSource(cfg *configs.Config, logger *zap.Logger) domain.PriceSource {
	switch strings.ToLower(cfg.Ledger.PriceSource) {
	case "binance":
		logger.Info("using live Binance prices for revaluation", zap.String("quote", cfg.Ledger.QuoteAsset))
		return service.NewMarketPriceService(cfg.Ledger.QuoteAsset)
	default:
		return service.NewRandomWalkService(cfg.Ledger.WalkVolatility)
	}
}

// buildNotifiers assembles the target-hit alert channels. The mailer is
// always wired (it no-ops until settings are saved); Telegram joins
// only when a bot token is configured.
func buildNotifiers(cfg *configs.Config, settingsRepo domain.SettingsRepository, logger *zap.Logger) []domain.Notifier {
	notifiers := []domain.Notifier{
		mailer.NewMailer(settingsRepo, cfg.Alerts.SMTPAddr, cfg.Alerts.Timezone),
	}

	if cfg.Alerts.TelegramToken != "" && cfg.Alerts.TelegramChatID != "" {
		notifiers = append(notifiers, telegram.NewNotificationService(cfg.Alerts.TelegramToken, cfg.Alerts.TelegramChatID, cfg.Alerts.Timezone))
		logger.Info("telegram alerts enabled")
	}

	return notifiers
}
