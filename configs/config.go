package configs

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the application
type Config struct {
	Server Server
	Feed   Feed
	Ledger Ledger
	Store  Store
	Alerts Alerts
	Relay  Relay
	Log    Log
}

// Server holds HTTP server configuration for the dashboard service
type Server struct {
	Port string
	Env  string
}

// Feed holds signal feed client configuration
type Feed struct {
	// BackendURL points at the automation relay. Empty means the feed
	// runs on the built-in sample dataset only.
	BackendURL      string
	RefreshInterval time.Duration
	DefaultCoins    []string
}

// Ledger holds position ledger configuration
type Ledger struct {
	RevalueInterval time.Duration
	PriceSource     string // "simulated" or "binance"
	WalkVolatility  float64
	QuoteAsset      string
}

// Store holds embedded store configuration
type Store struct {
	Path string
}

// Alerts holds target-hit alert delivery configuration
type Alerts struct {
	TelegramToken  string
	TelegramChatID string
	SMTPAddr       string
	Timezone       string
}

// Relay holds configuration for the entry relay binary
type Relay struct {
	Port            string
	Source          string // "sheet" or "file"
	SpreadsheetID   string
	SwingRange      string
	PosicionalRange string
	FilePath        string
}

// Log holds logging configuration
type Log struct {
	Level string
	File  string
}

const defaultCoins = "AAVE,ADA,ALGO,APE,APT,ARB,ATOM,AVAX,BTC,DOGE,DOT,ETH,FTM,GALA,GRT,HBAR,LINK,LTC,MATIC,SOL,XRP"

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: Server{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		Feed: Feed{
			BackendURL:      getEnv("BACKEND_URL", ""),
			RefreshInterval: durationEnv("FEED_REFRESH_INTERVAL", 10*time.Minute),
			DefaultCoins:    listEnv("DEFAULT_COINS", defaultCoins),
		},
		Ledger: Ledger{
			RevalueInterval: durationEnv("REVALUE_INTERVAL", 3*time.Second),
			PriceSource:     getEnv("PRICE_SOURCE", "simulated"),
			WalkVolatility:  floatEnv("WALK_VOLATILITY", 0.004),
			QuoteAsset:      getEnv("QUOTE_ASSET", "USDT"),
		},
		Store: Store{
			Path: getEnv("STORE_PATH", "autotrader.db"),
		},
		Alerts: Alerts{
			TelegramToken:  getEnv("TELEGRAM_BOT_TOKEN", ""),
			TelegramChatID: getEnv("TELEGRAM_CHAT_ID", ""),
			SMTPAddr:       getEnv("SMTP_ADDR", "smtp.gmail.com:587"),
			Timezone:       getEnv("TZ", "America/Sao_Paulo"),
		},
		Relay: Relay{
			Port:            getEnv("RELAY_PORT", "8081"),
			Source:          getEnv("RELAY_SOURCE", "file"),
			SpreadsheetID:   getEnv("SHEETS_SPREADSHEET_ID", ""),
			SwingRange:      getEnv("SHEET_SWING_RANGE", "ENTRADA 4H - SWING!A2:H"),
			PosicionalRange: getEnv("SHEET_POSICIONAL_RANGE", "ENTRADA 1H - POSICIONAL!A2:H"),
			FilePath:        getEnv("RELAY_FILE_PATH", "entrada.json"),
		},
		Log: Log{
			Level: getEnv("LOG_LEVEL", "info"),
			File:  getEnv("LOG_FILE", "autotrader.log"),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func durationEnv(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func floatEnv(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func listEnv(key, def string) []string {
	raw := getEnv(key, def)
	parts := strings.Split(raw, ",")
	coins := make([]string, 0, len(parts))
	for _, p := range parts {
		if c := strings.ToUpper(strings.TrimSpace(p)); c != "" {
			coins = append(coins, c)
		}
	}
	return coins
}
