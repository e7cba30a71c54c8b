package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type Config struct {
	Addr      string
	DBPath    string
	StaticDir string
	LogLevel  string
	BaseURL   string

	// Gitcoin Passport scorer credentials.
	GitcoinAPIKey   string
	GitcoinScorerID string

	// Empty RedisURL selects the in-process rate store.
	RedisURL string

	NetworksFile string

	RateLimitWindow   time.Duration
	MinScore          float64
	ConfirmTimeout    time.Duration
	ReconcileInterval time.Duration
}

func Load() Config {
	addr := os.Getenv("FAUCET_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	dbPath := os.Getenv("FAUCET_DB_PATH")
	if dbPath == "" {
		dbPath = "./data/faucet.db"
	}
	staticDir := os.Getenv("FAUCET_STATIC_DIR")
	if staticDir == "" {
		staticDir = detectStaticDir()
	}
	logLevel := os.Getenv("FAUCET_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Config{
		Addr:              addr,
		DBPath:            filepath.Clean(dbPath),
		StaticDir:         filepath.Clean(staticDir),
		LogLevel:          logLevel,
		BaseURL:           os.Getenv("FAUCET_BASE_URL"),
		GitcoinAPIKey:     os.Getenv("GITCOIN_API_KEY"),
		GitcoinScorerID:   os.Getenv("GITCOIN_SCORER_ID"),
		RedisURL:          os.Getenv("REDIS_URL"),
		NetworksFile:      os.Getenv("FAUCET_NETWORKS_FILE"),
		RateLimitWindow:   time.Duration(envInt("FAUCET_RATE_LIMIT_HOURS", 168)) * time.Hour,
		MinScore:          envFloat("FAUCET_MIN_SCORE", 10),
		ConfirmTimeout:    time.Duration(envInt("FAUCET_CONFIRM_TIMEOUT_SECONDS", 90)) * time.Second,
		ReconcileInterval: time.Duration(envInt("FAUCET_RECONCILE_INTERVAL_SECONDS", 60)) * time.Second,
	}
}

func envInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func envFloat(name string, fallback float64) float64 {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(raw, 64)
	if err != nil || parsed < 0 {
		return fallback
	}
	return parsed
}

func detectStaticDir() string {
	candidates := []string{
		"./frontend/dist",
		"../frontend/dist",
	}
	for _, candidate := range candidates {
		indexPath := filepath.Join(candidate, "index.html")
		if info, err := os.Stat(indexPath); err == nil && !info.IsDir() {
			return candidate
		}
	}
	return "./frontend/dist"
}
