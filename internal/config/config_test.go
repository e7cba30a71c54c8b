package config_test

import (
	"os"
	"testing"
	"time"

	"faucet/backend/internal/config"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	os.Setenv("FAUCET_ADDR", ":9999")
	os.Setenv("FAUCET_DB_PATH", "/tmp/faucet/faucet.db")
	os.Setenv("FAUCET_LOG_LEVEL", "debug")
	os.Setenv("GITCOIN_API_KEY", "key")
	os.Setenv("GITCOIN_SCORER_ID", "scorer")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("FAUCET_RATE_LIMIT_HOURS", "24")
	os.Setenv("FAUCET_MIN_SCORE", "15")
	defer func() {
		os.Unsetenv("FAUCET_ADDR")
		os.Unsetenv("FAUCET_DB_PATH")
		os.Unsetenv("FAUCET_LOG_LEVEL")
		os.Unsetenv("GITCOIN_API_KEY")
		os.Unsetenv("GITCOIN_SCORER_ID")
		os.Unsetenv("REDIS_URL")
		os.Unsetenv("FAUCET_RATE_LIMIT_HOURS")
		os.Unsetenv("FAUCET_MIN_SCORE")
	}()

	cfg := config.Load()
	require.Equal(t, ":9999", cfg.Addr)
	require.Equal(t, "/tmp/faucet/faucet.db", cfg.DBPath)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "key", cfg.GitcoinAPIKey)
	require.Equal(t, "scorer", cfg.GitcoinScorerID)
	require.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
	require.Equal(t, 24*time.Hour, cfg.RateLimitWindow)
	require.Equal(t, float64(15), cfg.MinScore)
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("FAUCET_ADDR")
	os.Unsetenv("FAUCET_DB_PATH")
	os.Unsetenv("FAUCET_LOG_LEVEL")
	os.Unsetenv("REDIS_URL")
	os.Unsetenv("FAUCET_RATE_LIMIT_HOURS")
	os.Unsetenv("FAUCET_MIN_SCORE")

	cfg := config.Load()
	require.Equal(t, ":8080", cfg.Addr)
	require.Contains(t, cfg.DBPath, "faucet.db")
	require.Equal(t, "info", cfg.LogLevel)
	require.Empty(t, cfg.RedisURL)
	require.Equal(t, 168*time.Hour, cfg.RateLimitWindow)
	require.Equal(t, float64(10), cfg.MinScore)
	require.Equal(t, 90*time.Second, cfg.ConfirmTimeout)
	require.Equal(t, time.Minute, cfg.ReconcileInterval)
}

func TestLoad_InvalidNumbersFallBack(t *testing.T) {
	os.Setenv("FAUCET_RATE_LIMIT_HOURS", "not-a-number")
	os.Setenv("FAUCET_MIN_SCORE", "-3")
	defer func() {
		os.Unsetenv("FAUCET_RATE_LIMIT_HOURS")
		os.Unsetenv("FAUCET_MIN_SCORE")
	}()

	cfg := config.Load()
	require.Equal(t, 168*time.Hour, cfg.RateLimitWindow)
	require.Equal(t, float64(10), cfg.MinScore)
}
