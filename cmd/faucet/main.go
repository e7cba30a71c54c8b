package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"faucet/backend/internal/chain"
	"faucet/backend/internal/config"
	"faucet/backend/internal/db"
	"faucet/backend/internal/handler"
	fhttp "faucet/backend/internal/http"
	"faucet/backend/internal/logger"
	"faucet/backend/internal/passport"
	"faucet/backend/internal/ratelimit"
	"faucet/backend/internal/registry"
	"faucet/backend/internal/repository"
	"faucet/backend/internal/scheduler"
	"faucet/backend/internal/service"
)

func main() {
	cfg := config.Load()
	logger.Init(logger.ParseLevel(cfg.LogLevel))

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		logger.Error("open database", "path", cfg.DBPath, "error", err)
		os.Exit(1)
	}
	defer database.Close()
	if err := db.Migrate(database); err != nil {
		logger.Error("run migrations", "error", err)
		os.Exit(1)
	}

	networks, err := registry.Load(cfg.NetworksFile)
	if err != nil {
		logger.Error("load network catalog", "error", err)
		os.Exit(1)
	}

	claimRepo := repository.NewClaimRepository(database)

	var store service.RateStore
	if cfg.RedisURL != "" {
		redisStore, err := ratelimit.NewRedisStore(cfg.RedisURL)
		if err != nil {
			logger.Error("connect redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		store = redisStore
		logger.Info("rate store: redis")
	} else {
		store = ratelimit.NewMemoryStore()
		logger.Info("rate store: in-memory")
	}

	disburser := chain.NewEVMDisburser(chain.NewEnvKeyResolver(), cfg.ConfirmTimeout)
	defer disburser.Close()

	scoreService := service.NewScoreService(passport.NewClient(cfg.GitcoinAPIKey, cfg.GitcoinScorerID, nil))
	rateService := service.NewRateLimitService(store, claimRepo, cfg.RateLimitWindow)
	journal := service.NewReconcileJournal()
	claimService := service.NewClaimService(networks, scoreService, rateService, disburser, claimRepo, journal, cfg.MinScore)

	reconciler := scheduler.New(journal, claimRepo, cfg.ReconcileInterval)
	reconciler.Start()
	defer reconciler.Stop()

	e := fhttp.NewRouter(
		handler.NewNetworkHandler(networks),
		handler.NewScoreHandler(scoreService),
		handler.NewRateLimitHandler(rateService),
		handler.NewClaimHandler(claimService),
		handler.NewFrameHandler(cfg.BaseURL),
		cfg.StaticDir,
	)

	go func() {
		logger.Info("faucet listening", "addr", cfg.Addr)
		if err := e.Start(cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("shutdown", "error", err)
	}
}
