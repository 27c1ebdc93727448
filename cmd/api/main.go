package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"

	"schuldwijzer/internal/arrangement"
	arrangementStore "schuldwijzer/internal/arrangement/store"
	"schuldwijzer/internal/config"
	"schuldwijzer/internal/database"
	"schuldwijzer/internal/debt"
	debtStore "schuldwijzer/internal/debt/store"
	schuldHttp "schuldwijzer/internal/http"
	affordabilityHandler "schuldwijzer/internal/http/affordability"
	debtHandler "schuldwijzer/internal/http/debt"
	letterHandler "schuldwijzer/internal/http/letter"
	"schuldwijzer/internal/http/ratelimit"
	workflowHandler "schuldwijzer/internal/http/workflow"
	"schuldwijzer/internal/lettercache"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	var previewCache *lettercache.Cache
	if cfg.Redis.Addr != "" {
		previewCache = lettercache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.TTL)
		defer previewCache.Close()
	}

	var (
		debtService        = debt.NewService(debtStore.New(db))
		arrangementService = arrangement.NewService(arrangementStore.New(db), debtService, nil)
	)

	limiter := ratelimit.New(cfg.RateLimit.RequestsPerMinute, time.Minute)
	defer limiter.Stop()

	var (
		debtH          = debtHandler.NewHandler(debtService)
		affordabilityH = affordabilityHandler.NewHandler(debtService)
		letterH        = letterHandler.NewHandler(previewCache, nil)
		workflowH      = workflowHandler.NewHandler(arrangementService)
	)

	router := schuldHttp.New(debtH, affordabilityH, letterH, workflowH, limiter)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "app", cfg.App.Name, "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
