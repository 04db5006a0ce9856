package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/DhavalSuthar-24/tourney/config"
	_ "github.com/DhavalSuthar-24/tourney/docs"
	"github.com/DhavalSuthar-24/tourney/internal/jobs"
	"github.com/DhavalSuthar-24/tourney/internal/tournament"
	"github.com/DhavalSuthar-24/tourney/pkg/logger"
	"github.com/DhavalSuthar-24/tourney/pkg/metrics"
	"github.com/DhavalSuthar-24/tourney/routes"
)

// @title Tourney REST API
// @version 1.0
// @description Tournament and player registration service.
// @host localhost:8088
// @BasePath /api
func main() {
	if err := config.Initialize(); err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	cfg := config.GetConfig()

	if err := logger.InitLogger(logger.LogConfig{
		Level:       cfg.Log.Level,
		Environment: cfg.App.Env,
		ServiceName: cfg.App.ServiceName,
		File:        cfg.Log.File,
		MaxSizeMB:   cfg.Log.MaxSizeMB,
		MaxBackups:  cfg.Log.MaxBackups,
		MaxAgeDays:  cfg.Log.MaxAgeDays,
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zl := logger.GetLogger()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := tournament.AutoMigrate(config.DB); err != nil {
		zl.Fatal("AutoMigrate failed", zap.Error(err))
	}
	zl.Info("AutoMigrate successful")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	opts := routes.Options{ServiceName: cfg.App.ServiceName}
	if cfg.Metrics.Enabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		opts.Registry = reg

		stats := jobs.NewStatsJob(
			tournament.NewTournamentRepository(config.DB),
			tournament.NewPlayerRepository(config.DB),
			metrics.NewStoreGauges(cfg.App.ServiceName, reg),
			zl.Named("stats"),
		)
		sched, err := stats.Start(ctx, cfg.Metrics.StatsInterval)
		if err != nil {
			zl.Fatal("failed to schedule stats job", zap.Error(err))
		}
		defer func() {
			if err := sched.Shutdown(); err != nil {
				zl.Warn("stats scheduler shutdown", zap.Error(err))
			}
		}()
	}

	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      routes.NewRouter(config.DB, opts),
		ReadTimeout:  cfg.App.ReadTimeout,
		WriteTimeout: cfg.App.WriteTimeout,
		IdleTimeout:  cfg.App.IdleTimeout,
	}

	go func() {
		zl.Info("starting server", zap.String("port", cfg.App.Port), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("http server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("graceful shutdown failed", zap.Error(err))
	}

	if sqlDB, err := config.DB.DB(); err == nil {
		_ = sqlDB.Close()
	}
	zl.Info("server stopped")
}
