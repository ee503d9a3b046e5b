package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/bowerhall/starter-api/internal/config"
	"github.com/bowerhall/starter-api/internal/logger"
	"github.com/bowerhall/starter-api/internal/server"
	"github.com/gin-gonic/gin"
)

func init() {
	if err := config.LoadEnvFile(config.DefaultEnvFile); err != nil {
		logger.Fatal("failed to load env file", "error", err)
	}
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}

	closer, err := logger.Setup(logger.Options{
		Debug:      cfg.Debug,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	if err != nil {
		logger.Fatal("failed to set up logger", "error", err)
	}
	defer closer.Close()

	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg, logger.L())
	logger.Info("starter-api starting", "addr", srv.Addr(), "debug", cfg.Debug)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server failed", "error", err)
		closer.Close()
		os.Exit(1)
	}
}
