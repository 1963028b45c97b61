package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"bazi-chart/internal/platform/config"
	"bazi-chart/internal/platform/logger"
	"bazi-chart/internal/server"
)

// @title BaZi Chart API
// @version 1.0
// @description Cálculo de los cuatro pilares (八字) a partir de fecha y hora de nacimiento.
// @BasePath /
func main() {
	if err := config.Init(os.Getenv("BAZI_CONFIG")); err != nil {
		log.Fatalf("config: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	lg := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.App.Name,
	})
	defer func() { _ = lg.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.RunWithConfig(ctx, cfg, lg); err != nil {
		lg.Error("server error", map[string]any{"error": err})
		_ = lg.Sync()
		os.Exit(1)
	}
}
