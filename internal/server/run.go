package server

import (
	"context"
	"fmt"

	"bazi-chart/internal/platform/config"
	"bazi-chart/internal/platform/logger"
	"bazi-chart/internal/router"
)

// RunWithConfig arma calendario + router + servidor y bloquea hasta que ctx termina.
func RunWithConfig(ctx context.Context, cfg config.Config, log logger.Logger) error {
	authority, closer, err := router.BuildAuthority(cfg.Calendar)
	if err != nil {
		return err
	}
	defer func() {
		if err := closer.Close(); err != nil {
			log.Warn("closing calendar source", map[string]any{"error": err})
		}
	}()

	log.Info("calendar source ready", map[string]any{
		"source":  cfg.Calendar.Source,
		"cache":   cfg.Calendar.Cache,
		"timeout": cfg.Calendar.Timeout.String(),
	})

	h := router.NewRouter(router.Options{
		Authority:       authority,
		Logger:          log,
		CalendarTimeout: cfg.Calendar.Timeout,
		AllowedOrigins:  cfg.HTTP.AllowedOrigins,
		DevMode:         cfg.App.DevMode,
	})

	if err := New(log, cfg.HTTP, h).Run(ctx); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
