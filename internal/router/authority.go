package router

import (
	"fmt"
	"io"

	"bazi-chart/internal/adapters/calendar/lunargo"
	"bazi-chart/internal/adapters/calendar/memory"
	pg "bazi-chart/internal/adapters/calendar/postgres"
	"bazi-chart/internal/adapters/calendar/remote"
	"bazi-chart/internal/platform/config"
	"bazi-chart/internal/ports/calendar"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// BuildAuthority arma la fuente de calendario según la config.
// El io.Closer libera lo que haga falta (el pool de Postgres); siempre es no-nil.
func BuildAuthority(cfg config.CalendarConfig) (calendar.Authority, io.Closer, error) {
	var (
		authority calendar.Authority
		closer    io.Closer = nopCloser{}
	)

	switch cfg.Source {
	case config.SourcePostgres:
		db, err := pg.Open(cfg.DSN)
		if err != nil {
			return nil, nil, fmt.Errorf("open calendar db: %w", err)
		}
		authority = pg.NewAuthority(db)
		closer = db
	case config.SourceRemote:
		a, err := remote.New(remote.Config{
			BaseURL: cfg.RemoteURL,
			APIKey:  cfg.RemoteAPIKey,
			Timeout: cfg.Timeout,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("remote calendar: %w", err)
		}
		authority = a
	case config.SourceLunarGo, "":
		authority = lunargo.New()
	default:
		return nil, nil, fmt.Errorf("unknown calendar source %q", cfg.Source)
	}

	if cfg.Cache {
		authority = memory.NewCacheWithSize(authority, cfg.CacheSize)
	}
	return authority, closer, nil
}
