package router

import (
	"net/http"
	"time"

	"bazi-chart/internal/adapters/calendar/lunargo"
	"bazi-chart/internal/adapters/calendar/memory"
	"bazi-chart/internal/domain/bazi"
	"bazi-chart/internal/middleware"
	"bazi-chart/internal/platform/logger"
	"bazi-chart/internal/ports/calendar"

	_ "bazi-chart/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, lunar-go con caché en memoria.
	Authority calendar.Authority

	// Opcional: si no viene, no se loguea nada.
	Logger logger.Logger

	CalendarTimeout time.Duration
	AllowedOrigins  []string

	// DevMode expone el detalle de errores internos en "message".
	DevMode bool
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNop()
	}

	authority := opts.Authority
	if authority == nil {
		authority = memory.NewCache(lunargo.New())
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(log))
	r.Use(middleware.Recover(log, opts.DevMode))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", chimw.RequestIDHeader},
		ExposedHeaders: []string{chimw.RequestIDHeader},
		MaxAge:         300,
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	svc := bazi.NewService(authority, opts.CalendarTimeout)
	bazi.RegisterRoutes(r, svc, log, opts.DevMode)

	return r
}
