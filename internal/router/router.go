package router

import (
	"context"
	"net/http"

	_ "passaro-ok/docs" // registra el spec de swagger

	"passaro-ok/internal/app"
	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/domain/library"
	"passaro-ok/internal/domain/records"
	"passaro-ok/internal/domain/settings"
	"passaro-ok/internal/middleware"
	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/platform/metrics"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si viene nil se arma una app en memoria (tests / dev).
	App *app.App

	Logger logger.Logger
}

func NewRouter(opts Options) (http.Handler, error) {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	a := opts.App
	if a == nil {
		var err error
		a, err = app.NewMemory(context.Background(), log)
		if err != nil {
			return nil, err
		}
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(middleware.Recover(log))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// Rutas por módulo
	birds.RegisterRoutes(r, a.Birds)
	healthlogs.RegisterRoutes(r, a.Checks)
	records.RegisterRoutes(r, a.Records)
	library.RegisterRoutes(r, a.Library)
	settings.RegisterRoutes(r, a.Settings)

	return r, nil
}
