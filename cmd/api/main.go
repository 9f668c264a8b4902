package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"passaro-ok/internal/app"
	"passaro-ok/internal/platform/config"
	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/router"
)

func main() {
	configPath := flag.String("config", config.PathFromEnv(), "path to TOML config (default $PASSARO_CONFIG)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.NewFromEnv().Error("invalid config", logger.Fields{"err": err})
		os.Exit(1)
	}

	log := logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.Log.Level),
		Format: logger.ParseFormat(cfg.Log.Format),
		App:    cfg.Log.App,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Error("startup failed", logger.Fields{"err": err})
		os.Exit(1)
	}
	defer a.Close()

	h, err := router.NewRouter(router.Options{App: a, Logger: log})
	if err != nil {
		log.Error("router setup failed", logger.Fields{"err": err})
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      h,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second, // fotos de hasta 5MB
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn("shutdown", logger.Fields{"err": err})
		}
	}()

	log.Info("starting server", logger.Fields{"addr": cfg.Addr})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", logger.Fields{"err": err})
		os.Exit(1)
	}
	log.Info("server stopped", nil)
}
