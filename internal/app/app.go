package app

import (
	"context"
	"errors"
	"fmt"

	blobfs "passaro-ok/internal/adapters/blob/fs"
	blobmem "passaro-ok/internal/adapters/blob/memory"
	blobs3 "passaro-ok/internal/adapters/blob/s3"
	"passaro-ok/internal/adapters/capabilities/plansfeatures"
	"passaro-ok/internal/adapters/capabilities/premiumflag"
	"passaro-ok/internal/adapters/storage/memory"
	"passaro-ok/internal/adapters/storage/postgres"
	"passaro-ok/internal/adapters/storage/snapshot"
	"passaro-ok/internal/adapters/storage/sqlite"
	"passaro-ok/internal/domain/birds"
	"passaro-ok/internal/domain/healthlogs"
	"passaro-ok/internal/domain/library"
	"passaro-ok/internal/domain/records"
	"passaro-ok/internal/domain/settings"
	"passaro-ok/internal/platform/config"
	"passaro-ok/internal/platform/logger"
	"passaro-ok/internal/ports/blob"
	"passaro-ok/internal/ports/capabilities"
	"passaro-ok/internal/ports/kv"
)

// App agrupa los services ya cableados; lo usan el servidor HTTP y birdctl.
type App struct {
	Log logger.Logger

	Store  *snapshot.Store
	Photos blob.Store
	Caps   capabilities.Resolver

	Birds    *birds.Service
	Checks   *healthlogs.Service
	Records  *records.Service
	Library  *library.Service
	Settings *settings.Service

	kv kv.Store
}

// Deps son las piezas de infraestructura ya abiertas.
type Deps struct {
	KV     kv.Store
	Photos blob.Store

	// Upstream opcional para capabilities (plans-features).
	Upstream capabilities.Resolver
}

// New abre storage, fotos y plans-features según cfg y arma la app.
func New(ctx context.Context, cfg config.Config, log logger.Logger) (*App, error) {
	store, err := OpenKV(cfg.Storage)
	if err != nil {
		return nil, err
	}
	photos, err := OpenPhotos(ctx, cfg.Photos)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	upstream, err := openPlans(cfg.Plans)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	a, err := NewWith(ctx, Deps{KV: store, Photos: photos, Upstream: upstream}, log)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	a.Log.Info("app ready", logger.Fields{
		"storage": cfg.Storage.Driver,
		"photos":  string(photos.Driver()),
		"plans":   upstream != nil,
	})
	return a, nil
}

// NewMemory arma una app sin persistencia (tests y dev).
func NewMemory(ctx context.Context, log logger.Logger) (*App, error) {
	return NewWith(ctx, Deps{KV: memory.NewKV(), Photos: blobmem.New()}, log)
}

func NewWith(ctx context.Context, d Deps, log logger.Logger) (*App, error) {
	if log == nil {
		log = logger.Nop()
	}
	if d.KV == nil {
		return nil, errors.New("app: kv store required")
	}

	store, err := snapshot.Open(ctx, d.KV, log)
	if err != nil {
		return nil, err
	}

	caps := premiumflag.New(store.Settings(), d.Upstream, log)
	birdsSvc := birds.NewService(store.Birds(), d.Photos, caps, log)

	return &App{
		Log:      log,
		Store:    store,
		Photos:   d.Photos,
		Caps:     caps,
		Birds:    birdsSvc,
		Checks:   healthlogs.NewService(store.HealthLogs(), birdsSvc, caps, log),
		Records:  records.NewService(store.Records(), birdsSvc, caps),
		Library:  library.NewService(caps),
		Settings: settings.NewService(store.Settings(), caps, log),
		kv:       d.KV,
	}, nil
}

func (a *App) Close() error {
	if a == nil || a.kv == nil {
		return nil
	}
	return a.kv.Close()
}

// OpenKV abre el backend clave-valor configurado.
func OpenKV(c config.StorageConfig) (kv.Store, error) {
	switch c.Driver {
	case "memory":
		return memory.NewKV(), nil
	case "sqlite", "":
		s, err := sqlite.Open(c.SQLitePath)
		if err != nil {
			return nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return s, nil
	case "postgres":
		s, err := postgres.OpenKV(c.PostgresDSN)
		if err != nil {
			return nil, fmt.Errorf("open postgres store: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage driver: %q", c.Driver)
	}
}

// OpenPhotos abre el blob store de fotos configurado.
func OpenPhotos(ctx context.Context, c config.PhotosConfig) (blob.Store, error) {
	switch blob.Driver(c.Driver) {
	case blob.DriverMemory:
		return blobmem.New(), nil
	case blob.DriverFilesystem, "":
		return blobfs.New(c.Root)
	case blob.DriverS3:
		return blobs3.New(ctx, blobs3.Config{
			Bucket:          c.S3Bucket,
			Region:          c.S3Region,
			Endpoint:        c.S3Endpoint,
			PathStyle:       c.S3PathStyle,
			AccessKeyID:     c.S3AccessKeyID,
			SecretAccessKey: c.S3SecretAccessKey,
		})
	default:
		return nil, fmt.Errorf("unknown photos driver: %q", c.Driver)
	}
}

// openPlans devuelve nil (sin error) si plans-features no está configurado.
func openPlans(c config.PlansConfig) (capabilities.Resolver, error) {
	client, err := plansfeatures.NewClient(plansfeatures.Config{
		BaseURL:   c.BaseURL,
		APIKey:    c.APIKey,
		AccountID: c.AccountID,
		Timeout:   c.Timeout.Duration,
	})
	if err != nil {
		return nil, fmt.Errorf("plans-features client: %w", err)
	}
	if !client.IsConfigured() {
		return nil, nil
	}
	return plansfeatures.NewResolver(client, 0), nil
}
