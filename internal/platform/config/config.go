package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config es la configuración del servicio y del CLI.
// Orden de precedencia: defaults < archivo TOML < variables de entorno.
type Config struct {
	Addr    string        `toml:"addr"`
	Log     LogConfig     `toml:"log"`
	Storage StorageConfig `toml:"storage"`
	Photos  PhotosConfig  `toml:"photos"`
	Plans   PlansConfig   `toml:"plans"`
}

type LogConfig struct {
	Level  string `toml:"level"`  // debug|info|warn|error
	Format string `toml:"format"` // text|json
	App    string `toml:"app"`
}

// StorageConfig usa el patrón tagged union: Driver decide qué campos aplican.
type StorageConfig struct {
	Driver      string `toml:"driver"`                 // "memory", "sqlite" o "postgres"
	SQLitePath  string `toml:"sqlite_path,omitempty"`  // solo driver=sqlite
	PostgresDSN string `toml:"postgres_dsn,omitempty"` // solo driver=postgres
}

type PhotosConfig struct {
	Driver string `toml:"driver"` // "memory", "fs" o "s3"

	// driver=fs
	Root string `toml:"root,omitempty"`

	// driver=s3
	S3Bucket          string `toml:"s3_bucket,omitempty"`
	S3Region          string `toml:"s3_region,omitempty"`
	S3Endpoint        string `toml:"s3_endpoint,omitempty"`
	S3PathStyle       bool   `toml:"s3_path_style,omitempty"`
	S3AccessKeyID     string `toml:"s3_access_key_id,omitempty"`
	S3SecretAccessKey string `toml:"s3_secret_access_key,omitempty"`
}

// PlansConfig apunta al servicio plans-features (opcional).
type PlansConfig struct {
	BaseURL   string   `toml:"base_url,omitempty"`
	APIKey    string   `toml:"api_key,omitempty"`
	AccountID string   `toml:"account_id,omitempty"`
	Timeout   Duration `toml:"timeout,omitempty"`
}

// Duration permite escribir "5s" en TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(strings.TrimSpace(string(b)))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default devuelve una config usable en dev: sqlite local y fotos en disco.
func Default() Config {
	return Config{
		Addr: ":8080",
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "passaro-ok",
		},
		Storage: StorageConfig{
			Driver:     "sqlite",
			SQLitePath: "data/passaro.db",
		},
		Photos: PhotosConfig{
			Driver: "fs",
			Root:   "data/photos",
		},
		Plans: PlansConfig{
			Timeout: Duration{5 * time.Second},
		},
	}
}

// Read decodifica un TOML encima de los defaults.
func Read(r io.Reader) (Config, error) {
	cfg := Default()
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	return cfg, nil
}

// Write codifica la config como TOML (usado por `birdctl config init`).
func Write(w io.Writer, cfg Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}

// Load lee path (si no está vacío), aplica env y valida.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		f, err := os.Open(path)
		if err != nil {
			return Config{}, fmt.Errorf("open config file: %w", err)
		}
		defer f.Close()

		cfg, err = Read(f)
		if err != nil {
			return Config{}, fmt.Errorf("reading config from %s: %w", path, err)
		}
	}

	applyEnv(&cfg, os.LookupEnv)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PathFromEnv devuelve PASSARO_CONFIG si está seteado.
func PathFromEnv() string {
	return strings.TrimSpace(os.Getenv("PASSARO_CONFIG"))
}

type lookupFunc func(string) (string, bool)

func applyEnv(cfg *Config, lookup lookupFunc) {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	if v, ok := lookup("PORT"); ok && strings.TrimSpace(v) != "" {
		cfg.Addr = ":" + strings.TrimSpace(v)
	}

	str("LOG_LEVEL", &cfg.Log.Level)
	str("LOG_FORMAT", &cfg.Log.Format)
	str("APP_NAME", &cfg.Log.App)

	str("STORAGE_DRIVER", &cfg.Storage.Driver)
	str("SQLITE_PATH", &cfg.Storage.SQLitePath)
	if v, ok := lookup("DB_DSN"); ok && strings.TrimSpace(v) != "" {
		// compat: DB_DSN solo implica postgres si no se pidió otro driver explícito
		cfg.Storage.PostgresDSN = strings.TrimSpace(v)
		if _, explicit := lookup("STORAGE_DRIVER"); !explicit {
			cfg.Storage.Driver = "postgres"
		}
	}

	str("PHOTO_DRIVER", &cfg.Photos.Driver)
	str("PHOTO_ROOT", &cfg.Photos.Root)
	str("PHOTO_S3_BUCKET", &cfg.Photos.S3Bucket)
	str("PHOTO_S3_REGION", &cfg.Photos.S3Region)
	str("PHOTO_S3_ENDPOINT", &cfg.Photos.S3Endpoint)
	str("AWS_ACCESS_KEY_ID", &cfg.Photos.S3AccessKeyID)
	str("AWS_SECRET_ACCESS_KEY", &cfg.Photos.S3SecretAccessKey)
	if v, ok := lookup("PHOTO_S3_PATH_STYLE"); ok {
		if b, err := strconv.ParseBool(strings.TrimSpace(v)); err == nil {
			cfg.Photos.S3PathStyle = b
		}
	}

	str("PLANS_BASE_URL", &cfg.Plans.BaseURL)
	str("PLANS_API_KEY", &cfg.Plans.APIKey)
	str("PLANS_ACCOUNT_ID", &cfg.Plans.AccountID)
	if v, ok := lookup("PLANS_TIMEOUT"); ok {
		if d, err := time.ParseDuration(strings.TrimSpace(v)); err == nil {
			cfg.Plans.Timeout = Duration{d}
		}
	}
}

// Validate revisa que cada driver tenga lo que necesita.
func (c Config) Validate() error {
	var errs []error

	switch c.Storage.Driver {
	case "memory":
	case "sqlite":
		if strings.TrimSpace(c.Storage.SQLitePath) == "" {
			errs = append(errs, errors.New("storage.sqlite_path required for sqlite driver"))
		}
	case "postgres":
		if strings.TrimSpace(c.Storage.PostgresDSN) == "" {
			errs = append(errs, errors.New("storage.postgres_dsn required for postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver: %q", c.Storage.Driver))
	}

	switch c.Photos.Driver {
	case "memory":
	case "fs":
		if strings.TrimSpace(c.Photos.Root) == "" {
			errs = append(errs, errors.New("photos.root required for fs driver"))
		}
	case "s3":
		if strings.TrimSpace(c.Photos.S3Bucket) == "" {
			errs = append(errs, errors.New("photos.s3_bucket required for s3 driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown photos driver: %q", c.Photos.Driver))
	}

	return errors.Join(errs...)
}
