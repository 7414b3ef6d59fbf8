package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"

	"boatmatch/internal/domain/service/similarity"
	"boatmatch/pkg/logx"
)

var ErrInvalidConfig = errors.New("invalid config")

type Config struct {
	App      App
	HTTP     HTTP
	Scoring  Scoring
	Cache    Cache
	Catalog  Catalog
	Postgres Postgres
	Redis    Redis
}

type App struct {
	Name      string `env:"APP_NAME" envDefault:"boatmatch"`
	Version   string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"tint"`
}

// Load reads the configuration from the environment, optionally seeded by a
// .env file in the working directory.
func Load() (Config, error) {
	_ = godotenv.Load()

	return parse(env.Options{})
}

// Parse reads the configuration from environment only.
func Parse(environment map[string]string) (Config, error) {
	return parse(env.Options{Environment: environment})
}

func parse(opts env.Options) (Config, error) {
	var config Config

	if err := env.ParseWithOptions(&config, opts); err != nil {
		return Config{}, fmt.Errorf("env.ParseWithOptions: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, fmt.Errorf("config.Validate: %w", err)
	}

	return config, nil
}

func (c Config) Validate() error {
	var errs []error

	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		errs = append(errs, fmt.Errorf("level.UnmarshalText: %w", err))
	}

	switch strings.ToLower(c.App.LogFormat) {
	case logx.FormatTint, logx.FormatText, logx.FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("unknown log format %q", c.App.LogFormat))
	}

	if _, err := similarity.PresetByName(c.Scoring.Preset); err != nil {
		errs = append(errs, err)
	}

	if c.Scoring.MatchPolicy != "" {
		if _, err := similarity.ParseMatchPolicy(c.Scoring.MatchPolicy); err != nil {
			errs = append(errs, err)
		}
	}

	if c.Scoring.Concurrency <= 0 {
		errs = append(errs, fmt.Errorf("scoring concurrency must be positive, got %d", c.Scoring.Concurrency))
	}

	if c.Scoring.DefaultLimit < 0 {
		errs = append(errs, fmt.Errorf("default limit must not be negative, got %d", c.Scoring.DefaultLimit))
	}

	switch c.Cache.Backend {
	case CacheBackendMemory, CacheBackendNone:
	case CacheBackendRedis:
		if c.Redis.Address == "" {
			errs = append(errs, errors.New("redis cache backend requires REDIS_ADDRESS"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown cache backend %q", c.Cache.Backend))
	}

	switch c.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourcePostgres:
		if c.Postgres.DSN == "" {
			errs = append(errs, errors.New("postgres catalog requires PG_DSN"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown catalog source %q", c.Catalog.Source))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return nil
}

// LogValue keeps credentials out of the startup log.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("log-level", c.App.LogLevel),
		slog.String("log-format", c.App.LogFormat),
		slog.String("listen", c.HTTP.ListenAddress),
		slog.String(logx.FieldPreset, c.Scoring.Preset),
		slog.String("cache", c.Cache.Backend),
		slog.String("catalog", c.Catalog.Source),
	)
}
