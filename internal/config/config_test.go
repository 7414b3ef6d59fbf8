package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"boatmatch/internal/config"
)

func TestParseDefaults(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Parse(map[string]string{})
	rq.NoError(err)

	rq.Equal("boatmatch", cfg.App.Name)
	rq.Equal("info", cfg.App.LogLevel)
	rq.Equal(":8080", cfg.HTTP.ListenAddress)
	rq.Equal(10*time.Second, cfg.HTTP.ShutdownTimeout)
	rq.Equal("default", cfg.Scoring.Preset)
	rq.Equal(8, cfg.Scoring.Concurrency)
	rq.Equal(10, cfg.Scoring.DefaultLimit)
	rq.Equal(config.CacheBackendMemory, cfg.Cache.Backend)
	rq.Equal(time.Hour, cfg.Cache.TTL)
	rq.Equal(config.CatalogSourceStatic, cfg.Catalog.Source)
	rq.Equal(5*time.Minute, cfg.Postgres.ConnMaxLifetime)
}

func TestParseOverrides(t *testing.T) {
	rq := require.New(t)

	cfg, err := config.Parse(map[string]string{
		"LOG_LEVEL":            "debug",
		"LOG_FORMAT":           "json",
		"SCORING_PRESET":       "detail",
		"SCORING_MATCH_POLICY": "containment-overlap",
		"CACHE_BACKEND":        "redis",
		"CACHE_TTL":            "15m",
		"REDIS_ADDRESS":        "localhost:6379",
		"CATALOG_SOURCE":       "postgres",
		"PG_DSN":               "postgres://boatmatch@localhost:5432/boatmatch",
	})
	rq.NoError(err)

	rq.Equal("detail", cfg.Scoring.Preset)
	rq.Equal(15*time.Minute, cfg.Cache.TTL)
	rq.Equal("localhost:6379", cfg.Redis.Address)
	rq.Equal(config.CatalogSourcePostgres, cfg.Catalog.Source)
}

func TestParseInvalid(t *testing.T) {
	testCases := []struct {
		name        string
		environment map[string]string
	}{
		{name: "Unknown preset", environment: map[string]string{"SCORING_PRESET": "listing"}},
		{name: "Unknown policy", environment: map[string]string{"SCORING_MATCH_POLICY": "soundex"}},
		{name: "Unknown cache backend", environment: map[string]string{"CACHE_BACKEND": "memcached"}},
		{name: "Redis without address", environment: map[string]string{"CACHE_BACKEND": "redis"}},
		{name: "Postgres without DSN", environment: map[string]string{"CATALOG_SOURCE": "postgres"}},
		{name: "Unknown catalog source", environment: map[string]string{"CATALOG_SOURCE": "s3"}},
		{name: "Unknown log level", environment: map[string]string{"LOG_LEVEL": "loud"}},
		{name: "Unknown log format", environment: map[string]string{"LOG_FORMAT": "xml"}},
		{name: "Zero concurrency", environment: map[string]string{"SCORING_CONCURRENCY": "0"}},
		{name: "Negative limit", environment: map[string]string{"SCORING_DEFAULT_LIMIT": "-1"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rq := require.New(t)

			_, err := config.Parse(tc.environment)
			rq.ErrorIs(err, config.ErrInvalidConfig)
		})
	}
}

func TestParseMalformedValue(t *testing.T) {
	rq := require.New(t)

	_, err := config.Parse(map[string]string{"CACHE_TTL": "forever"})
	rq.Error(err)
	rq.NotErrorIs(err, config.ErrInvalidConfig)
}
