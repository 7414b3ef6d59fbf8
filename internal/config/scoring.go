package config

import "time"

const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
	CacheBackendNone   = "none"

	CatalogSourceStatic   = "static"
	CatalogSourcePostgres = "postgres"
)

type Scoring struct {
	Preset string `env:"SCORING_PRESET" envDefault:"default"`
	// MatchPolicy overrides the feature matching policy of every preset.
	MatchPolicy  string `env:"SCORING_MATCH_POLICY"`
	Concurrency  int    `env:"SCORING_CONCURRENCY" envDefault:"8"`
	DefaultLimit int    `env:"SCORING_DEFAULT_LIMIT" envDefault:"10"`
}

type Cache struct {
	Backend         string        `env:"CACHE_BACKEND" envDefault:"memory"`
	TTL             time.Duration `env:"CACHE_TTL" envDefault:"1h"`
	CleanupInterval time.Duration `env:"CACHE_CLEANUP_INTERVAL" envDefault:"10m"`
	KeyPrefix       string        `env:"CACHE_KEY_PREFIX" envDefault:"boatmatch:comparison:"`
}

type Catalog struct {
	Source string `env:"CATALOG_SOURCE" envDefault:"static"`
	// File replaces the embedded sample catalog when set.
	File string `env:"CATALOG_FILE"`
	// Seed fills an empty postgres catalog with the static one on startup.
	Seed bool `env:"CATALOG_SEED" envDefault:"false"`
}
