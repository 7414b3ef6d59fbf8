package config

import "time"

// Postgres is only read when CATALOG_SOURCE=postgres.
type Postgres struct {
	DSN             string        `env:"PG_DSN" json:"-"`
	MaxIdleConns    int           `env:"PG_MAX_IDLE_CONNS" envDefault:"2"`
	MaxOpenConns    int           `env:"PG_MAX_OPEN_CONNS" envDefault:"5"`
	ConnMaxLifetime time.Duration `env:"PG_CONN_MAX_LIFETIME" envDefault:"5m"`
	ConnectTimeout  time.Duration `env:"PG_CONNECT_TIMEOUT" envDefault:"5s"`
}
