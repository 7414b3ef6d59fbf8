package config

import "time"

type HTTP struct {
	ListenAddress        string        `env:"HTTP_LISTEN_ADDRESS" envDefault:":8080"`
	ProbeListenAddress   string        `env:"HTTP_PROBE_LISTEN_ADDRESS" envDefault:":8081"`
	MetricsListenAddress string        `env:"HTTP_METRICS_LISTEN_ADDRESS" envDefault:":9090"`
	ShutdownTimeout      time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFieldMaxLength    int           `env:"HTTP_LOG_FIELD_MAX_LENGTH" envDefault:"2048"`
}
