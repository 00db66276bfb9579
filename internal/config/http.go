package config

import "time"

type HTTP struct {
	Address           string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type Probe struct {
	Address string `env:"PROBE_ADDRESS" envDefault:":8081"`
}

type Metrics struct {
	Address string `env:"METRICS_ADDRESS" envDefault:":9090"`
}
