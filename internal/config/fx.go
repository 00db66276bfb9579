package config

import "time"

type Fx struct {
	BaseURL          string        `env:"FX_BASE_URL" envDefault:"https://open.er-api.com/v6"`
	Timeout          time.Duration `env:"FX_TIMEOUT" envDefault:"10s"`
	NetworkAvailable bool          `env:"FX_NETWORK_AVAILABLE" envDefault:"true"`
}
