package config

import "time"

type Steam struct {
	BaseURL string        `env:"STEAM_BASE_URL" envDefault:"https://store.steampowered.com/api"`
	Timeout time.Duration `env:"STEAM_TIMEOUT" envDefault:"10s"`
}
