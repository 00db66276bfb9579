package config

import "time"

type Catalog struct {
	BaseURL  string        `env:"CATALOG_BASE_URL" envDefault:"https://www.cheapshark.com/api/1.0"`
	Timeout  time.Duration `env:"CATALOG_TIMEOUT" envDefault:"15s"`
	PageSize int           `env:"CATALOG_PAGE_SIZE" envDefault:"60"`
}
