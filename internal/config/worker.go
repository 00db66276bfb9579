package config

import "time"

type Worker struct {
	RefreshInterval time.Duration `env:"WORKER_REFRESH_INTERVAL" envDefault:"10m"`
	Stores          []string      `env:"WORKER_STORES" envSeparator:","`

	FxRefreshCron     string `env:"WORKER_FX_REFRESH_CRON" envDefault:"0 */12 * * *"`
	StoresRefreshCron string `env:"WORKER_STORES_REFRESH_CRON" envDefault:"30 */6 * * *"`
}
