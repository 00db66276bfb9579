package config

type Redis struct {
	Address  string `env:"REDIS_ADDRESS" envDefault:"localhost:6379"`
	Username string `env:"REDIS_USERNAME"`
	Password string `env:"REDIS_PASSWORD" json:"-"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}
