package connectors

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
	"github.com/samber/lo"

	"dealradar/pkg/logx"
)

type Redis struct {
	Address  string
	Username string
	Password string
	DB       int

	once   sync.Once
	client *redis.Client
}

// Client dials redis on first call and returns the same client afterwards.
func (r *Redis) Client(ctx context.Context) *redis.Client {
	r.once.Do(func() {
		client := redis.NewClient(&redis.Options{
			Addr:     r.Address,
			Username: r.Username,
			Password: r.Password,
			DB:       r.DB,
		})

		lo.Must(client.Ping(ctx).Result())

		logger(ctx).Info("redis connected")

		r.client = client
	})

	return r.client
}

func (r *Redis) Close(ctx context.Context) {
	if r.client == nil {
		return
	}

	if err := r.client.Close(); err != nil {
		logger(ctx).Error("redisClient.Close", logx.Error(err))
	}

	logger(ctx).Info("redis disconnected")
}
