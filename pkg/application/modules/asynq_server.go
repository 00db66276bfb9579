package modules

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"
	"golang.org/x/sync/errgroup"
)

type AsynqQueues map[string]int

type AsynqHandler struct {
	Pattern string
	Handle  func(context.Context, *asynq.Task) error
}

// AsynqSchedule registers a periodic task with the scheduler.
type AsynqSchedule struct {
	Cronspec string
	Task     *asynq.Task
}

type AsynqServer struct {
	RedisUsername string
	RedisPassword string
	RedisAddress  string
	RedisDB       int
}

func (s AsynqServer) redisConnection() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     s.RedisAddress,
		Username: s.RedisUsername,
		Password: s.RedisPassword,
		DB:       s.RedisDB,
	}
}

func (s AsynqServer) Run(
	ctx context.Context,
	g *errgroup.Group,
	queues AsynqQueues,
	handlers ...AsynqHandler,
) {
	g.Go(func() error {
		worker := asynq.NewServer(s.redisConnection(), asynq.Config{
			BaseContext: func() context.Context { return ctx },
			Queues:      queues,
		})

		mux := asynq.NewServeMux()

		for _, h := range handlers {
			mux.HandleFunc(h.Pattern, h.Handle)
		}

		logger(ctx).Info("asynq server started", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		if err := worker.Run(mux); err != nil {
			return fmt.Errorf("asynqServer.Run: %w", err)
		}

		logger(ctx).Info("asynq server stopped", slog.String("redis-address", s.RedisAddress), slog.Int("redis-db", s.RedisDB))

		return nil
	})
}

// RunScheduler enqueues the given tasks on their cron schedules.
func (s AsynqServer) RunScheduler(
	ctx context.Context,
	g *errgroup.Group,
	schedules ...AsynqSchedule,
) {
	g.Go(func() error {
		scheduler := asynq.NewScheduler(s.redisConnection(), &asynq.SchedulerOpts{})

		for _, sch := range schedules {
			if _, err := scheduler.Register(sch.Cronspec, sch.Task); err != nil {
				return fmt.Errorf("scheduler.Register: %w", err)
			}
		}

		go func() {
			<-ctx.Done()
			scheduler.Shutdown()
		}()

		logger(ctx).Info("asynq scheduler started", slog.String("redis-address", s.RedisAddress))

		if err := scheduler.Run(); err != nil {
			return fmt.Errorf("scheduler.Run: %w", err)
		}

		logger(ctx).Info("asynq scheduler stopped")

		return nil
	})
}
