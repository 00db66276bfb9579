package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/hibiken/asynq"
	"github.com/lmittmann/tint"
	"golang.org/x/sync/errgroup"

	"dealradar/internal/config"
	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/service/fx"
	"dealradar/internal/infrastructure/cache"
	"dealradar/internal/infrastructure/catalog"
	"dealradar/internal/infrastructure/fxapi"
	"dealradar/internal/infrastructure/metrics"
	"dealradar/internal/infrastructure/notifier"
	"dealradar/internal/infrastructure/persistence"
	"dealradar/internal/infrastructure/steam"
	"dealradar/internal/server"
	"dealradar/internal/worker"
	"dealradar/pkg/application/connectors"
	"dealradar/pkg/application/modules"
	"dealradar/pkg/contextx"
	"dealradar/pkg/httpx"
	"dealradar/pkg/logx"
	"dealradar/pkg/middlewarex"
)

const (
	appName        = "dealradar"
	logFieldMaxLen = 2048
	alertBuffer    = 100
)

// Version is stamped at build time.
var Version = "dev" //nolint:gochecknoglobals

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	log := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(log)

	ctx = contextx.WithLogger(ctx, log)

	if err := run(ctx); err != nil {
		log.Error("application failed", logx.Error(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

//nolint:funlen // linear wiring
func run(ctx context.Context) error {
	log := contextx.LoggerFromContextOrDefault(ctx)

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config.Load: %w", err)
	}

	// Database
	pg := &connectors.Postgres{
		DSN:             cfg.Postgres.DSN,
		MaxOpenConns:    cfg.Postgres.MaxOpenConns,
		MaxIdleConns:    cfg.Postgres.MaxIdleConns,
		ConnMaxLifetime: cfg.Postgres.ConnMaxLifetime,
	}
	db := pg.Client(ctx)
	defer pg.Close(ctx)

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	// Cache
	rd := &connectors.Redis{
		Address:  cfg.Redis.Address,
		Username: cfg.Redis.Username,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	}
	kv := cache.NewRedisStore(rd.Client(ctx), appName+":")
	defer rd.Close(ctx)

	// Upstream clients
	masker := logx.NewSensitiveDataMasker()
	transport := httpx.NewLoggingRoundTripper(
		http.DefaultTransport,
		httpx.WithSensitiveDataMasker(masker),
		httpx.WithLogFieldMaxLen(logFieldMaxLen),
	)

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, &http.Client{
		Timeout:   cfg.Catalog.Timeout,
		Transport: transport,
	})
	rateClient := fxapi.NewClient(cfg.Fx.BaseURL, &http.Client{
		Timeout:   cfg.Fx.Timeout,
		Transport: transport,
	})
	steamClient := steam.NewClient(cfg.Steam.BaseURL, &http.Client{
		Timeout:   cfg.Steam.Timeout,
		Transport: transport,
	})

	// Services
	fxService := fx.NewService(rateClient, steamClient, kv).
		WithNetworkAvailable(cfg.Fx.NetworkAvailable).
		WithFallbackObserver(metrics.FxFallbacks.Inc)

	dealRepo := persistence.NewDealRepository(db)

	dealsService := deals.NewService(catalogClient, dealRepo, fxService).
		WithFetchQuery(deals.DealsQuery{
			StoreIDs: cfg.Worker.Stores,
			OnSale:   true,
			PageSize: cfg.Catalog.PageSize,
		})

	// Alerts
	alerts := make(chan entity.DealAlert, alertBuffer)

	if cfg.Bot.Enabled {
		alertBot, err := notifier.NewTelegramBot(cfg.Bot.Token, cfg.Bot.ChatID)
		if err != nil {
			return fmt.Errorf("notifier.NewTelegramBot: %w", err)
		}

		if err := alertBot.SendText(ctx, "🚀 dealradar started, watching for insane deals"); err != nil {
			log.Warn("bot startup message failed, check token and chat id", logx.Error(err))
		}

		go func() {
			if err := alertBot.Run(ctx, alerts); err != nil && ctx.Err() == nil {
				log.Error("notifier bot stopped", logx.Error(err))
			}
		}()
	} else {
		go drainAlerts(ctx, alerts)
	}

	// Refresher
	refresher := worker.NewRefresher(dealsService, alerts).
		WithInterval(cfg.Worker.RefreshInterval)

	if err := refresher.Start(ctx); err != nil {
		return fmt.Errorf("refresher.Start: %w", err)
	}
	defer refresher.Stop()

	// HTTP
	router := chi.NewRouter()
	router.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.RequestLogging(masker, logFieldMaxLen),
		middlewarex.ResponseLogging(masker, logFieldMaxLen),
	)

	server.NewServer(
		server.NewDealsServer(dealsService, fxService),
	).RegisterRoutes(router)

	g, gCtx := errgroup.WithContext(ctx)

	modules.HTTPServer{
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(gCtx, g, &http.Server{
		Addr:              cfg.HTTP.Address,
		Handler:           router,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	})

	modules.ProbeServer{
		Name:          appName,
		Version:       Version,
		ListenAddress: cfg.Probe.Address,
	}.Run(gCtx, g)

	modules.MetricServer{
		ListenAddress: cfg.Metrics.Address,
	}.Run(gCtx, g)

	// Scheduled maintenance
	asynqServer := modules.AsynqServer{
		RedisUsername: cfg.Redis.Username,
		RedisPassword: cfg.Redis.Password,
		RedisAddress:  cfg.Redis.Address,
		RedisDB:       cfg.Redis.DB,
	}

	tasks := worker.NewTasks(dealsService, fxService)

	asynqServer.Run(gCtx, g, modules.AsynqQueues{"default": 1}, tasks.Handlers()...)
	asynqServer.RunScheduler(gCtx, g,
		modules.AsynqSchedule{
			Cronspec: cfg.Worker.FxRefreshCron,
			Task:     asynq.NewTask(worker.TaskFxRefresh, nil),
		},
		modules.AsynqSchedule{
			Cronspec: cfg.Worker.StoresRefreshCron,
			Task:     asynq.NewTask(worker.TaskStoresRefresh, nil),
		},
	)

	if err := g.Wait(); err != nil {
		return fmt.Errorf("g.Wait: %w", err)
	}

	return nil
}

// drainAlerts keeps the channel moving when no notifier is configured.
func drainAlerts(ctx context.Context, alerts <-chan entity.DealAlert) {
	log := contextx.LoggerFromContextOrDefault(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case alert, ok := <-alerts:
			if !ok {
				return
			}

			log.Info("insane deal found",
				slog.String("title", alert.Deal.Title),
				slog.Float64("price", alert.Deal.CurrentPrice),
				slog.Int("discount-percent", alert.DiscountPercent),
			)
		}
	}
}
