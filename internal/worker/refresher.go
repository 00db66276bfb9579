package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"dealradar/internal/domain/entity"
	"dealradar/internal/domain/service/deals"
	"dealradar/internal/infrastructure/metrics"
	"dealradar/pkg/logx"
)

// Refresher polls the catalog on an interval, keeps the merged snapshot
// current and forwards insane-tier finds to the alert channel.
type Refresher struct {
	service *deals.Service
	alerts  chan<- entity.DealAlert

	interval    time.Duration
	lastRefresh time.Time

	// Control fields
	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewRefresher(service *deals.Service, alerts chan<- entity.DealAlert) *Refresher {
	return &Refresher{
		service:  service,
		alerts:   alerts,
		interval: 10 * time.Minute,
	}
}

func (w *Refresher) WithInterval(interval time.Duration) *Refresher {
	if interval > 0 {
		w.interval = interval
	}
	return w
}

func (w *Refresher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return errors.New("refresher is already running")
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("refresher stopped with error", logx.Error(err))
		}
	}()

	return nil
}

func (w *Refresher) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *Refresher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.isRunning
}

func (w *Refresher) Run(ctx context.Context) error {
	logger(ctx).Info("refresher started", slog.Duration("interval", w.interval))

	for {
		if err := w.waitForNextSlot(ctx); err != nil {
			logger(ctx).Info("refresher stopped")
			return err
		}

		w.refreshOnce(ctx)
	}
}

// waitForNextSlot makes the first cycle run immediately and later ones honor
// the interval, regardless of how long each refresh took.
func (w *Refresher) waitForNextSlot(ctx context.Context) error {
	if w.lastRefresh.IsZero() {
		w.lastRefresh = time.Now()
		return nil
	}

	elapsed := time.Since(w.lastRefresh)
	if elapsed >= w.interval {
		w.lastRefresh = time.Now()
		return nil
	}

	wait := w.interval - elapsed

	select {
	case <-time.After(wait):
		w.lastRefresh = time.Now()
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (w *Refresher) refreshOnce(ctx context.Context) {
	result, err := w.service.Refresh(ctx)
	if err != nil {
		metrics.RefreshCycles.WithLabelValues("error").Inc()
		logger(ctx).Error("refresh cycle failed", logx.Error(err))

		return
	}

	metrics.RefreshCycles.WithLabelValues("ok").Inc()
	metrics.DealsFetched.Add(float64(result.Fetched))
	metrics.DealsMerged.Add(float64(result.Merged))

	for _, alert := range result.Alerts {
		metrics.InsaneFinds.Inc()

		select {
		case w.alerts <- alert:
		case <-ctx.Done():
			return
		default:
			// A full channel never blocks the refresh loop.
			logger(ctx).Warn("alert channel full, dropping alert")
		}
	}

	logger(ctx).Info("refresh cycle completed",
		slog.Int(logx.FieldDealCount, result.Merged),
		slog.Int("fetched", result.Fetched),
		slog.Int("alerts", len(result.Alerts)),
	)
}
