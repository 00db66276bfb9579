package worker

import (
	"context"

	"github.com/hibiken/asynq"

	"dealradar/internal/domain/service/deals"
	"dealradar/internal/domain/service/fx"
	"dealradar/pkg/application/modules"
)

const (
	TaskFxRefresh     = "fx:refresh"
	TaskStoresRefresh = "stores:refresh"
)

// Tasks holds the scheduled maintenance handlers: rate table and store
// directory refreshes run through asynq so only one instance executes them.
type Tasks struct {
	deals *deals.Service
	fx    *fx.Service
}

func NewTasks(dealsService *deals.Service, fxService *fx.Service) *Tasks {
	return &Tasks{
		deals: dealsService,
		fx:    fxService,
	}
}

func (t *Tasks) Handlers() []modules.AsynqHandler {
	return []modules.AsynqHandler{
		{Pattern: TaskFxRefresh, Handle: t.handleFxRefresh},
		{Pattern: TaskStoresRefresh, Handle: t.handleStoresRefresh},
	}
}

// handleFxRefresh drops the cached rate table and warms it again.
func (t *Tasks) handleFxRefresh(ctx context.Context, _ *asynq.Task) error {
	t.fx.InvalidateRates(ctx)
	rates := t.fx.UsdRates(ctx)

	logger(ctx).Info("fx rates refreshed", "base", rates.Base, "count", len(rates.Rates))

	return nil
}

// handleStoresRefresh drops the store directory cache and reloads it.
func (t *Tasks) handleStoresRefresh(ctx context.Context, _ *asynq.Task) error {
	t.deals.InvalidateStores()

	stores, err := t.deals.Stores(ctx)
	if err != nil {
		return err
	}

	logger(ctx).Info("store directory refreshed", "count", len(stores))

	return nil
}
