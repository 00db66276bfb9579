package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Deal pipeline counters, registered on the default registry the metrics
// server exposes.
var (
	RefreshCycles = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dealradar_refresh_cycles_total",
		Help: "Catalog refresh cycles by outcome.",
	}, []string{"outcome"})

	DealsFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealradar_deals_fetched_total",
		Help: "Raw deal records fetched from the catalog.",
	})

	DealsMerged = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealradar_deals_merged_total",
		Help: "Merged deal records written to the snapshot.",
	})

	InsaneFinds = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealradar_insane_finds_total",
		Help: "Insane-tier deals that passed alert dedupe.",
	})

	FxFallbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dealradar_fx_fallbacks_total",
		Help: "Rate lookups served from the built-in fallback table.",
	})
)
