package preview

import (
	"net/http"
	"sync"

	prom "github.com/prometheus/client_golang/prometheus"
	promcollect "github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	promRegistry = prom.NewRegistry()

	rebuildsTotal = prom.NewCounter(prom.CounterOpts{
		Namespace: "homegen",
		Name:      "preview_rebuilds_total",
		Help:      "Total home-page rebuilds triggered by the preview watcher",
	})
	rebuildFailuresTotal = prom.NewCounter(prom.CounterOpts{
		Namespace: "homegen",
		Name:      "preview_rebuild_failures_total",
		Help:      "Rebuilds that ended in error",
	})
)

var registerMetricsOnce sync.Once

func registerCollectors() {
	registerMetricsOnce.Do(func() {
		promRegistry.MustRegister(rebuildsTotal, rebuildFailuresTotal)
		promRegistry.MustRegister(promcollect.NewGoCollector())
	})
}

// metricsHandler exposes the preview metrics registry.
func metricsHandler() http.Handler {
	registerCollectors()
	return promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{})
}
