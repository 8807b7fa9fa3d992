package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// SetupPrometheus creates the registry served on /metrics: go runtime (gc and
// memory) and process collectors, a version info gauge, and the given extra
// collectors (e.g. the db pool).
func SetupPrometheus(namespace, version string, extra ...prometheus.Collector) *prometheus.Registry {
	promRegistry := prometheus.NewRegistry()

	if version == "" {
		version = "unknown"
	}
	versionInfo := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace:   namespace,
		Name:        "version_info",
		Help:        "Running version (last commit hash), always 1.",
		ConstLabels: prometheus.Labels{"version": version},
	})
	versionInfo.Set(1)

	promRegistry.MustRegister(
		versionInfo,
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsGC, collectors.MetricsMemory),
		),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{Namespace: namespace}),
	)
	promRegistry.MustRegister(extra...)

	return promRegistry
}
