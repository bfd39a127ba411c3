package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics encapsulates the Prometheus registry and HTTP server responsible
// for exposing application metrics, together with the built-in log emission
// metrics fed by the logger's observer hook.
type Metrics struct {
	// Server defines the HTTP server used to expose the /metrics endpoint.
	Server *http.Server

	// Registry is the Prometheus registry where all metrics are registered.
	// Each service maintains its own isolated registry to prevent metric name collisions.
	Registry *prometheus.Registry

	// Built-in log emission metrics, updated via ObserveEmission.
	linesEmitted    *prometheus.CounterVec
	linesSuppressed *prometheus.CounterVec
	lineBytes       *prometheus.HistogramVec

	namespace string
}

// NewMetrics initializes and returns a new instance of the Metrics struct.
// It sets up a dedicated Prometheus registry, registers the built-in log
// emission metrics and optionally the default system collectors, wraps
// everything with a constant `service` label, and creates an HTTP server
// exposing the /metrics endpoint.
//
// Example:
//
//	m := metrics.NewMetrics(metrics.Config{
//	    Address:                 ":9090",
//	    ServiceName:             "ingest-worker",
//	    EnableDefaultCollectors: true,
//	})
//	gate := logger.NewGate("INFO").WithObserver(m)
//
// Access metrics at: http://localhost:9090/metrics
func NewMetrics(cfg Config) *Metrics {
	// A dedicated registry avoids metric collisions when multiple services
	// run in the same process.
	registry := prometheus.NewRegistry()

	// All metrics emitted by this service automatically include the label
	// service="<cfg.ServiceName>".
	wrappedRegistry := prometheus.WrapRegistererWith(
		prometheus.Labels{"service": cfg.ServiceName},
		registry,
	)

	m := &Metrics{
		Registry:  registry,
		namespace: cfg.Namespace,
	}

	m.linesEmitted = m.createCounterVec(
		"log_lines_emitted_total",
		"Total number of log lines that met the severity threshold and were written",
		[]string{"severity"},
	)
	m.linesSuppressed = m.createCounterVec(
		"log_lines_suppressed_total",
		"Total number of log lines dropped by the severity threshold",
		[]string{"severity", "reason"},
	)
	m.lineBytes = m.createHistogramVec(
		"log_emitted_line_bytes",
		"Size in bytes of emitted log lines, including tag and line ending",
		[]string{"severity"},
		prometheus.ExponentialBuckets(16, 4, 6),
	)

	wrappedRegistry.MustRegister(
		m.linesEmitted,
		m.linesSuppressed,
		m.lineBytes,
	)

	// Standard collectors provide essential runtime metrics for Go
	// processes: memory usage, goroutines, GC stats, CPU, fds, build info.
	if cfg.EnableDefaultCollectors {
		wrappedRegistry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	address := cfg.Address
	if address == "" {
		address = DefaultMetricsAddress
	}

	m.Server = &http.Server{
		Addr:    address,
		Handler: promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}

	return m
}
