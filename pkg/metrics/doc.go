// Package metrics provides Prometheus metrics collection and exposure.
//
// It maintains an isolated registry per service, serves it over HTTP at
// /metrics, and ships built-in counters for log emission: how many lines
// each severity emitted, how many the threshold suppressed and why, and a
// size histogram for emitted lines. The *Metrics type implements
// observability.Observer, so it plugs straight into a logger gate:
//
//	m := metrics.NewMetrics(metrics.Config{
//		Address:     ":9090",
//		ServiceName: "ingest-worker",
//	})
//	gate := logger.NewGate(os.Getenv("LOG_LEVEL")).WithObserver(m)
//
// With fx, use FXModule and the server lifecycle is managed for you:
//
//	app := fx.New(
//		logger.FXModule,
//		metrics.FXModule,
//		// ... other modules
//	)
//	app.Run()
package metrics
