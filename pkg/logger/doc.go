// Package logger provides severity-gated diagnostic logging for Go applications.
//
// The package is built around a fixed, totally ordered set of five severities:
// CRITICAL, ERROR, WARNING, INFO, DEBUG. A configured threshold names the
// minimum severity a message needs to be emitted; everything below it is
// silently dropped. An unrecognized threshold value does not fall back to a
// default level. It behaves as stricter than CRITICAL and suppresses all
// output, so a misconfigured process goes quiet rather than noisy.
//
// Two surfaces are provided on top of the same gating logic:
//
//   - Gate: the minimal emission gate. It writes plain `<TAG> <message>`
//     lines (CRIT, ERROR, WARN, INFO, DEBUG tags) to the diagnostic stream
//     and nothing else. Intended for shell-style helpers and tools whose
//     output is consumed by humans or scripts.
//   - LoggerClient: the structured logger used by services. JSON encoding,
//     ISO8601 timestamps, pid/service fields, optional trace context
//     extraction, and the same threshold semantics.
//
// Gate Usage:
//
//	gate := logger.NewGate(os.Getenv("LOG_LEVEL"))
//	gate.Emit(logger.Error, "connection refused")
//	// -> "ERROR connection refused" on stderr, if the threshold admits it
//
// Emission decisions can be observed, for example to count suppressed lines
// in Prometheus:
//
//	gate := logger.NewGate("WARNING").WithObserver(metricsClient)
//
// LoggerClient Usage:
//
//	log := logger.NewLoggerClient(logger.Config{
//		Level:       "info",
//		ServiceName: "ingest-worker",
//	})
//
//	log.Info("User logged in", nil, map[string]interface{}{
//		"user_id": "12345",
//	})
//
//	// Log with trace context (automatically includes trace_id and span_id)
//	log.InfoWithContext(ctx, "Processing request", nil, nil)
//
// FX Module Integration:
//
// This package provides an fx module for applications using the fx dependency
// injection framework:
//
//	app := fx.New(
//		logger.FXModule,
//		fx.Provide(func() logger.Config {
//			return logger.Config{Level: "info", ServiceName: "my-service"}
//		}),
//	)
//	app.Run()
//
// Configuration:
//
// Config carries envconfig tags, so the threshold can come straight from the
// environment:
//
//	LOG_LEVEL=debug              # minimum severity (CRITICAL..DEBUG)
//	LOG_SERVICE_NAME=my-service
//	LOG_ENABLE_TRACING=true
//
// Thread Safety:
//
// Gate and LoggerClient are safe for concurrent use by multiple goroutines.
package logger
