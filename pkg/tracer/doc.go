// Package tracer provides distributed tracing setup using OpenTelemetry.
//
// In this library its main purpose is to give contextual logging something
// to correlate against: NewClient installs a global TracerProvider, and any
// context that passed through StartSpan yields trace_id and span_id fields
// in the logger's *WithContext methods.
//
// Basic Usage:
//
//	log := logger.NewLoggerClient(logger.Config{Level: "info", EnableTracing: true})
//
//	tracerClient := tracer.NewClient(tracer.Config{
//		ServiceName:  "ingest-worker",
//		AppEnv:       "development",
//		EnableExport: true,
//	}, log)
//
//	ctx, span := tracerClient.StartSpan(ctx, "process-request")
//	defer span.End()
//
//	log.InfoWithContext(ctx, "processing", nil, nil)
//
//	if err != nil {
//		tracerClient.RecordErrorOnSpan(span, err)
//	}
//
// Export goes over OTLP HTTP and is configured through the standard
// OTEL_EXPORTER_OTLP_* environment variables. With EnableExport false the
// provider records spans in-process only, which is enough for log
// correlation in development.
//
// FX Module Integration:
//
//	app := fx.New(
//		logger.FXModule,
//		tracer.FXModule,
//		// ... other modules
//	)
//	app.Run()
//
// Thread Safety:
//
// All methods on the Tracer type are safe for concurrent use by multiple
// goroutines.
package tracer
