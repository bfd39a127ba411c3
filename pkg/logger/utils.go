package logger

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// convertToZapFields converts error and additional field maps into Zap's structured logging fields.
// If multiple fields maps contain the same key, the later maps override earlier ones.
func (l *LoggerClient) convertToZapFields(err error, fields ...map[string]interface{}) []zap.Field {
	var zapFields []zap.Field
	if err != nil {
		zapFields = append(zapFields, zap.Error(err))
	}

	// Iterate through optional field maps and convert them into Zap fields.
	for _, fieldMap := range fields {
		for key, value := range fieldMap {
			zapFields = append(zapFields, zap.Any(key, value))
		}
	}
	return zapFields
}

// appendTraceContext adds trace_id and span_id fields extracted from the
// context when tracing integration is enabled and the context carries a
// valid span.
func (l *LoggerClient) appendTraceContext(ctx context.Context, zapFields []zap.Field) []zap.Field {
	if !l.tracingEnabled {
		return zapFields
	}

	sc := trace.SpanFromContext(ctx).SpanContext()
	if sc.HasTraceID() {
		zapFields = append(zapFields,
			zap.String("trace_id", sc.TraceID().String()),
			zap.String("span_id", sc.SpanID().String()),
		)
	}
	return zapFields
}

// Info logs an informational message, along with an optional error and structured fields.
// Use Info for general application progress and successful operations.
//
// Example:
//
//	logger.Info("User logged in successfully", nil, map[string]interface{}{
//	    "user_id": 12345,
//	    "login_method": "oauth",
//	})
func (l *LoggerClient) Info(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.convertToZapFields(err, fields...)...)
}

// Debug logs a debug-level message, useful for development and troubleshooting.
// Debug entries only appear when the configured level is DEBUG.
func (l *LoggerClient) Debug(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.convertToZapFields(err, fields...)...)
}

// Warn logs a warning message, indicating potential issues that aren't necessarily errors.
func (l *LoggerClient) Warn(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.convertToZapFields(err, fields...)...)
}

// Error logs an error message, including details of the error and additional context fields.
// Use Error when something has gone wrong that affects the current operation but
// doesn't require immediate termination of the application.
func (l *LoggerClient) Error(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.convertToZapFields(err, fields...)...)
}

// Critical logs a message at the most severe non-terminating level.
// Critical entries are emitted at every configured level except an
// unrecognized one, and are the last to be suppressed.
//
// Example:
//
//	logger.Critical("Data checksum mismatch", err, map[string]interface{}{
//	    "segment": segmentID,
//	})
func (l *LoggerClient) Critical(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.DPanic(msg, l.convertToZapFields(err, fields...)...)
}

// Fatal logs a critical error message and terminates the application.
// This method calls os.Exit(1) after logging the message and does not return.
func (l *LoggerClient) Fatal(msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Fatal(msg, l.convertToZapFields(err, fields...)...)
}

// InfoWithContext is Info with trace context extraction. When tracing is
// enabled, trace_id and span_id from the context's active span are attached
// to the entry.
func (l *LoggerClient) InfoWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Info(msg, l.appendTraceContext(ctx, l.convertToZapFields(err, fields...))...)
}

// DebugWithContext is Debug with trace context extraction.
func (l *LoggerClient) DebugWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Debug(msg, l.appendTraceContext(ctx, l.convertToZapFields(err, fields...))...)
}

// WarnWithContext is Warn with trace context extraction.
func (l *LoggerClient) WarnWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Warn(msg, l.appendTraceContext(ctx, l.convertToZapFields(err, fields...))...)
}

// ErrorWithContext is Error with trace context extraction.
func (l *LoggerClient) ErrorWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.Error(msg, l.appendTraceContext(ctx, l.convertToZapFields(err, fields...))...)
}

// CriticalWithContext is Critical with trace context extraction.
func (l *LoggerClient) CriticalWithContext(ctx context.Context, msg string, err error, fields ...map[string]interface{}) {
	l.Zap.DPanic(msg, l.appendTraceContext(ctx, l.convertToZapFields(err, fields...))...)
}
