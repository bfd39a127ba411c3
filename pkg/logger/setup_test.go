package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap/zapcore"
)

func TestNewLoggerClientLevelGating(t *testing.T) {
	cases := []struct {
		level   string
		enabled []zapcore.Level
		gated   []zapcore.Level
	}{
		{
			level:   "debug",
			enabled: []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.ErrorLevel, zapcore.DPanicLevel},
		},
		{
			level:   "WARNING",
			enabled: []zapcore.Level{zapcore.WarnLevel, zapcore.ErrorLevel},
			gated:   []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel},
		},
		{
			level:   "not-a-level",
			gated:   []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.FatalLevel},
		},
	}

	for _, tc := range cases {
		client := NewLoggerClient(Config{Level: tc.level, ServiceName: "test"})
		require.NotNil(t, client.Zap)

		core := client.Zap.Core()
		for _, l := range tc.enabled {
			assert.True(t, core.Enabled(l), "level %s should be enabled at %q", l, tc.level)
		}
		for _, l := range tc.gated {
			assert.False(t, core.Enabled(l), "level %s should be gated at %q", l, tc.level)
		}
	}
}

func TestAppendTraceContext(t *testing.T) {
	client := &LoggerClient{tracingEnabled: true}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x02},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	fields := client.appendTraceContext(ctx, nil)
	require.Len(t, fields, 2)
	assert.Equal(t, "trace_id", fields[0].Key)
	assert.Equal(t, "span_id", fields[1].Key)
}

func TestAppendTraceContextDisabled(t *testing.T) {
	client := &LoggerClient{tracingEnabled: false}

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID{0x01},
		SpanID:  trace.SpanID{0x02},
	})
	ctx := trace.ContextWithSpanContext(context.Background(), sc)

	assert.Empty(t, client.appendTraceContext(ctx, nil))
}

func TestAppendTraceContextNoSpan(t *testing.T) {
	client := &LoggerClient{tracingEnabled: true}
	assert.Empty(t, client.appendTraceContext(context.Background(), nil))
}
