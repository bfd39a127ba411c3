package tracer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.uber.org/mock/gomock"
)

// recordingTracer returns a Tracer whose spans are captured in-memory.
func recordingTracer(t *testing.T) (*Tracer, *tracetest.InMemoryExporter) {
	t.Helper()

	exporter := tracetest.NewInMemoryExporter()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	ctrl := gomock.NewController(t)
	return &Tracer{tracer: tp, logger: NewMockLogger(ctrl)}, exporter
}

func TestNewClientWithoutExport(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := NewMockLogger(ctrl)

	client := NewClient(Config{
		ServiceName:  "test-service",
		AppEnv:       "test",
		EnableExport: false,
	}, log)
	require.NotNil(t, client)
	t.Cleanup(func() { _ = client.tracer.Shutdown(context.Background()) })

	ctx, span := client.StartSpan(context.Background(), "op")
	defer span.End()

	assert.True(t, span.SpanContext().IsValid())
	assert.NotNil(t, ctx)
}

func TestStartSpanParentChild(t *testing.T) {
	tr, exporter := recordingTracer(t)

	ctx, parent := tr.StartSpan(context.Background(), "parent")
	_, child := tr.StartSpan(ctx, "child")
	child.End()
	parent.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)
	assert.Equal(t, "child", spans[0].Name)
	assert.Equal(t, "parent", spans[1].Name)
	assert.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
	assert.Equal(t, spans[1].SpanContext.TraceID(), spans[0].SpanContext.TraceID())
}

func TestSetAttributesTypeConversion(t *testing.T) {
	tr, exporter := recordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "op")
	tr.SetAttributes(span, map[string]interface{}{
		"str":   "value",
		"int":   7,
		"bool":  true,
		"float": 1.5,
		"other": struct{ X int }{X: 1},
	})
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)

	attrs := make(map[attribute.Key]attribute.Value, len(spans[0].Attributes))
	for _, kv := range spans[0].Attributes {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, "value", attrs["str"].AsString())
	assert.Equal(t, int64(7), attrs["int"].AsInt64())
	assert.Equal(t, true, attrs["bool"].AsBool())
	assert.Equal(t, 1.5, attrs["float"].AsFloat64())
	assert.Equal(t, attribute.STRING, attrs["other"].Type())
}

func TestRecordErrorOnSpan(t *testing.T) {
	tr, exporter := recordingTracer(t)

	_, span := tr.StartSpan(context.Background(), "op")
	tr.RecordErrorOnSpan(span, errors.New("boom"))
	span.End()

	spans := exporter.GetSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, codes.Error, spans[0].Status.Code)
	assert.Equal(t, "boom", spans[0].Status.Description)
	require.Len(t, spans[0].Events, 1)
	assert.Equal(t, "exception", spans[0].Events[0].Name)
}
