package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/halcyon-data/std/pkg/observability"
)

func newTestMetrics() *Metrics {
	return NewMetrics(Config{
		ServiceName:             "test",
		EnableDefaultCollectors: false,
	})
}

func TestObserveEmissionCountsEmittedLines(t *testing.T) {
	m := newTestMetrics()

	m.ObserveEmission(observability.Emission{
		Component: "logger",
		Severity:  "ERROR",
		Threshold: "ERROR",
		Emitted:   true,
		Bytes:     20,
	})
	m.ObserveEmission(observability.Emission{
		Component: "logger",
		Severity:  "ERROR",
		Threshold: "ERROR",
		Emitted:   true,
		Bytes:     32,
	})

	got := testutil.ToFloat64(m.linesEmitted.WithLabelValues("error"))
	if got != 2 {
		t.Fatalf("expected 2 emitted lines, got %v", got)
	}

	suppressed, err := testutil.GatherAndCount(m.Registry, "log_lines_suppressed_total")
	if err != nil {
		t.Fatalf("gather failed: %v", err)
	}
	if suppressed != 0 {
		t.Fatalf("expected no suppressed series, got %d", suppressed)
	}
}

func TestObserveEmissionCountsSuppressedLines(t *testing.T) {
	m := newTestMetrics()

	m.ObserveEmission(observability.Emission{
		Severity:  "DEBUG",
		Threshold: "INFO",
		Emitted:   false,
		Reason:    "below_threshold",
	})
	m.ObserveEmission(observability.Emission{
		Severity:  "CRITICAL",
		Threshold: "99",
		Emitted:   false,
		Reason:    "unrecognized_threshold",
	})

	if got := testutil.ToFloat64(m.linesSuppressed.WithLabelValues("debug", "below_threshold")); got != 1 {
		t.Fatalf("expected 1 below_threshold suppression, got %v", got)
	}
	if got := testutil.ToFloat64(m.linesSuppressed.WithLabelValues("critical", "unrecognized_threshold")); got != 1 {
		t.Fatalf("expected 1 unrecognized_threshold suppression, got %v", got)
	}
}

func TestObserveEmissionMissingReasonFallsBack(t *testing.T) {
	m := newTestMetrics()

	m.ObserveEmission(observability.Emission{
		Severity: "INFO",
		Emitted:  false,
	})

	if got := testutil.ToFloat64(m.linesSuppressed.WithLabelValues("info", "unknown")); got != 1 {
		t.Fatalf("expected fallback reason label, got %v", got)
	}
}

func TestObserveEmissionNilReceiverNoPanic(t *testing.T) {
	var m *Metrics

	// Should not panic.
	m.ObserveEmission(observability.Emission{Severity: "INFO", Emitted: true})
}

func TestNewMetricsDefaultAddress(t *testing.T) {
	m := NewMetrics(Config{ServiceName: "test"})
	if m.Server.Addr != DefaultMetricsAddress {
		t.Fatalf("expected default address %q, got %q", DefaultMetricsAddress, m.Server.Addr)
	}
}
