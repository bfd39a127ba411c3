package metrics

import (
	"strings"

	"github.com/halcyon-data/std/pkg/observability"
)

// ObserveEmission records one emission decision made by a level gate.
// Emitted lines count toward log_lines_emitted_total and the byte-size
// histogram; suppressed lines count toward log_lines_suppressed_total with
// the suppression reason as a label.
//
// Metrics implements observability.Observer, so it can be attached directly:
//
//	gate := logger.NewGate("WARNING").WithObserver(metricsClient)
func (m *Metrics) ObserveEmission(e observability.Emission) {
	if m == nil {
		return
	}

	severity := strings.ToLower(e.Severity)

	if e.Emitted {
		m.linesEmitted.WithLabelValues(severity).Inc()
		m.lineBytes.WithLabelValues(severity).Observe(float64(e.Bytes))
		return
	}

	reason := e.Reason
	if reason == "" {
		reason = "unknown"
	}
	m.linesSuppressed.WithLabelValues(severity, reason).Inc()
}
