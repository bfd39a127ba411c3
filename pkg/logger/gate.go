package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/halcyon-data/std/pkg/observability"
)

// Gate decides, per message, whether a severity meets the configured
// threshold, and writes `<TAG> <message>` to the diagnostic stream when it
// does. Suppression is silent: neither a below-threshold message nor an
// unrecognized threshold value produces output or an error.
//
// The threshold is resolved once at construction. A Gate is safe for
// concurrent use.
type Gate struct {
	logger    *zap.Logger
	threshold Threshold

	// rawThreshold is kept verbatim for observer reporting, since an
	// unrecognized value has no severity name of its own.
	rawThreshold string

	observer observability.Observer
}

// NewGate returns a Gate writing to stderr. The threshold is the minimum
// severity name required for emission; an unrecognized value suppresses all
// messages.
func NewGate(threshold string) *Gate {
	return NewGateWithWriter(threshold, zapcore.Lock(os.Stderr))
}

// NewGateWithWriter is NewGate with an explicit destination. Used by tests
// and by callers that redirect the diagnostic stream.
func NewGateWithWriter(threshold string, w io.Writer) *Gate {
	t := ParseThreshold(threshold)

	encoderCfg := zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      encodeSeverityTag,
		ConsoleSeparator: " ",
		LineEnding:       zapcore.DefaultLineEnding,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		thresholdEnabler(t),
	)

	return &Gate{
		logger:       zap.New(core),
		threshold:    t,
		rawThreshold: threshold,
	}
}

// WithObserver attaches an observer that is notified about every emission
// decision, including suppressions. Returns the gate for chaining.
func (g *Gate) WithObserver(obs observability.Observer) *Gate {
	g.observer = obs
	return g
}

// Emit writes `<TAG> <message>` if and only if level meets the threshold.
// The level is caller-controlled and must be one of the five severities.
func (g *Gate) Emit(level Severity, message string) {
	if ce := g.logger.Check(level.zapLevel(), message); ce != nil {
		ce.Write()
	}
	g.observe(level, message)
}

// Sync flushes the underlying stream.
func (g *Gate) Sync() error {
	return g.logger.Sync()
}

func (g *Gate) observe(level Severity, message string) {
	if g == nil || g.observer == nil {
		return
	}

	e := observability.Emission{
		Component: "logger",
		Severity:  level.String(),
		Threshold: g.rawThreshold,
		Emitted:   g.threshold.Allows(level),
	}
	switch {
	case e.Emitted:
		// Tag, separator, message, line ending.
		e.Bytes = len(level.Tag()) + 1 + len(message) + 1
	case !g.threshold.known:
		e.Reason = "unrecognized_threshold"
	default:
		e.Reason = "below_threshold"
	}

	g.observer.ObserveEmission(e)
}

// thresholdEnabler turns a Threshold into zap's LevelEnabler. The suppress-all
// zero value admits no level at all.
func thresholdEnabler(t Threshold) zapcore.LevelEnabler {
	return zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return t.Allows(severityOf(l))
	})
}

// encodeSeverityTag writes the short display tag (CRIT, WARN, ...) in place
// of zap's level names.
func encodeSeverityTag(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(severityOf(l).Tag())
}
