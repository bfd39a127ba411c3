package logger

import (
	"strings"

	"go.uber.org/zap/zapcore"
)

// Severity is one of the five fixed log importance levels. Lower values are
// more severe: Critical has rank 0, Debug has rank 4.
type Severity int8

const (
	Critical Severity = iota
	Error
	Warning
	Info
	Debug
)

// Static lookup tables, indexed by rank. Names are what configuration and
// callers use; tags are the short forms written in front of emitted lines.
var (
	severityNames = [...]string{"CRITICAL", "ERROR", "WARNING", "INFO", "DEBUG"}
	severityTags  = [...]string{"CRIT", "ERROR", "WARN", "INFO", "DEBUG"}
)

// String returns the full uppercase severity name, e.g. "CRITICAL".
func (s Severity) String() string {
	if s < Critical || s > Debug {
		return "UNKNOWN"
	}
	return severityNames[s]
}

// Tag returns the short display tag shown in emitted output, e.g. "CRIT".
func (s Severity) Tag() string {
	if s < Critical || s > Debug {
		return "UNKNOWN"
	}
	return severityTags[s]
}

// ParseSeverity maps a severity name to its Severity. Matching is
// case-insensitive. The second return value reports whether the name is one
// of the five recognized severities.
func ParseSeverity(name string) (Severity, bool) {
	upper := strings.ToUpper(strings.TrimSpace(name))
	for rank, n := range severityNames {
		if n == upper {
			return Severity(rank), true
		}
	}
	return 0, false
}

// Threshold is the minimum severity required for a message to be emitted.
// The zero value admits nothing: an unparsed or unrecognized threshold
// behaves as stricter than Critical.
type Threshold struct {
	min   Severity
	known bool
}

// ParseThreshold maps a configured threshold value to a Threshold. An
// unrecognized value yields the suppress-all zero value rather than an error;
// a misconfigured process goes quiet instead of failing on its first log call.
func ParseThreshold(value string) Threshold {
	if s, ok := ParseSeverity(value); ok {
		return Threshold{min: s, known: true}
	}
	return Threshold{}
}

// Allows reports whether a message at severity s meets the threshold.
func (t Threshold) Allows(s Severity) bool {
	return t.known && s <= t.min
}

// String returns the threshold's severity name, or "SUPPRESS_ALL" for the
// unrecognized-value zero state.
func (t Threshold) String() string {
	if !t.known {
		return "SUPPRESS_ALL"
	}
	return t.min.String()
}

// zapLevel maps a Severity onto zap's level scale. Critical rides on
// DPanicLevel, which zap places above Error and which does not panic outside
// development mode.
func (s Severity) zapLevel() zapcore.Level {
	switch s {
	case Debug:
		return zapcore.DebugLevel
	case Info:
		return zapcore.InfoLevel
	case Warning:
		return zapcore.WarnLevel
	case Error:
		return zapcore.ErrorLevel
	default:
		return zapcore.DPanicLevel
	}
}

// severityOf is the inverse of zapLevel. Levels at or above DPanic collapse
// into Critical.
func severityOf(l zapcore.Level) Severity {
	switch {
	case l <= zapcore.DebugLevel:
		return Debug
	case l == zapcore.InfoLevel:
		return Info
	case l == zapcore.WarnLevel:
		return Warning
	case l == zapcore.ErrorLevel:
		return Error
	default:
		return Critical
	}
}
