package observability

// Emission describes one pass of a log line through a level gate: which
// severity it carried, the threshold it was checked against, and whether it
// reached the diagnostic stream.
type Emission struct {
	// Component identifies the emitting component, e.g. "logger".
	Component string

	// Severity is the full severity name of the message, e.g. "CRITICAL".
	Severity string

	// Threshold is the raw configured threshold value the message was
	// checked against. May be an unrecognized string.
	Threshold string

	// Emitted reports whether the line was written.
	Emitted bool

	// Reason explains a suppression, e.g. "below_threshold" or
	// "unrecognized_threshold". Empty when Emitted is true.
	Reason string

	// Bytes is the number of bytes written, including the level tag and
	// line ending. Zero when suppressed.
	Bytes int
}

// Observer receives emission events from gates. Implementations must be safe
// for concurrent use.
type Observer interface {
	ObserveEmission(e Emission)
}
