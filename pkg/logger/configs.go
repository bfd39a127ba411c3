package logger

// Config defines the configuration for the logger package.
type Config struct {
	// Level is the minimum severity a message needs to be emitted. One of
	// CRITICAL, ERROR, WARNING, INFO, DEBUG (case-insensitive). Any other
	// value suppresses all output.
	Level string `yaml:"level" envconfig:"LOG_LEVEL"`

	// ServiceName is attached to every structured log entry as the
	// "service" field.
	ServiceName string `yaml:"service_name" envconfig:"LOG_SERVICE_NAME"`

	// EnableTracing controls whether the *WithContext methods extract
	// trace and span IDs from the context and attach them to entries.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"LOG_ENABLE_TRACING"`
}
