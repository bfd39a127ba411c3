package tracer

// Config defines the configuration for the tracer package.
type Config struct {
	// ServiceName identifies the service in exported traces.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment attached as a resource
	// attribute, e.g. "production" or "development".
	AppEnv string `yaml:"app_env" envconfig:"TRACER_APP_ENV"`

	// EnableExport controls whether spans are exported over OTLP HTTP.
	// When false, spans are still created and recorded in-process so that
	// log entries can pick up trace and span IDs, but nothing leaves the
	// process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
