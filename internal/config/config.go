package config

// Config holds runtime configuration for the application.
type Config struct {
	APIBaseURL  string
	HTTPTimeout Duration
	FastRefresh Duration
	SlowRefresh Duration
	TTLLive     Duration
	TTLSchedule Duration
	TTLStatic   Duration
	LogLevel    string
	LogFormat   string
	LogFile     string
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		APIBaseURL:  envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		HTTPTimeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		FastRefresh: durationEnvOrDefault(envFastRefresh, defaultFastRefresh),
		SlowRefresh: durationEnvOrDefault(envSlowRefresh, defaultSlowRefresh),
		TTLLive:     durationEnvOrDefault(envTTLLive, defaultTTLLive),
		TTLSchedule: durationEnvOrDefault(envTTLSchedule, defaultTTLSchedule),
		TTLStatic:   durationEnvOrDefault(envTTLStatic, defaultTTLStatic),
		LogLevel:    envOrDefault(envLogLevel, "info"),
		LogFormat:   envOrDefault(envLogFormat, "text"),
		LogFile:     envOrDefault(envLogFile, ""),
		Metrics:     loadMetrics(),
	}
}
