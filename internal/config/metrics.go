package config

// MetricsConfig controls optional telemetry export.
type MetricsConfig struct {
	Enabled      bool
	Port         string
	OtelEndpoint string
	OtelService  string
	OtelInsecure bool
}

func loadMetrics() MetricsConfig {
	return MetricsConfig{
		Enabled:      boolEnvOrDefault(envMetricsOn, false),
		Port:         envOrDefault(envMetricsPort, defaultMetricsPort),
		OtelEndpoint: envOrDefault(envOtelEndpoint, ""),
		OtelService:  envOrDefault(envOtelService, "rinkside"),
		OtelInsecure: boolEnvOrDefault(envOtelInsecure, false),
	}
}
