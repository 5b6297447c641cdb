package config

import "time"

const (
	envAPIBaseURL   = "RINKSIDE_API_BASE_URL"
	envHTTPTimeout  = "RINKSIDE_HTTP_TIMEOUT"
	envFastRefresh  = "RINKSIDE_FAST_REFRESH"
	envSlowRefresh  = "RINKSIDE_SLOW_REFRESH"
	envTTLLive      = "RINKSIDE_TTL_LIVE"
	envTTLSchedule  = "RINKSIDE_TTL_SCHEDULE"
	envTTLStatic    = "RINKSIDE_TTL_STATIC"
	envLogLevel     = "RINKSIDE_LOG_LEVEL"
	envLogFormat    = "RINKSIDE_LOG_FORMAT"
	envLogFile      = "RINKSIDE_LOG_FILE"
	envMetricsOn    = "RINKSIDE_METRICS_ENABLED"
	envMetricsPort  = "RINKSIDE_METRICS_PORT"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultAPIBaseURL  = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 30 * Duration(time.Second)
	// Fast cadence drives screens showing a live game; slow covers everything
	// that still changes during the day (schedules, standings).
	defaultFastRefresh = 10 * Duration(time.Second)
	defaultSlowRefresh = 30 * Duration(time.Second)
	defaultTTLLive     = 10 * Duration(time.Second)
	defaultTTLSchedule = 30 * Duration(time.Second)
	defaultTTLStatic   = 5 * Duration(time.Minute)
	defaultMetricsPort = "9090"
)
