package nhl

import "time"

const (
	defaultBaseURL     = "https://api-web.nhle.com/v1"
	defaultHTTPTimeout = 30 * time.Second
	defaultUserAgent   = "rinkside/1.0"
	maxRedirects       = 10
)
