package nhl

import (
	"net/http"
	"strings"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// resolveHTTPClient returns the configured client, or a default that follows
// redirects up to the hop bound and then fails with ErrRedirectLoop.
func resolveHTTPClient(client *http.Client) httpDoer {
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}
	if client.CheckRedirect == nil {
		client.CheckRedirect = boundedRedirects
	}
	return client
}

func boundedRedirects(req *http.Request, via []*http.Request) error {
	if len(via) >= maxRedirects {
		return ErrRedirectLoop
	}
	return nil
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
