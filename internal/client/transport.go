package client

import (
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "http://localhost:4000"
	defaultHTTPTimeout = 10 * time.Second

	// StadiumsTTL is how long a stadium listing is reused before refetching.
	StadiumsTTL = time.Hour
	// GamesTTL matches the max-age the server advertises for scores.
	GamesTTL = 5 * time.Minute

	maxErrorBody = 512
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client) httpDoer {
	if client != nil {
		return client
	}
	return &http.Client{Timeout: defaultHTTPTimeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
