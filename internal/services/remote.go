package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// maxBodyBytes caps upstream responses; a GitHub page of 100 repos is well below it
const maxBodyBytes = 8 << 20

// Outcome is the raw result of one upstream request. Exactly one of Err or
// StatusCode is meaningful: Err is set when no response was read.
type Outcome struct {
	StatusCode int
	Body       []byte
	Err        error
}

// OK reports whether the request completed with a 2xx status
func (o Outcome) OK() bool {
	return o.Err == nil && o.StatusCode >= 200 && o.StatusCode < 300
}

// Fetcher issues read-only GET requests to public APIs
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// NewFetcher creates a Fetcher. Requests are bounded only by their context;
// callers apply the configured timeout per request with withTimeout.
func NewFetcher() *Fetcher {
	return &Fetcher{
		client:    &http.Client{},
		userAgent: "rudresh.dev-portfolio",
	}
}

// withTimeout bounds ctx by d. A zero d leaves it unbounded.
func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}

// Fetch performs a GET and captures the outcome. It never returns an error
// separately; failures are carried in Outcome.Err.
func (f *Fetcher) Fetch(ctx context.Context, url string, headers map[string]string) Outcome {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Outcome{Err: fmt.Errorf("failed to build request: %w", err)}
	}
	req.Header.Set("User-Agent", f.userAgent)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return Outcome{Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return Outcome{StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read body: %w", err)}
	}
	return Outcome{StatusCode: resp.StatusCode, Body: body}
}
