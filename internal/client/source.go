package client

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"vehicle-lookup-api/internal/model"
)

const (
	// DefaultUserAgent mimics a desktop browser; the inventory site serves
	// a reduced page to unknown clients
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

	DefaultTimeout = 30 * time.Second
)

// FetchError reports that the source page could not be retrieved
type FetchError struct {
	URL        string
	StatusCode int // zero when no response was received
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("HTTP error! status: %d", e.StatusCode)
	}
	return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

func (e *FetchError) Kind() model.ErrorKind { return model.ErrorKindUpstreamFetch }

// SourceClient downloads the dealer inventory page
type SourceClient struct {
	httpClient  *http.Client
	userAgent   string
	rateLimiter *RateLimiter
	logger      *slog.Logger
}

// Option configures a SourceClient
type Option func(*SourceClient)

// WithTimeout sets the overall request timeout
func WithTimeout(d time.Duration) Option {
	return func(c *SourceClient) {
		c.httpClient.Timeout = d
	}
}

// WithUserAgent overrides DefaultUserAgent
func WithUserAgent(ua string) Option {
	return func(c *SourceClient) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// WithRateLimit caps requests per second toward the source. Zero disables it.
func WithRateLimit(rps float64) Option {
	return func(c *SourceClient) {
		c.rateLimiter = NewRateLimiter(rps)
	}
}

// WithLogger sets the logger for fetch diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *SourceClient) {
		c.logger = logger
	}
}

// NewSourceClient creates a new source page client
func NewSourceClient(opts ...Option) *SourceClient {
	c := &SourceClient{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent:   DefaultUserAgent,
		rateLimiter: NewRateLimiter(0),
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Fetch retrieves the page at url as UTF-8 text. A single attempt is made;
// transport failures and non-2xx statuses are returned as *FetchError.
func (c *SourceClient) Fetch(ctx context.Context, url string) (string, error) {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{
			URL:        url,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("unexpected status %s", resp.Status),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: url, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	html, err := decodeBody(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", &FetchError{URL: url, Err: err}
	}

	c.logger.Debug("fetched source page",
		"url", url,
		"bytes", len(body),
		"duration", time.Since(start),
	)

	return html, nil
}
