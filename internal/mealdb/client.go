package mealdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/five82/ladle/internal/logging"
)

// ErrNotFound is returned by LookupByID when the API has no record for the id.
var ErrNotFound = errors.New("meal not found")

// StatusError reports a non-2xx response from the API.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("api %s returned status %d", e.Endpoint, e.StatusCode)
}

// Client talks to TheMealDB HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    *slog.Logger

	lookups singleflight.Group
}

const (
	// DefaultBaseURL is the public free-tier endpoint.
	DefaultBaseURL   = "https://www.themealdb.com/api/json/v1/1"
	defaultUserAgent = "ladle/0.1"
	requestTimeout   = 10 * time.Second

	endpointSearch = "search"
	endpointLookup = "lookup"
)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.http = client
		}
	}
}

// WithTimeout sets the per-request timeout on the default HTTP client.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http = &http.Client{Timeout: d}
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithLogger attaches a structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient builds a Client rooted at baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	c := &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "mealdb")
	return c, nil
}

// SearchByName returns every record whose name matches term. No match is an
// empty slice, not an error.
func (c *Client) SearchByName(ctx context.Context, term string) ([]Meal, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	values := url.Values{}
	values.Set("s", term)

	var payload listResponse
	if err := c.get(ctx, endpointSearch, "search.php", values, &payload); err != nil {
		return nil, err
	}
	meals := payload.Meals
	if meals == nil {
		meals = []Meal{}
	}
	return meals, nil
}

// LookupByID returns the record for id, or ErrNotFound. Concurrent lookups
// for the same id share a single request. The shared request is bounded by the
// HTTP client timeout rather than any one caller's context, so a caller that
// gives up does not fail the others.
func (c *Client) LookupByID(ctx context.Context, id string) (Meal, error) {
	if c == nil {
		return Meal{}, fmt.Errorf("client is nil")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return Meal{}, fmt.Errorf("meal id required")
	}

	shared := context.WithoutCancel(ctx)
	ch := c.lookups.DoChan(id, func() (any, error) {
		values := url.Values{}
		values.Set("i", id)

		var payload listResponse
		if err := c.get(shared, endpointLookup, "lookup.php", values, &payload); err != nil {
			return Meal{}, err
		}
		if len(payload.Meals) == 0 {
			return Meal{}, ErrNotFound
		}
		return payload.Meals[0], nil
	})

	select {
	case <-ctx.Done():
		return Meal{}, ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.logger.Debug("lookup shared in-flight request", slog.String("id", id))
		}
		if res.Err != nil {
			return Meal{}, res.Err
		}
		return res.Val.(Meal), nil
	}
}

func (c *Client) get(ctx context.Context, endpoint, path string, values url.Values, dest any) error {
	reqURL := c.baseURL.JoinPath(path)
	reqURL.RawQuery = values.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	started := time.Now()
	resp, err := c.http.Do(req)
	elapsed := time.Since(started)
	observeLatency(endpoint, elapsed)
	if err != nil {
		observeOutcome(endpoint, outcomeTransportError)
		return fmt.Errorf("execute request (latency=%v): %w", elapsed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		observeOutcome(endpoint, outcomeHTTPError)
		return &StatusError{Endpoint: "/" + path, StatusCode: resp.StatusCode}
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		observeOutcome(endpoint, outcomeDecodeError)
		return fmt.Errorf("decode response: %w", err)
	}
	observeOutcome(endpoint, outcomeOK)

	c.logger.Debug("api request completed",
		slog.String("endpoint", endpoint),
		slog.String("query", values.Encode()),
		slog.Duration("latency", elapsed))
	return nil
}

func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api base url %q: %w", raw, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api base url %q: missing host", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
