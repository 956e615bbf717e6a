package s2

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// BaseURL is the Semantic Scholar Graph API base URL.
	BaseURL = "https://api.semanticscholar.org/graph/v1"

	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts bounds dispatch attempts per call, including the
	// first. All operations are read-only, so retries are always safe.
	DefaultMaxAttempts = 3

	// Requests per second: the unauthenticated tier is shared and strict;
	// keyed access gets a dedicated allowance.
	unauthenticatedRate = 1.0
	authenticatedRate   = 10.0
)

// retryBaseDelay is the first backoff interval; it doubles per attempt.
// A Retry-After header takes precedence. Tests override this to avoid
// real sleeps.
var retryBaseDelay = 500 * time.Millisecond

// Client is a rate-limited HTTP client for the Graph API. It is safe for
// concurrent use; all fields are read-only after construction.
type Client struct {
	httpClient  *http.Client
	limiter     *rate.Limiter
	apiKey      string
	baseURL     string
	maxAttempts int
	rateLimit   float64
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithAPIKey sets the API key for authenticated requests.
func WithAPIKey(key string) ClientOption {
	return func(c *Client) {
		c.apiKey = key
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithMaxAttempts overrides the dispatch attempt bound.
func WithMaxAttempts(n int) ClientOption {
	return func(c *Client) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithRateLimit overrides the requests-per-second allowance.
func WithRateLimit(rps float64) ClientOption {
	return func(c *Client) {
		c.rateLimit = rps
	}
}

// NewClient creates a new Graph API client. Without an API key requests
// run on the shared unauthenticated tier.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient:  &http.Client{Timeout: DefaultTimeout},
		baseURL:     BaseURL,
		maxAttempts: DefaultMaxAttempts,
	}

	for _, opt := range opts {
		opt(c)
	}

	rps := c.rateLimit
	if rps == 0 {
		rps = unauthenticatedRate
		if c.apiKey != "" {
			rps = authenticatedRate
		}
	}
	c.limiter = rate.NewLimiter(rate.Limit(rps), 1)

	return c
}

func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

func (c *Client) post(ctx context.Context, path string, query url.Values, body any) ([]byte, error) {
	return c.do(ctx, http.MethodPost, path, query, body)
}

// do dispatches one logical request: rate-limit, send, classify, retry.
// Retryable outcomes (429, 5xx, transport failures) back off and retry up
// to the attempt bound; everything else surfaces immediately.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	for attempt := 0; ; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("rate limiter: %w", err)
		}

		data, apiErr, retryAfter := c.send(ctx, method, u, payload)
		if apiErr == nil {
			return data, nil
		}
		if !apiErr.Retryable || attempt+1 >= c.maxAttempts {
			return nil, apiErr
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryDelay(attempt, retryAfter)):
		}
	}
}

// send performs a single HTTP exchange and classifies the outcome. On
// failure it returns the classified error plus any Retry-After header
// value for backoff.
func (c *Client) send(ctx context.Context, method, url string, payload []byte) ([]byte, *APIError, string) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return nil, &APIError{Kind: KindNetworkFailure, Message: err.Error()}, ""
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.apiKey != "" {
		req.Header.Set("x-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Kind: KindNetworkFailure, Message: err.Error(), Retryable: true}, ""
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindNetworkFailure, Message: fmt.Sprintf("reading response: %v", err), Retryable: true}, ""
	}

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return data, nil, ""
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Kind:       KindUnavailable,
			Message:    upstreamMessage(data, resp.StatusCode),
			Retryable:  true,
		}, resp.Header.Get("Retry-After")
	case resp.StatusCode == http.StatusNotFound:
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Kind:       KindNotFound,
			Message:    upstreamMessage(data, resp.StatusCode),
		}, ""
	default:
		// 400 and remaining 4xx: the request itself is wrong.
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Kind:       KindInvalidRequest,
			Message:    upstreamMessage(data, resp.StatusCode),
		}, ""
	}
}

// retryDelay computes the backoff before the next attempt. A parseable
// Retry-After header (seconds or HTTP date) wins over the exponential
// schedule.
func retryDelay(attempt int, retryAfter string) time.Duration {
	if retryAfter != "" {
		if secs, err := strconv.Atoi(retryAfter); err == nil && secs >= 0 {
			return time.Duration(secs) * time.Second
		}
		if t, err := http.ParseTime(retryAfter); err == nil {
			if d := time.Until(t); d > 0 {
				return d
			}
			return 0
		}
	}
	return retryBaseDelay << attempt
}

// upstreamMessage extracts the error message the API embeds in failure
// bodies, falling back to the status code.
func upstreamMessage(body []byte, status int) string {
	var envelope struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		if envelope.Error != "" {
			return envelope.Error
		}
		if envelope.Message != "" {
			return envelope.Message
		}
	}
	return fmt.Sprintf("HTTP %d", status)
}
