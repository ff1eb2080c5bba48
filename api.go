package parallax

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/url"
	"strings"
	"time"

	http "github.com/bogdanfinn/fhttp"
	"github.com/google/uuid"
)

// pseudoHeaderOrder is the HTTP/2 pseudo-header order of API requests.
var pseudoHeaderOrder = []string{":method", ":authority", ":scheme", ":path"}

// Client sends authenticated requests to one Parallax API host.
// It is safe for concurrent use.
type Client struct {
	host         string
	apiKey       string
	http         Doer
	logger       Logger
	limiter      *Limiter
	maxRetries   int
	retryBackoff time.Duration
}

// NewClient creates a client for cfg.APIHost.
func NewClient(cfg Config) (*Client, error) {
	return newClient(cfg, "")
}

// NewProductClient is NewClient with a default host used when cfg.APIHost is empty.
func NewProductClient(cfg Config, defaultHost string) (*Client, error) {
	return newClient(cfg, defaultHost)
}

func newClient(cfg Config, defaultHost string) (*Client, error) {
	cfg = cfg.withDefaults(defaultHost)

	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}
	if cfg.APIHost == "" {
		return nil, ErrMissingAPIHost
	}

	doer := cfg.HTTPClient
	if doer == nil {
		httpClient, err := NewHTTPClient(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create http client: %w", err)
		}
		doer = httpClient
	}

	return &Client{
		host:         cfg.APIHost,
		apiKey:       cfg.APIKey,
		http:         doer,
		logger:       cfg.Logger,
		limiter:      NewLimiter(cfg.MaxConcurrent),
		maxRetries:   max(0, cfg.MaxRetries),
		retryBackoff: cfg.RetryBackoff,
	}, nil
}

// Host returns the API host this client talks to.
func (c *Client) Host() string {
	return c.host
}

// Request POSTs task to endpoint with the API key added as "auth" and
// decodes the response into T.
//
// A non-200 status yields *StatusError; a response flagged "error": true
// yields *APIError, wrapped in *FatalError for billing and key problems.
func Request[T any](ctx context.Context, c *Client, endpoint string, task any) (*T, error) {
	if !strings.HasPrefix(endpoint, "/") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidEndpoint, endpoint)
	}

	payload, err := withAuth(task, c.apiKey)
	if err != nil {
		return nil, err
	}

	body, err := c.send(ctx, http.MethodPost, "https://"+c.host+endpoint, payload)
	if err != nil {
		return nil, err
	}

	var envelope Envelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w (body: %s)", err, string(body))
	}

	if envelope.Error {
		message := envelope.Message
		if message == "" {
			message = indentBody(body)
		}
		apiErr := &APIError{Endpoint: endpoint, Message: message}
		if ContainsFatalErrorString(apiErr) {
			return nil, NewFatalError(apiErr)
		}
		return nil, apiErr
	}

	result := new(T)
	if err := json.Unmarshal(body, result); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w (body: %s)", err, string(body))
	}
	return result, nil
}

// CheckUsage returns the request counters of the API key for site.
func (c *Client) CheckUsage(ctx context.Context, site string) (*UsageResponse, error) {
	query := url.Values{
		"authToken": {c.apiKey},
		"site":      {site},
	}
	usageURL := "https://" + c.host + "/usage?" + query.Encode()

	body, err := c.send(ctx, http.MethodGet, usageURL, nil)
	if err != nil {
		return nil, err
	}

	var usage UsageResponse
	if err := json.Unmarshal(body, &usage); err != nil {
		return nil, fmt.Errorf("failed to parse usage response: %w (body: %s)", err, string(body))
	}
	return &usage, nil
}

// withAuth merges the auth field into the JSON object encoding of task.
func withAuth(task any, key string) ([]byte, error) {
	fields := map[string]json.RawMessage{}

	if task != nil {
		raw, err := json.Marshal(task)
		if err != nil {
			return nil, fmt.Errorf("failed to encode task: %w", err)
		}
		if string(raw) != "null" {
			if err := json.Unmarshal(raw, &fields); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrInvalidTask, err)
			}
		}
	}

	auth, err := json.Marshal(key)
	if err != nil {
		return nil, err
	}
	fields["auth"] = auth

	return json.Marshal(fields)
}

func indentBody(body []byte) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return string(body)
	}
	return buf.String()
}

// send performs the request, retrying transport failures with exponential backoff.
func (c *Client) send(ctx context.Context, method, rawURL string, payload []byte) ([]byte, error) {
	logger := &prefixLogger{id: generateRequestID(), base: c.logger}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := c.retryBackoff * time.Duration(1<<(attempt-1))
			logger.Log("retrying in %v (attempt %d/%d): %v", backoff, attempt+1, c.maxRetries+1, lastErr)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		body, err := c.doOnce(ctx, logger, method, rawURL, payload)
		if err == nil {
			return body, nil
		}
		if ctx.Err() != nil || !IsRetryableError(err) {
			return nil, err
		}
		lastErr = err
	}

	return nil, fmt.Errorf("api request failed after %d attempts: %w", c.maxRetries+1, lastErr)
}

func (c *Client) doOnce(ctx context.Context, logger Logger, method, rawURL string, payload []byte) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, err
	}

	req.Header = http.Header{
		"accept":          {"application/json"},
		"accept-encoding": {"gzip, deflate, br"},
		http.HeaderOrderKey: {
			"content-length",
			"content-type",
			"accept",
			"accept-encoding",
		},
		http.PHeaderOrderKey: pseudoHeaderOrder,
	}
	if payload != nil {
		req.Header["content-type"] = []string{"application/json"}
	}

	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, err
	}
	defer c.limiter.Release()

	resp, err := c.http.Do(req)
	if err != nil {
		logger.Log("%s %s -> error: %v", req.Method, req.URL.Path, err)
		return nil, err
	}
	defer resp.Body.Close()
	logger.Log("%s %s -> %d", req.Method, req.URL.Path, resp.StatusCode)

	decompressed := http.DecompressBody(resp)
	defer decompressed.Close()
	body, err := io.ReadAll(decompressed)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

func generateRequestID() string {
	return uuid.New().String()[:8]
}
