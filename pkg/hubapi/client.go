package hubapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/volunteerhub/volunteerhub-web/pkg/httpclient"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
	"github.com/volunteerhub/volunteerhub-web/pkg/metrics"
	"go.uber.org/zap"
)

const maxErrorBodyBytes = 4 * 1024

// TokenSource resolves the bearer credential for an outgoing request. It is
// consulted immediately before dispatch; returning false sends the request
// unauthenticated and lets the backend decide whether that is permitted.
type TokenSource interface {
	Token(ctx context.Context) (string, bool)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) (string, bool)

func (f TokenSourceFunc) Token(ctx context.Context) (string, bool) {
	return f(ctx)
}

// NoToken is a TokenSource that never authenticates.
var NoToken = TokenSourceFunc(func(context.Context) (string, bool) { return "", false })

// StaticToken returns a TokenSource that always presents the given token.
func StaticToken(token string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, bool) { return token, true })
}

// Client is the single configured request pipeline against the
// volunteer-matching backend API. It attaches the bearer token from its
// TokenSource, propagates transport errors and non-2xx responses to the
// caller, and performs no retries, caching or request deduplication.
type Client struct {
	baseURL string
	http    httpclient.Client
	tokens  TokenSource

	Auth       *AuthClient
	Volunteers *VolunteersClient
	Needs      *NeedsClient
}

// New creates a backend API client. baseURL is the API root, e.g.
// "http://localhost:8000/api/v1".
func New(baseURL string, hc httpclient.Client, tokens TokenSource) (*Client, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("empty base URL provided")
	}
	if tokens == nil {
		tokens = NoToken
	}

	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
		tokens:  tokens,
	}
	c.Auth = &AuthClient{c}
	c.Volunteers = &VolunteersClient{c}
	c.Needs = &NeedsClient{c}

	logger.Info("Backend API client initialized", zap.String("base_url", c.baseURL))

	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON issues a request with an optional JSON body and decodes a JSON
// response into out (when out is non-nil).
func (c *Client) doJSON(ctx context.Context, operation, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	contentType := ""
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode %s payload: %w", operation, err)
		}
		reader = bytes.NewReader(data)
		contentType = "application/json"
	}
	return c.do(ctx, operation, method, path, query, reader, contentType, out)
}

// doForm issues a request with a URL-encoded form body.
func (c *Client) doForm(ctx context.Context, operation, method, path string, form url.Values, out any) error {
	return c.do(ctx, operation, method, path, nil, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", out)
}

func (c *Client) do(ctx context.Context, operation, method, path string, query url.Values, body io.Reader, contentType string, out any) error {
	start := time.Now()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", operation, err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")

	// Consult the token source immediately before dispatch so the request
	// always carries the current session's credential.
	if token, ok := c.tokens.Token(ctx); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)

	duration := metrics.MeasureDuration(start)

	if err != nil {
		metrics.UpstreamRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.UpstreamRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogUpstreamCall(operation, "error", duration, zap.Error(err))
		return fmt.Errorf("upstream %s: %w", operation, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodyBytes))
		metrics.UpstreamRequestDuration.WithLabelValues(operation, "error").Observe(duration)
		metrics.UpstreamRequestTotal.WithLabelValues(operation, "error").Inc()
		logger.LogUpstreamCall(operation, "error", duration,
			zap.Int("status_code", resp.StatusCode))
		return &APIError{
			Operation:  operation,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(errBody)),
		}
	}

	metrics.UpstreamRequestDuration.WithLabelValues(operation, "success").Observe(duration)
	metrics.UpstreamRequestTotal.WithLabelValues(operation, "success").Inc()
	logger.LogUpstreamCall(operation, "success", duration,
		zap.Int("status_code", resp.StatusCode))

	if out == nil {
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", operation, err)
	}

	return nil
}

// pageQuery encodes pagination parameters, applying backend defaults.
func pageQuery(p Page) url.Values {
	if p.Limit <= 0 {
		p.Limit = DefaultPage().Limit
	}
	if p.Skip < 0 {
		p.Skip = 0
	}
	q := url.Values{}
	q.Set("skip", fmt.Sprintf("%d", p.Skip))
	q.Set("limit", fmt.Sprintf("%d", p.Limit))
	return q
}
