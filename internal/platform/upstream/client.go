package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/porcentagem/api-gateway/internal/platform/logger"
	"github.com/porcentagem/api-gateway/internal/platform/metrics"
	"github.com/porcentagem/api-gateway/internal/redact"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// Config describes one backend.
type Config struct {
	Name        string
	BaseURL     string
	Credentials Credentials
	NotFound    NotFoundPolicy
	Timeout     time.Duration

	// Transport overrides the base round tripper. It is still wrapped for tracing.
	Transport http.RoundTripper
	Metrics   *metrics.Recorder
	Logger    *slog.Logger
}

// Client performs calls against a single backend.
type Client struct {
	name        string
	baseURL     string
	credentials Credentials
	notFound    NotFoundPolicy
	httpClient  *http.Client
	metrics     *metrics.Recorder
	logger      *slog.Logger
}

// errAbsent marks a 404 tolerated by Find. It never leaves the package.
var errAbsent = errors.New("resource absent")

// New creates a Client for the backend described by cfg.
func New(cfg Config) (*Client, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("upstream client name cannot be empty")
	}
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid base URL for %s backend: %q", cfg.Name, cfg.BaseURL)
	}

	credentials := cfg.Credentials
	if credentials == nil {
		credentials = NoCredentials{}
	}

	base := cfg.Transport
	if base == nil {
		base = http.DefaultTransport
	}

	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}

	return &Client{
		name:        cfg.Name,
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		credentials: credentials,
		notFound:    cfg.NotFound,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
			Transport: otelhttp.NewTransport(base,
				otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
					return cfg.Name + " " + r.Method
				}),
			),
		},
		metrics: cfg.Metrics,
		logger:  log.With(slog.String("component", "upstream")),
	}, nil
}

// Get issues a GET and decodes the response body into out, which may be nil.
func (c *Client) Get(ctx context.Context, path string, out any, opts ...Option) error {
	return c.do(ctx, http.MethodGet, path, nil, out, false, opts)
}

// Post issues a POST with body encoded as JSON.
func (c *Client) Post(ctx context.Context, path string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPost, path, body, out, false, opts)
}

// Put issues a PUT with body encoded as JSON.
func (c *Client) Put(ctx context.Context, path string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPut, path, body, out, false, opts)
}

// Patch issues a PATCH with body encoded as JSON.
func (c *Client) Patch(ctx context.Context, path string, body, out any, opts ...Option) error {
	return c.do(ctx, http.MethodPatch, path, body, out, false, opts)
}

// Delete issues a DELETE and decodes the response body into out, which may be nil.
func (c *Client) Delete(ctx context.Context, path string, out any, opts ...Option) error {
	return c.do(ctx, http.MethodDelete, path, nil, out, false, opts)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, out any,
	tolerateNotFound bool,
	opts []Option,
) error {
	log := logger.FromContextOrDefault(ctx, c.logger).With(
		slog.String("backend", c.name),
		slog.String("method", method),
		slog.String("path", path),
	)
	co := newCallOptions(opts)

	fail := func(status int, respBody []byte, cause error) error {
		return &Error{
			Backend:    c.name,
			Method:     method,
			Path:       path,
			StatusCode: status,
			Body:       string(respBody),
			Err:        cause,
		}
	}

	req, err := c.newRequest(ctx, method, path, body, co)
	if err != nil {
		log.Error("failed to build backend request", slog.String("error", redact.Error(err)))
		return fail(0, nil, err)
	}

	log.Debug("calling backend")
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveUpstream(c.name, method, 0, time.Since(start))
		log.Error("backend call failed",
			slog.String("error", redact.Error(err)),
			slog.Duration("duration", time.Since(start)))
		return fail(0, nil, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveUpstream(c.name, method, resp.StatusCode, elapsed)
	if err != nil {
		log.Error("failed to read backend response",
			slog.Int("status", resp.StatusCode),
			slog.String("error", redact.Error(err)))
		return fail(resp.StatusCode, nil, fmt.Errorf("read response body: %w", err))
	}

	if resp.StatusCode == http.StatusNotFound && tolerateNotFound && c.notFound == NotFoundAsAbsent {
		log.Debug("backend resource absent",
			slog.Int("status", resp.StatusCode),
			slog.Duration("duration", elapsed))
		return errAbsent
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("backend returned error status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", redact.Bytes(respBody)),
			slog.Duration("duration", elapsed))
		return fail(resp.StatusCode, respBody, nil)
	}

	if out != nil && len(bytes.TrimSpace(respBody)) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			log.Error("failed to decode backend response",
				slog.Int("status", resp.StatusCode),
				slog.String("error", err.Error()))
			return fail(resp.StatusCode, respBody, fmt.Errorf("decode response: %w", err))
		}
	}

	log.Debug("backend call succeeded",
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", elapsed))
	return nil
}

func (c *Client) newRequest(
	ctx context.Context,
	method, path string,
	body any,
	co callOptions,
) (*http.Request, error) {
	target := c.baseURL + path
	if len(co.query) > 0 {
		sep := "?"
		if strings.Contains(target, "?") {
			sep = "&"
		}
		target += sep + co.query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if err := c.credentials.Apply(req); err != nil {
		return nil, fmt.Errorf("apply credentials: %w", err)
	}
	for key, values := range co.header {
		for i, v := range values {
			if i == 0 {
				req.Header.Set(key, v)
				continue
			}
			req.Header.Add(key, v)
		}
	}

	return req, nil
}
