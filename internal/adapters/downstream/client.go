// Package downstream provides the outbound HTTP kit for backend microservices
package downstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"orggate/internal/modkit/scope"
	perr "orggate/internal/platform/errors"
	"orggate/internal/platform/logger"
	"orggate/internal/platform/metrics"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "orggate-api"

	// bodies larger than this are truncated on read; downstream error bodies
	// are short phrases and payloads are small DTOs
	maxBodyBytes = 1 << 20
)

// Options configures a Client for one downstream service
type Options struct {
	Service   string // short name used in logs and metrics, e.g. "accounts"
	BaseURL   string
	Timeout   time.Duration
	UserAgent string

	// Optional service-to-service bearer credential
	Token string
}

// Outcome is the raw result of one downstream call
// consumed immediately by classification, never retried or persisted
type Outcome struct {
	Status int
	Body   []byte
}

// StatusError carries a non-2xx downstream status for callers that prefer
// the exceptional style over inspecting a returned Outcome
type StatusError struct {
	Service string
	Status  int
	Body    []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned status %d", e.Service, e.Status)
}

// Ensure2xx converts a non-2xx Outcome into a *StatusError
// both call styles see the same status either way
func Ensure2xx(service string, o Outcome) error {
	if o.Status >= 200 && o.Status < 300 {
		return nil
	}
	return &StatusError{Service: service, Status: o.Status, Body: o.Body}
}

// Client wraps one downstream base URL with a shared http.Client
// No retries and no caching; each call is exactly one outbound request
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// New creates a Client with sane defaults
func New(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named(o.Service),
		now:  time.Now,
	}
}

// Service returns the client's short service name
func (c *Client) Service() string { return c.opts.Service }

// Do issues one request and returns the raw outcome
// body is JSON-encoded when non-nil. A transport failure (no response at all)
// returns a non-nil error and callers must not inspect the Outcome then
func (c *Client) Do(ctx context.Context, op, method, path string, body any) (Outcome, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return Outcome{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "%s encode request failed", c.opts.Service)
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.opts.BaseURL+path, rdr)
	if err != nil {
		return Outcome{}, perr.Wrapf(err, perr.ErrorCodeUnknown, "%s new request failed", c.opts.Service)
	}
	req.Header.Set("User-Agent", c.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.opts.Token)
	}
	if uid, ok := scope.Get(ctx, "user_id"); ok {
		req.Header.Set("X-On-Behalf-Of", uid)
	}

	start := c.now()
	resp, err := c.http.Do(req)
	lat := c.now().Sub(start)

	if err != nil {
		metrics.ObserveDownstream(c.opts.Service, op, -1, lat)
		c.log.Warn().Str("op", op).Str("method", method).Str("path", path).Err(err).Msg("downstream transport failure")
		return Outcome{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s call failed", c.opts.Service)
	}
	defer func() { _ = resp.Body.Close() }()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		metrics.ObserveDownstream(c.opts.Service, op, -1, lat)
		return Outcome{}, perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s read body failed", c.opts.Service)
	}

	metrics.ObserveDownstream(c.opts.Service, op, resp.StatusCode, lat)
	c.log.Debug().
		Str("op", op).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("downstream call")

	return Outcome{Status: resp.StatusCode, Body: b}, nil
}

// Ping probes the downstream health endpoint for readiness checks
func (c *Client) Ping(ctx context.Context) error {
	out, err := c.Do(ctx, "ping", http.MethodGet, "/health", nil)
	if err != nil {
		return err
	}
	return Ensure2xx(c.opts.Service, out)
}

// DecodeJSON parses a 2xx Outcome body into T
func DecodeJSON[T any](service string, o Outcome) (T, error) {
	var v T
	if err := json.Unmarshal(o.Body, &v); err != nil {
		return v, perr.Wrapf(err, perr.ErrorCodeDownstream, "%s decode response failed", service)
	}
	return v, nil
}
