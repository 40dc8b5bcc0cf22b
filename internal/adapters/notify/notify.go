// Package notify wraps the transactional email provider
//
// Callers treat dispatch as fire-and-forget: a failed send is logged and
// counted but must never alter the outcome of the operation that triggered it
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"orggate/internal/platform/config"
	perr "orggate/internal/platform/errors"
	"orggate/internal/platform/logger"
	"orggate/internal/platform/metrics"
)

const defaultTimeout = 10 * time.Second

// Request describes one email dispatch
type Request struct {
	Recipient       string
	TemplateID      string
	Personalisation map[string]string

	// Reference correlates the send with the acting user and organisation
	// in the provider's dashboard; filled with a fresh UUID when empty
	Reference string
}

// Sender is the seam orchestration code depends on
type Sender interface {
	Send(ctx context.Context, req Request) (string, error)
}

// Options configures the provider client
type Options struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is the HTTP implementation of Sender
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// New creates a provider client with sane defaults
func New(o Options) *Client {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("notify"),
	}
}

// FromConfig reads provider options from the env (BASE_URL, API_KEY, TIMEOUT)
func FromConfig(cfg config.Conf) *Client {
	return New(Options{
		BaseURL: cfg.MustURL("BASE_URL").String(),
		APIKey:  cfg.MayString("API_KEY", ""),
		Timeout: cfg.MayDuration("TIMEOUT", defaultTimeout),
	})
}

type sendBody struct {
	EmailAddress    string            `json:"email_address"`
	TemplateID      string            `json:"template_id"`
	Personalisation map[string]string `json:"personalisation,omitempty"`
	Reference       string            `json:"reference"`
}

type sendResult struct {
	ID string `json:"id"`
}

// Send dispatches one email and returns the provider's notification id
// Any non-id-bearing result is a failure
func (c *Client) Send(ctx context.Context, req Request) (string, error) {
	if req.Reference == "" {
		req.Reference = uuid.NewString()
	}

	buf, err := json.Marshal(sendBody{
		EmailAddress:    req.Recipient,
		TemplateID:      req.TemplateID,
		Personalisation: req.Personalisation,
		Reference:       req.Reference,
	})
	if err != nil {
		metrics.ObserveNotify(req.TemplateID, false)
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "notify encode failed")
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/v2/notifications/email", bytes.NewReader(buf))
	if err != nil {
		metrics.ObserveNotify(req.TemplateID, false)
		return "", perr.Wrapf(err, perr.ErrorCodeUnknown, "notify new request failed")
	}
	hreq.Header.Set("Content-Type", "application/json")
	if c.opts.APIKey != "" {
		hreq.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	resp, err := c.http.Do(hreq)
	if err != nil {
		metrics.ObserveNotify(req.TemplateID, false)
		return "", perr.Wrapf(err, perr.ErrorCodeUnavailable, "notify send failed")
	}
	defer func() { _ = resp.Body.Close() }()

	b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.ObserveNotify(req.TemplateID, false)
		return "", perr.Downstreamf("notify provider returned status %d", resp.StatusCode)
	}

	var res sendResult
	if err := json.Unmarshal(b, &res); err != nil || res.ID == "" {
		metrics.ObserveNotify(req.TemplateID, false)
		return "", perr.Downstreamf("notify provider returned no notification id")
	}

	metrics.ObserveNotify(req.TemplateID, true)
	c.log.Debug().Str("template", req.TemplateID).Str("reference", req.Reference).Str("id", res.ID).Msg("notification sent")
	return res.ID, nil
}

// Ref builds a provider reference correlating the acting user and organisation
func Ref(userID, organisationID string) string {
	if userID == "" && organisationID == "" {
		return uuid.NewString()
	}
	return userID + ":" + organisationID
}
