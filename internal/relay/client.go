package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"golang.org/x/time/rate"
)

// Params is the flat mapping of named template variables.
type Params map[string]string

// Response is a successful relay reply.
type Response struct {
	Status int
	Text   string
}

// Sender delivers template parameters through the relay.
type Sender interface {
	Send(ctx context.Context, params Params) (*Response, error)
}

// Client calls the EmailJS REST API. Calls are throttled but never retried.
type Client struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a client. A nil httpClient gets one with the configured timeout.
func NewClient(cfg Config, httpClient *http.Client) *Client {
	cfg = cfg.withDefaults()
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}
	return &Client{
		cfg:        cfg,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(cfg.RatePerSec), cfg.Burst),
	}
}

// Config returns the effective configuration.
func (c *Client) Config() Config {
	return c.cfg
}

type sendRequest struct {
	ServiceID      string `json:"service_id"`
	TemplateID     string `json:"template_id"`
	UserID         string `json:"user_id"`
	AccessToken    string `json:"accessToken,omitempty"`
	TemplateParams Params `json:"template_params"`
}

// Send posts params to the relay. It returns *MissingConfigError when identifiers are
// absent and *Error for transport failures or non-2xx replies.
func (c *Client) Send(ctx context.Context, params Params) (*Response, error) {
	log.Printf("[relay] Configuration check: %v", c.cfg.Present())
	if missing := c.cfg.Missing(); len(missing) > 0 {
		return nil, &MissingConfigError{Missing: missing}
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &Error{Kind: KindUnknown, Cause: err}
	}

	body, err := json.Marshal(sendRequest{
		ServiceID:      c.cfg.ServiceID,
		TemplateID:     c.cfg.TemplateID,
		UserID:         c.cfg.PublicKey,
		AccessToken:    c.cfg.PrivateKey,
		TemplateParams: params,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal relay request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.Endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Cause: err}
	}
	req.Header.Set("Content-Type", "application/json")

	log.Printf("[relay] Sending template %s via service %s (%d params, recipient redacted)",
		c.cfg.TemplateID, c.cfg.ServiceID, len(params))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindUnknown, Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	detail := strings.TrimSpace(string(text))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &Error{
			Status: resp.StatusCode,
			Text:   detail,
			Kind:   ClassifyStatus(resp.StatusCode),
		}
	}

	return &Response{Status: resp.StatusCode, Text: detail}, nil
}

// Redacted returns a copy of params safe for logging.
func Redacted(params Params) Params {
	out := make(Params, len(params))
	for k, v := range params {
		out[k] = v
	}
	if _, ok := out["to_email"]; ok {
		out["to_email"] = "[REDACTED]"
	}
	return out
}
