// Package webhook relays contact submissions to a third-party HTTP endpoint
// as a JSON POST.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultURL is the Apps Script endpoint the site has always posted to.
const DefaultURL = "https://script.google.com/macros/s/AKfycbxm9B5N6yef1mx8JBVyC_EQj-ErNDQ8gXddE5tj6-9r8obbFTbDHCoyW4PuUKR_MIiw7w/exec"

// SubmissionHeader carries the per-request id.
const SubmissionHeader = "X-Submission-ID"

// Mode selects how the endpoint's response is interpreted.
type Mode string

const (
	// ModeOpaque treats any response as delivered. The body and status are
	// discarded, matching a browser's no-cors fetch.
	ModeOpaque Mode = "opaque"
	// ModeStrict reports non-2xx responses as *StatusError.
	ModeStrict Mode = "strict"
)

// ParseMode maps a config string to a Mode. Empty means ModeOpaque.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeOpaque:
		return ModeOpaque, nil
	case ModeStrict:
		return ModeStrict, nil
	}
	return "", fmt.Errorf("webhook: unknown delivery mode %q", s)
}

// ErrNoEndpoint is returned when the client has no URL configured.
var ErrNoEndpoint = errors.New("webhook: no endpoint configured")

// StatusError is returned in ModeStrict for non-2xx responses.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook: endpoint responded %d %s", e.Code, http.StatusText(e.Code))
}

// Client posts payloads to a single endpoint. It never retries.
type Client struct {
	url     string
	mode    Mode
	http    *http.Client
	timeout *time.Duration
	logger  *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithMode sets the delivery mode.
func WithMode(m Mode) Option {
	return func(c *Client) { c.mode = m }
}

// WithTimeout bounds each request. Zero disables the bound; the caller's
// context still applies. A client passed to WithHTTPClient is copied, not
// modified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = &d }
}

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the logger used for delivery diagnostics.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// New creates a Client for url.
func New(url string, opts ...Option) *Client {
	c := &Client{
		url:    url,
		mode:   ModeOpaque,
		http:   &http.Client{},
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout != nil {
		hc := *c.http
		hc.Timeout = *c.timeout
		c.http = &hc
	}
	return c
}

// URL returns the configured endpoint.
func (c *Client) URL() string { return c.url }

// Mode returns the configured delivery mode.
func (c *Client) Mode() Mode { return c.mode }

// Post marshals payload as JSON and sends it. In ModeOpaque only transport
// failures are returned.
func (c *Client) Post(ctx context.Context, payload any) error {
	if c.url == "" {
		return ErrNoEndpoint
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("webhook: encode payload: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("webhook: build request: %w", err)
	}
	id := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(SubmissionHeader, id)

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("webhook delivery failed",
			zap.String("submission_id", id),
			zap.Duration("latency", time.Since(start)),
			zap.Error(err))
		return fmt.Errorf("webhook: post: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	c.logger.Debug("webhook delivered",
		zap.String("submission_id", id),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	if c.mode == ModeStrict && (resp.StatusCode < 200 || resp.StatusCode > 299) {
		return &StatusError{Code: resp.StatusCode}
	}
	return nil
}
