// Package webhook relays requests to the workflow automation endpoint.
package webhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"campaign-wizard/internal/core/domain"
)

// maxDetail bounds how much of an upstream error body ends up in errors.
const maxDetail = 512

// Client implements port.WebhookClient with a bearer credential.
type Client struct {
	http *resty.Client
}

// NewClient creates a client for baseURL.
func NewClient(baseURL, secret string, timeout time.Duration) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("WEBHOOK_BASE_URL is required")
	}
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(secret).
		SetHeader("Content-Type", "application/json")
	return &Client{http: rc}, nil
}

// Post sends body to path and returns the response body verbatim. Transport
// failures and non-2xx answers wrap domain.ErrUpstream.
func (c *Client) Post(ctx context.Context, path string, body json.RawMessage) (json.RawMessage, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody([]byte(body)).
		Post(path)
	if err != nil {
		return nil, fmt.Errorf("%w: webhook %s: %w", domain.ErrUpstream, path, err)
	}
	if !resp.IsSuccess() {
		detail := resp.String()
		if len(detail) > maxDetail {
			detail = detail[:maxDetail]
		}
		return nil, fmt.Errorf("%w: webhook %s: status %d: %s", domain.ErrUpstream, path, resp.StatusCode(), detail)
	}

	raw := resp.Body()
	if len(raw) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, fmt.Errorf("%w: webhook %s: response is not JSON", domain.ErrUpstream, path)
	}
	return json.RawMessage(raw), nil
}
