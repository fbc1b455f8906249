package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrGateway wraps every provider-side failure: transport errors, timeouts,
// error payloads, and responses missing a checkout URL.
var ErrGateway = errors.New("payment gateway error")

const defaultBaseURL = "https://api.stripe.com"

const requestTimeout = 10 * time.Second

// priceIDPattern matches the provider's price identifiers. The payment route
// forwards an opaque catalog price id, never a raw amount, and anything that
// does not look like one is rejected before the gateway is contacted.
var priceIDPattern = regexp.MustCompile(`^price_[A-Za-z0-9_]+$`)

type Client struct {
	apiKey  string
	domain  string
	baseURL string
	http    *resty.Client
}

// NewClient builds a hosted-checkout client. domain roots the fixed success
// and cancel redirect targets. baseURL overrides the provider endpoint and is
// empty outside tests.
func NewClient(apiKey, domain, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:  apiKey,
		domain:  domain,
		baseURL: baseURL,
		http:    resty.New().SetTimeout(requestTimeout),
	}
}

type checkoutSession struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// CreateCheckoutSession asks the provider for a hosted checkout session with
// a single line item of quantity 1 and returns the redirect URL.
func (c *Client) CreateCheckoutSession(ctx context.Context, priceID string) (string, error) {
	if !priceIDPattern.MatchString(priceID) {
		return "", fmt.Errorf("%w: malformed price id %q", ErrGateway, priceID)
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+c.apiKey).
		SetHeader("Content-Type", "application/x-www-form-urlencoded").
		SetFormData(map[string]string{
			"mode":                    "payment",
			"line_items[0][price]":    priceID,
			"line_items[0][quantity]": "1",
			"success_url":             c.domain + "/success.html",
			"cancel_url":              c.domain + "/cancel.html",
		}).
		Post(c.baseURL + "/v1/checkout/sessions")
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGateway, err)
	}

	var session checkoutSession
	if err := json.Unmarshal(resp.Body(), &session); err != nil {
		return "", fmt.Errorf("%w: invalid provider response: %v", ErrGateway, err)
	}

	if resp.StatusCode() != http.StatusOK {
		if session.Error != nil && session.Error.Message != "" {
			return "", fmt.Errorf("%w: %s", ErrGateway, session.Error.Message)
		}
		return "", fmt.Errorf("%w: status %d: %s", ErrGateway, resp.StatusCode(), resp.Body())
	}

	if session.URL == "" {
		return "", fmt.Errorf("%w: provider returned no checkout URL", ErrGateway)
	}
	return session.URL, nil
}
