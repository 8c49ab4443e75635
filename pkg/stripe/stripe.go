package stripe

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBaseURL = "https://api.stripe.com"

// Config holds the Stripe API credentials and session defaults.
type Config struct {
	APIKey string
	// BaseURL overrides the Stripe API endpoint. Used by tests to point the
	// client at a local fake server. Empty means the real API.
	BaseURL    string
	SuccessURL string
	CancelURL  string
}

// Client calls the Stripe Checkout Sessions API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a new Stripe client.
func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	return &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// LineItem is one entry of a checkout session: a product name, its unit
// amount in minor currency units, and the ordered quantity.
type LineItem struct {
	Name       string
	Currency   string
	UnitAmount int64
	Quantity   int64
}

// SessionParams are the parameters for creating a checkout session.
type SessionParams struct {
	ClientReferenceID string
	LineItems         []LineItem
}

// Session is the provider-issued payment intent for a cart.
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type apiError struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// CreateCheckoutSession creates a payment-mode checkout session. The Stripe
// API takes form-encoded bodies, with line items flattened into indexed keys.
func (c *Client) CreateCheckoutSession(params SessionParams) (*Session, error) {
	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", c.cfg.SuccessURL)
	form.Set("cancel_url", c.cfg.CancelURL)
	form.Set("client_reference_id", params.ClientReferenceID)
	for i, item := range params.LineItems {
		prefix := fmt.Sprintf("line_items[%d]", i)
		form.Set(prefix+"[quantity]", strconv.FormatInt(item.Quantity, 10))
		form.Set(prefix+"[price_data][currency]", item.Currency)
		form.Set(prefix+"[price_data][unit_amount]", strconv.FormatInt(item.UnitAmount, 10))
		form.Set(prefix+"[price_data][product_data][name]", item.Name)
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.BaseURL+"/v1/checkout/sessions", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build checkout session request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("checkout session request failed: %w", err)
	}
	defer res.Body.Close()

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read checkout session response: %w", err)
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		var apiErr apiError
		if jsonErr := json.Unmarshal(body, &apiErr); jsonErr == nil && apiErr.Error.Message != "" {
			return nil, fmt.Errorf("stripe returned status %d: %s", res.StatusCode, apiErr.Error.Message)
		}
		return nil, fmt.Errorf("stripe returned status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var session Session
	if err := json.Unmarshal(body, &session); err != nil {
		return nil, fmt.Errorf("failed to decode checkout session response: %w", err)
	}
	return &session, nil
}
