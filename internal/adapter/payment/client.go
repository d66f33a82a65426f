package payment

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
	"path"
	"time"

	"github.com/google/uuid"
)

// ErrSessionRejected indicates the gateway refused to create a checkout session.
var ErrSessionRejected = errors.New("checkout session rejected")

// CheckoutItem is one order line presented on the hosted checkout page.
type CheckoutItem struct {
	Name       string  `json:"name"`
	ImageURL   string  `json:"image_url,omitempty"`
	UnitAmount float64 `json:"unit_amount"`
	Quantity   int     `json:"quantity"`
}

// SessionRequest describes a hosted checkout session to create.
type SessionRequest struct {
	ClientReference string         `json:"client_reference"`
	Currency        string         `json:"currency"`
	Items           []CheckoutItem `json:"items"`
	DiscountID      string         `json:"discount_id,omitempty"`
	SuccessURL      string         `json:"success_url"`
	CancelURL       string         `json:"cancel_url"`
}

// Client exposes the payment gateway operations used by checkout.
type Client interface {
	// CreateDiscount registers a one-time percentage discount and returns its id.
	CreateDiscount(ctx context.Context, percentOff float64) (string, error)
	// CreateSession creates a hosted checkout session and returns its redirect URL.
	CreateSession(ctx context.Context, req SessionRequest) (string, error)
}

// HTTPClient implements Client via the gateway's HTTP API.
type HTTPClient struct {
	baseURL    *url.URL
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

type discountRequest struct {
	PercentOff float64 `json:"percent_off"`
	Duration   string  `json:"duration"`
}

type discountResponse struct {
	ID string `json:"id"`
}

type sessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// NewHTTPClient creates an HTTP gateway client with default timeout.
func NewHTTPClient(baseURL, apiKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse payment url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("payment url must be absolute")
	}
	return &HTTPClient{
		baseURL: parsed,
		apiKey:  apiKey,
		logger:  logger,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}, nil
}

func (c *HTTPClient) CreateDiscount(ctx context.Context, percentOff float64) (string, error) {
	var resp discountResponse
	err := c.post(ctx, "/v1/coupons", discountRequest{PercentOff: percentOff, Duration: "once"}, &resp)
	if err != nil {
		return "", err
	}
	if resp.ID == "" {
		return "", fmt.Errorf("gateway returned empty discount id")
	}
	return resp.ID, nil
}

func (c *HTTPClient) CreateSession(ctx context.Context, req SessionRequest) (string, error) {
	var resp sessionResponse
	if err := c.post(ctx, "/v1/checkout/sessions", req, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", fmt.Errorf("gateway returned empty session url")
	}
	return resp.URL, nil
}

func (c *HTTPClient) post(ctx context.Context, endpoint string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	target := *c.baseURL
	target.Path = path.Join(target.Path, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.String(), bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	// both gateway writes create billable objects, guard retries
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		return json.Unmarshal(data, out)
	case http.StatusUnprocessableEntity, http.StatusBadRequest:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment request rejected", slog.Int("status", resp.StatusCode), slog.String("body", string(data)))
		return ErrSessionRejected
	default:
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("payment request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(data)))
		return fmt.Errorf("payment gateway error: %s", resp.Status)
	}
}
