package halalbooking

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/ijalalfrz/hotel-price-query-service/internal/pkg/exception"
	"github.com/sony/gobreaker"
)

const (
	DefaultBaseURL  = "https://tr.halalbooking.com/api/v2/tr"
	DefaultLocation = "Turkey"
)

// ClientConfig for the booking API client.
type ClientConfig struct {
	BaseURL     string
	Location    string
	PartnerCode string
	SecretKey   string
	Timeout     time.Duration
	Breaker     BreakerConfig
	HTTPClient  *http.Client
}

type Client struct {
	BaseURL     string
	Location    string
	PartnerCode string
	SecretKey   string
	Timeout     time.Duration
	HTTPClient  *http.Client

	breaker *gobreaker.CircuitBreaker
}

func NewClient(config ClientConfig) *Client {
	client := &Client{
		BaseURL:     config.BaseURL,
		Location:    config.Location,
		PartnerCode: config.PartnerCode,
		SecretKey:   config.SecretKey,
		Timeout:     config.Timeout,
		HTTPClient:  config.HTTPClient,
		breaker:     newCircuitBreaker("halalbooking", config.Breaker),
	}

	if client.BaseURL == "" {
		client.BaseURL = DefaultBaseURL
	}

	if client.Location == "" {
		client.Location = DefaultLocation
	}

	if client.HTTPClient == nil {
		client.HTTPClient = &http.Client{}
	}

	return client
}

// GetPrices fetches room offers for one hotel. There is no retry, any failure
// is returned to the caller as is.
func (c *Client) GetPrices(ctx context.Context, query PriceQuery) (PriceResponse, error) {
	apiURL := BuildPricesURL(c.BaseURL, c.Location, query)

	body, err := c.get(ctx, apiURL)
	if err != nil {
		return PriceResponse{}, err
	}

	var response PriceResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return PriceResponse{}, exception.Internal(fmt.Sprintf("invalid API response: %v", err), err)
	}

	return response, nil
}

// GetContent returns the raw content lookup body for a single place.
func (c *Client) GetContent(ctx context.Context, hotelID int) (json.RawMessage, error) {
	body, err := c.get(ctx, BuildContentURL(c.BaseURL, hotelID))
	if err != nil {
		return nil, err
	}

	if !json.Valid(body) {
		return nil, exception.Internal("invalid API response: body is not JSON", nil)
	}

	return json.RawMessage(body), nil
}

// get runs the request through the circuit breaker when one is configured.
func (c *Client) get(ctx context.Context, apiURL string) ([]byte, error) {
	if c.breaker == nil {
		return c.do(ctx, apiURL)
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		return c.do(ctx, apiURL)
	})
	if err != nil {
		return nil, breakerError(err)
	}

	return body.([]byte), nil //nolint:forcetypeassert
}

func (c *Client) do(ctx context.Context, apiURL string) ([]byte, error) {
	if c.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Timeout)
		defer cancel()
	}

	slog.DebugContext(ctx, "calling halalbooking API", slog.String("url", apiURL))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", BasicAuth(c.PartnerCode, c.SecretKey))

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, exception.Internal(fmt.Sprintf("API request failed: %v", err), err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, exception.Internal(fmt.Sprintf("failed to read API response: %v", err), err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		slog.ErrorContext(ctx, "halalbooking API returned non-2xx status",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))

		return nil, exception.ApplicationError{
			StatusCode: http.StatusInternalServerError,
			Message:    fmt.Sprintf("API request failed: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
			Cause:      StatusError{StatusCode: resp.StatusCode},
		}
	}

	return body, nil
}
