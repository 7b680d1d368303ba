// Package shopclient is a minimal HTTP client for the /shop product resource.
package shopclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/rogerio-castellano/shop-inventory/internal/models"
)

// ErrRequestFailed is returned for every failed call: the server could not be
// reached, answered with a non-2xx status, or sent a body that is not a product.
var ErrRequestFailed = errors.New("shop request failed")

// Client talks to a /shop resource rooted at baseURL.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     zerolog.Logger
}

// New constructs a client for baseURL, e.g. "http://localhost:8081/shop".
func New(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		logger:     logger,
	}
}

// List fetches the full product collection in server order.
func (c *Client) List(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := c.doRequest(ctx, http.MethodGet, c.baseURL, nil, &products); err != nil {
		return nil, err
	}
	if products == nil {
		products = []models.Product{}
	}
	return products, nil
}

// Create posts a new product and returns the stored record with its identifier.
func (c *Client) Create(ctx context.Context, in models.ProductInput) (models.Product, error) {
	var created models.Product
	if err := c.doRequest(ctx, http.MethodPost, c.baseURL, in, &created); err != nil {
		return models.Product{}, err
	}
	return created, nil
}

// Update replaces the editable fields of product id and returns the stored record.
func (c *Client) Update(ctx context.Context, id int, in models.ProductInput) (models.Product, error) {
	var updated models.Product
	url := c.baseURL + "/" + strconv.Itoa(id)
	if err := c.doRequest(ctx, http.MethodPut, url, in, &updated); err != nil {
		return models.Product{}, err
	}
	return updated, nil
}

// doRequest sends body as JSON (when non-nil) and decodes a 2xx JSON response
// into result. Every failure is wrapped in ErrRequestFailed.
func (c *Client) doRequest(ctx context.Context, method, url string, body any, result any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%w: failed to marshal request: %w", ErrRequestFailed, err)
		}
		c.logger.Debug().
			Str("method", method).
			Str("url", url).
			RawJSON("request", payload).
			Msg("outgoing request")
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %w", ErrRequestFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response: %w", ErrRequestFailed, err)
	}

	c.logger.Debug().
		Str("method", method).
		Str("url", url).
		Int("status_code", resp.StatusCode).
		Msg("incoming response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%w: %s %s: unexpected status %d", ErrRequestFailed, method, url, resp.StatusCode)
	}
	if err := json.Unmarshal(respBody, result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %w", ErrRequestFailed, err)
	}
	return nil
}
