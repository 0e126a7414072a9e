package fx

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Client fetches USD/JPY spot rates from an exchange-rate API.
type Client struct {
	baseURL    string
	httpClient *http.Client
	baseDelay  time.Duration
	maxRetries int
}

// NewClient creates a new exchange-rate API client.
func NewClient(baseURL string, baseDelay time.Duration, maxRetries int) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseDelay:  baseDelay,
		maxRetries: maxRetries,
	}
}

// FetchRate fetches the current USD/JPY rate.
func (c *Client) FetchRate(ctx context.Context) (decimal.Decimal, error) {
	url := fmt.Sprintf("%s/latest?base=USD&symbols=JPY", c.baseURL)

	body, err := c.fetchWithRetry(ctx, url)
	if err != nil {
		return decimal.Zero, err
	}

	// Parse: {"base":"USD","rates":{"JPY":153.5}}
	var raw struct {
		Rates map[string]json.Number `json:"rates"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		return decimal.Zero, fmt.Errorf("parsing rate response: %w", err)
	}

	jpy, ok := raw.Rates["JPY"]
	if !ok {
		return decimal.Zero, fmt.Errorf("rate response missing JPY")
	}

	rate, err := decimal.NewFromString(jpy.String())
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing JPY rate %q: %w", jpy, err)
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("non-positive JPY rate %s", rate)
	}
	return rate, nil
}

func (c *Client) fetchWithRetry(ctx context.Context, url string) ([]byte, error) {
	var lastErr error
	for attempt := range c.maxRetries + 1 {
		if attempt > 0 {
			baseDelay := c.baseDelay
			if baseDelay == 0 {
				baseDelay = time.Second
			}
			delay := baseDelay * time.Duration(1<<uint(attempt-1))
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, fmt.Errorf("creating rate request: %w", err)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = fmt.Errorf("rate request failed: %w", err)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = fmt.Errorf("reading rate response: %w", err)
			continue
		}

		if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("rate API returned %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("rate API returned %d", resp.StatusCode)
		}

		return body, nil
	}
	return nil, fmt.Errorf("rate fetch failed after %d attempts: %w", c.maxRetries+1, lastErr)
}
