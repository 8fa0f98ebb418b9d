package benchmark

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/shopspring/decimal"
)

// Quoter supplies the benchmark index year-to-date return in percent.
type Quoter interface {
	YTDReturn(ctx context.Context) (float64, error)
}

// Client fetches the benchmark YTD return from a market-data provider:
// one GET for the current quote and one for the first-session open of the
// current year. Both endpoints are expected to return {"symbol":..,"price":..}
// with price as a string or number.
type Client struct {
	HTTP *http.Client

	QuoteURL    string
	YearOpenURL string
	Symbol      string
}

func (c *Client) YTDReturn(ctx context.Context) (float64, error) {
	if c == nil {
		return 0, fmt.Errorf("benchmark client not configured")
	}
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: 10 * time.Second}
	}
	symbol := strings.TrimSpace(c.Symbol)
	if symbol == "" {
		symbol = "SPY"
	}

	open, err := c.fetchPrice(ctx, c.YearOpenURL, symbol, time.Now().UTC().Year())
	if err != nil {
		return 0, fmt.Errorf("year open fetch: %w", err)
	}
	current, err := c.fetchPrice(ctx, c.QuoteURL, symbol, 0)
	if err != nil {
		return 0, fmt.Errorf("quote fetch: %w", err)
	}
	if open.LessThanOrEqual(decimal.Zero) {
		return 0, fmt.Errorf("invalid year open price %s", open.String())
	}
	ytd := current.Sub(open).Div(open).Mul(decimal.NewFromInt(100))
	return ytd.Round(2).InexactFloat64(), nil
}

func (c *Client) fetchPrice(ctx context.Context, endpoint, symbol string, year int) (decimal.Decimal, error) {
	endpoint = strings.TrimSpace(endpoint)
	if endpoint == "" {
		return decimal.Zero, fmt.Errorf("missing endpoint")
	}
	u, err := url.Parse(endpoint)
	if err != nil {
		return decimal.Zero, err
	}
	q := u.Query()
	q.Set("symbol", symbol)
	if year > 0 {
		q.Set("year", fmt.Sprintf("%d", year))
	}
	u.RawQuery = q.Encode()

	var price decimal.Decimal
	op := func() error {
		req, _ := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
		resp, err := c.HTTP.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("http %d", resp.StatusCode)
		}
		var parsed struct {
			Symbol string          `json:"symbol"`
			Price  json.RawMessage `json:"price"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
			return err
		}
		p, err := parsePrice(parsed.Price)
		if err != nil {
			return backoff.Permanent(err)
		}
		price = p
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 2), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return decimal.Zero, err
	}
	return price, nil
}

func parsePrice(raw json.RawMessage) (decimal.Decimal, error) {
	s := strings.Trim(strings.TrimSpace(string(raw)), `"`)
	if s == "" || s == "null" {
		return decimal.Zero, fmt.Errorf("missing price")
	}
	p, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid price %q", s)
	}
	if p.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("non-positive price %q", s)
	}
	return p, nil
}
