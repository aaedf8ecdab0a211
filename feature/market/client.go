package market

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"price-sync/core/httpx"
	"price-sync/core/reconcile"
	"price-sync/core/utils"

	"github.com/shopspring/decimal"
)

// Ticker is one asset of the market snapshot.
type Ticker struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Symbol   string          `json:"symbol"`
	Rank     int             `json:"rank"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency"`
}

// Client reads spot prices from a CoinMarketCap v1 compatible ticker API.
// It implements reconcile.MarketPriceSource.
type Client struct {
	http     *httpx.Client
	baseURL  string
	currency string
	now      func() time.Time
}

var _ reconcile.MarketPriceSource = (*Client)(nil)

// NewClient creates a market client from configuration.
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:     httpx.New(timeout, cfg.UserAgent),
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		currency: strings.ToUpper(strings.TrimSpace(cfg.Currency)),
		now:      time.Now,
	}
}

// Currency returns the reference currency prices are quoted in.
func (c *Client) Currency() string {
	return c.currency
}

// Fetch returns the spot price of the asset known to the market as lookupKey.
func (c *Client) Fetch(ctx context.Context, lookupKey string) (reconcile.MarketPrice, error) {
	q := url.Values{"convert": {c.currency}}
	endpoint := fmt.Sprintf("%s/v1/ticker/%s/?%s", c.baseURL, url.PathEscape(lookupKey), q.Encode())

	tickers, err := c.get(ctx, endpoint)
	if err != nil {
		return reconcile.MarketPrice{}, err
	}
	if len(tickers) == 0 {
		return reconcile.MarketPrice{}, fmt.Errorf("no ticker returned for %q", lookupKey)
	}

	t := tickers[0]
	return reconcile.MarketPrice{
		Symbol:    t.Symbol,
		LookupKey: lookupKey,
		UnitPrice: t.Price,
		Currency:  c.currency,
		FetchedAt: c.now(),
	}, nil
}

// FetchAll returns the top limit assets by rank.
func (c *Client) FetchAll(ctx context.Context, limit int) ([]Ticker, error) {
	q := url.Values{"convert": {c.currency}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return c.get(ctx, fmt.Sprintf("%s/v1/ticker/?%s", c.baseURL, q.Encode()))
}

func (c *Client) get(ctx context.Context, endpoint string) ([]Ticker, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build market request: %w", err)
	}

	var raw []map[string]any
	if err := c.http.DoJSON(ctx, req, &raw); err != nil {
		return nil, err
	}

	tickers := make([]Ticker, 0, len(raw))
	for _, r := range raw {
		t, err := c.parseTicker(r)
		if err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}
	return tickers, nil
}

// parseTicker reads the price from the price_<currency> field, which may be
// quoted or a bare number.
func (c *Client) parseTicker(raw map[string]any) (Ticker, error) {
	t := Ticker{
		ID:       utils.ToString(raw["id"]),
		Name:     utils.ToString(raw["name"]),
		Symbol:   strings.ToUpper(utils.ToString(raw["symbol"])),
		Rank:     utils.ToInt(raw["rank"]),
		Currency: c.currency,
	}

	field := "price_" + strings.ToLower(c.currency)
	price, err := utils.ToDecimal(raw[field])
	if err != nil {
		return Ticker{}, fmt.Errorf("ticker %q field %s: %w", t.ID, field, err)
	}
	if !price.IsPositive() {
		return Ticker{}, fmt.Errorf("ticker %q field %s: %w: %s", t.ID, field, reconcile.ErrInvalidPrice, price)
	}
	t.Price = price
	return t, nil
}
