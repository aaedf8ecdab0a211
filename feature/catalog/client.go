package catalog

import (
	"bytes"
	"context"
	"encoding/json"
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

// Client reads and writes products through a Shopify admin REST compatible API.
// It implements reconcile.CatalogItemSource and reconcile.CatalogItemSink.
type Client struct {
	http     *httpx.Client
	baseURL  string
	apiKey   string
	password string
}

var _ reconcile.Catalog = (*Client)(nil)

// NewClient creates a catalog client from configuration.
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		http:     httpx.New(timeout, cfg.UserAgent),
		baseURL:  strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:   cfg.ApiKey,
		password: cfg.Password,
	}
}

type productEnvelope struct {
	Product *product `json:"product"`
}

type product struct {
	ID       json.Number `json:"id"`
	Title    string      `json:"title"`
	Variants []variant   `json:"variants"`
}

type variant struct {
	ID    json.Number `json:"id"`
	Title string      `json:"title"`
	Price any         `json:"price"`
}

// FetchItem returns the product with its variants in catalog order.
func (c *Client) FetchItem(ctx context.Context, catalogItemID string) (reconcile.CatalogItem, error) {
	endpoint := fmt.Sprintf("%s/admin/products/%s.json", c.baseURL, url.PathEscape(catalogItemID))
	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return reconcile.CatalogItem{}, err
	}

	var env productEnvelope
	if err := c.http.DoJSON(ctx, req, &env); err != nil {
		return reconcile.CatalogItem{}, err
	}
	if env.Product == nil {
		return reconcile.CatalogItem{}, fmt.Errorf("product %s missing from response", catalogItemID)
	}

	item := reconcile.CatalogItem{
		ID:       utils.ToString(env.Product.ID),
		Title:    env.Product.Title,
		Variants: make([]reconcile.CatalogVariant, 0, len(env.Product.Variants)),
	}
	for _, v := range env.Product.Variants {
		price, err := utils.ToDecimal(v.Price)
		if err != nil {
			return reconcile.CatalogItem{}, fmt.Errorf("variant %s price: %w", v.ID, err)
		}
		item.Variants = append(item.Variants, reconcile.CatalogVariant{
			ID:    utils.ToString(v.ID),
			Label: v.Title,
			Price: price,
		})
	}
	return item, nil
}

// SetPrice replaces the price of a single variant. The response body is ignored.
func (c *Client) SetPrice(ctx context.Context, variantID string, price decimal.Decimal) error {
	var id any = variantID
	if _, err := strconv.ParseInt(variantID, 10, 64); err == nil {
		id = json.Number(variantID)
	}

	body, err := json.Marshal(map[string]any{
		"variant": map[string]any{
			"id":    id,
			"price": price.String(),
		},
	})
	if err != nil {
		return fmt.Errorf("encode variant update: %w", err)
	}

	endpoint := fmt.Sprintf("%s/admin/variants/%s.json", c.baseURL, url.PathEscape(variantID))
	req, err := c.newRequest(ctx, http.MethodPut, endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	return c.http.DoJSON(ctx, req, nil)
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body *bytes.Reader) (*http.Request, error) {
	var (
		req *http.Request
		err error
	)
	if body == nil {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, nil)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, endpoint, body)
	}
	if err != nil {
		return nil, fmt.Errorf("build catalog request: %w", err)
	}
	req.SetBasicAuth(c.apiKey, c.password)
	return req, nil
}
