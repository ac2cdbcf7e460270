// internal/adapters/catalog/client.go
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"nopsync/internal/adapters/observability"
	"nopsync/internal/domain"
)

type Options struct {
	BaseURL        string
	APIKey         string // optional
	ProductsPath   string
	CategoriesPath string
	Timeout        time.Duration
	RPS            int
}

type Client struct {
	base           string
	productsPath   string
	categoriesPath string
	hc             *http.Client
	key            string
	rl             *rate.Limiter
}

func New(o Options) (*Client, error) {
	if o.BaseURL == "" {
		return nil, fmt.Errorf("catalog base URL is required")
	}
	if _, err := url.Parse(o.BaseURL); err != nil {
		return nil, fmt.Errorf("catalog base URL: %w", err)
	}
	if o.RPS <= 0 {
		o.RPS = 5
	}
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	if o.ProductsPath == "" {
		o.ProductsPath = "products"
	}
	if o.CategoriesPath == "" {
		o.CategoriesPath = "products/categories"
	}
	return &Client{
		base:           strings.TrimRight(o.BaseURL, "/"),
		productsPath:   strings.TrimLeft(o.ProductsPath, "/"),
		categoriesPath: strings.TrimLeft(o.CategoriesPath, "/"),
		hc:             &http.Client{Timeout: o.Timeout},
		key:            o.APIKey,
		rl:             rate.NewLimiter(rate.Limit(o.RPS), o.RPS),
	}, nil
}

// productsEnvelope is the shape of the products endpoint.
type productsEnvelope struct {
	Products []domain.ExternalProduct `json:"products"`
	Total    int                      `json:"total"`
	Skip     int                      `json:"skip"`
	Limit    int                      `json:"limit"`
}

// ---- Public API ----

// FetchProducts pulls the whole products feed in one request (limit=0).
func (c *Client) FetchProducts(ctx context.Context) ([]domain.ExternalProduct, error) {
	var env productsEnvelope
	if err := c.get(ctx, "products", c.base+"/"+c.productsPath+"?limit=0", &env); err != nil {
		return nil, err
	}
	if env.Products == nil {
		return nil, fmt.Errorf("%w: products: response has no products array", domain.ErrFetch)
	}
	return env.Products, nil
}

func (c *Client) FetchCategories(ctx context.Context) ([]domain.ExternalCategory, error) {
	var out []domain.ExternalCategory
	if err := c.get(ctx, "categories", c.base+"/"+c.categoriesPath, &out); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, fmt.Errorf("%w: categories: response is not an array", domain.ErrFetch)
	}
	return out, nil
}

// ---- Internals ----

var (
	ErrNotFound     = errors.New("catalog: not found")
	ErrUnauthorized = errors.New("catalog: unauthorized")
	ErrForbidden    = errors.New("catalog: forbidden")
)

// get performs a single GET with client-side rate limiting and decodes the
// JSON body into out. There are no retries: a failed fetch fails the run,
// and the next scheduled run tries again. Every error wraps domain.ErrFetch.
func (c *Client) get(ctx context.Context, endpoint, u string, out any) error {
	if err := c.rl.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrFetch, endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", domain.ErrFetch, endpoint, err)
	}
	if c.key != "" {
		req.Header.Set("X-API-Key", c.key)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "nopsync/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal("catalog", endpoint, 0, time.Since(start))
		return fmt.Errorf("%w: %s: %w", domain.ErrFetch, endpoint, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal("catalog", endpoint, resp.StatusCode, time.Since(start))

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%w: %s: decode: %w", domain.ErrFetch, endpoint, err)
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s: %w", domain.ErrFetch, endpoint, ErrNotFound)

	case resp.StatusCode == http.StatusUnauthorized:
		return fmt.Errorf("%w: %s: %w", domain.ErrFetch, endpoint, ErrUnauthorized)

	case resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: %s: %w", domain.ErrFetch, endpoint, ErrForbidden)

	default:
		// read a small error body for diagnostics
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("%w: %s: bad status %d: %s", domain.ErrFetch, endpoint, resp.StatusCode, strings.TrimSpace(string(b)))
	}
}
