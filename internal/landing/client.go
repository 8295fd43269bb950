package landing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"fabricpro.io/fabric-web/internal/config"
)

// Per-fetch deadline for every content-API call. A fetch that misses it is
// treated as a soft failure for the remainder of the request.
const fetchTimeout = 10 * time.Second

const (
	seoPath      = "seo/landing-page"
	productPath  = "product"
	locationPath = "locations"
)

// Client provides read-only access to the remote content API. When baseURL is
// empty every fetch reports a soft failure and callers degrade to empty data.
type Client struct {
	baseURL string
	headers http.Header
	http    *http.Client
	log     *zap.Logger
}

// NewClient constructs a gateway from the resolved configuration.
func NewClient(cfg config.Config, log *zap.Logger) *Client {
	headers := http.Header{}
	if cfg.APIKey != "" {
		headers.Set(cfg.APIKeyHeader, cfg.APIKey)
	}
	if cfg.AdminEmail != "" {
		headers.Set(cfg.AdminEmailHeader, cfg.AdminEmail)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		baseURL: strings.TrimRight(strings.TrimSpace(cfg.APIBaseURL), "/"),
		headers: headers,
		http:    &http.Client{Timeout: fetchTimeout},
		log:     log,
	}
}

// Bundle holds the three collections a page render consumes. Sources that
// failed to fetch are present as empty slices.
type Bundle struct {
	Seo       []SeoRecord
	Products  []Product
	Locations []Location
}

// FetchAll issues the three collection fetches concurrently and waits for all
// of them to settle. A failed source degrades to empty; FetchAll never fails.
func (c *Client) FetchAll(ctx context.Context) Bundle {
	var (
		wg sync.WaitGroup
		b  Bundle
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		seo, err := c.SeoRecords(ctx)
		if err != nil {
			c.log.Warn("seo fetch failed", zap.Error(err))
			return
		}
		b.Seo = seo
	}()
	go func() {
		defer wg.Done()
		products, err := c.Products(ctx)
		if err != nil {
			c.log.Warn("product fetch failed", zap.Error(err))
			return
		}
		b.Products = products
	}()
	go func() {
		defer wg.Done()
		locations, err := c.Locations(ctx)
		if err != nil {
			c.log.Warn("locations fetch failed", zap.Error(err))
			return
		}
		b.Locations = locations
	}()
	wg.Wait()

	if b.Seo == nil {
		b.Seo = []SeoRecord{}
	}
	if b.Products == nil {
		b.Products = []Product{}
	}
	if b.Locations == nil {
		b.Locations = []Location{}
	}
	return b
}

// SeoRecords fetches the full SEO-record collection.
func (c *Client) SeoRecords(ctx context.Context) ([]SeoRecord, error) {
	var payload struct {
		Success bool        `json:"success"`
		Data    []SeoRecord `json:"data"`
	}
	if err := c.getJSON(ctx, seoPath, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("landing: seo endpoint returned success=false")
	}
	return payload.Data, nil
}

// Products fetches the product collection.
func (c *Client) Products(ctx context.Context) ([]Product, error) {
	var payload struct {
		Success bool      `json:"success"`
		Data    []Product `json:"data"`
	}
	if err := c.getJSON(ctx, productPath, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("landing: product endpoint returned success=false")
	}
	return payload.Data, nil
}

// Locations fetches the location collection. The API nests locations one
// level deeper than the other two sources.
func (c *Client) Locations(ctx context.Context) ([]Location, error) {
	var payload struct {
		Success bool `json:"success"`
		Data    struct {
			Locations []Location `json:"locations"`
		} `json:"data"`
	}
	if err := c.getJSON(ctx, locationPath, &payload); err != nil {
		return nil, err
	}
	if !payload.Success {
		return nil, fmt.Errorf("landing: locations endpoint returned success=false")
	}
	return payload.Data.Locations, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	if c == nil || c.baseURL == "" {
		return fmt.Errorf("landing: no base URL configured")
	}
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	for k, vals := range c.headers {
		for _, val := range vals {
			req.Header.Set(k, val)
		}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 400 {
		return fmt.Errorf("landing: %s status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(v)
}
