package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/cultistcircle/circlebot/internal/models"
)

// DefaultURL is the price worker endpoint serving the full item list.
const DefaultURL = "https://my-first-worker.cultistcircle.workers.dev/?items=true"

// DefaultBossURL is the boss spawn change feed endpoint.
const DefaultBossURL = "https://bossdata.cultistcircle.workers.dev/changes"

const (
	cacheKey     = "catalog:items"
	DefaultTTL   = 10 * time.Minute
	fetchTimeout = 15 * time.Second
)

// Client fetches the item catalog, serving from the injected cache when a
// fresh snapshot exists.
type Client struct {
	url     string
	bossURL string
	ttl     time.Duration
	cache   Cache
	http    *http.Client
	log     *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithURL overrides the price worker endpoint.
func WithURL(url string) Option {
	return func(c *Client) { c.url = url }
}

// WithBossURL overrides the boss change feed endpoint.
func WithBossURL(url string) Option {
	return func(c *Client) { c.bossURL = url }
}

// WithTTL overrides how long a catalog snapshot is served from cache.
func WithTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// WithCache swaps the cache implementation.
func WithCache(cache Cache) Option {
	return func(c *Client) { c.cache = cache }
}

// WithLogger sets the structured logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) { c.log = log }
}

// NewClient builds a catalog client with a memory cache and default TTL.
func NewClient(opts ...Option) *Client {
	c := &Client{
		url:     DefaultURL,
		bossURL: DefaultBossURL,
		ttl:     DefaultTTL,
		http:    &http.Client{Timeout: fetchTimeout},
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache == nil {
		c.cache = NewMemoryCache(c.ttl)
	}
	return c
}

// Items returns the current catalog, fetching from the worker on a cache
// miss. A structurally empty response maps to ErrMissingCatalog so callers
// see the same failure taxonomy as the selector.
func (c *Client) Items(ctx context.Context) (*models.Catalog, error) {
	if raw, ok := c.cache.Get(ctx, cacheKey); ok {
		var catalog models.Catalog
		if err := json.Unmarshal(raw, &catalog); err == nil && catalog.Items != nil {
			return &catalog, nil
		}
		c.log.Warn("discarding unreadable cached catalog")
	}

	raw, err := c.fetch(ctx, c.url)
	if err != nil {
		return nil, err
	}

	var catalog models.Catalog
	if err := json.Unmarshal(raw, &catalog); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	if catalog.Items == nil {
		return nil, models.ErrMissingCatalog
	}
	catalog.FetchedAt = time.Now().UTC()

	if snapshot, err := json.Marshal(&catalog); err == nil {
		c.cache.Set(ctx, cacheKey, snapshot, c.ttl)
	}
	c.log.Info("fetched catalog", "items", len(catalog.Items))
	return &catalog, nil
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching %s: HTTP %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response: %w", err)
	}
	return body, nil
}
