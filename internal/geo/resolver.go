package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"grooming-dashboard-backend/config"
)

// ErrNotFound reports that a zip code resolved to no known locality.
var ErrNotFound = errors.New("geo: locality not found")

// Resolver maps a zip code to its canonical locality name.
type Resolver interface {
	Locality(ctx context.Context, zipCode string) (string, error)
}

// Client resolves localities via a Zippopotam-style HTTP API
// (GET {base}/{country}/{zip}). Results are cached; zip-to-city mappings
// effectively never change.
type Client struct {
	httpClient *http.Client
	baseURL    string
	country    string
	store      *cache.Cache
}

// NewClient creates a Resolver from configuration.
func NewClient(cfg *config.GeoConfig) *Client {
	ttl := time.Duration(cfg.CacheTTLMinutes) * time.Minute
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		country:    cfg.Country,
		store:      cache.New(ttl, 2*ttl),
	}
}

type zipResponse struct {
	Places []struct {
		PlaceName string `json:"place name"`
	} `json:"places"`
}

// Locality returns the locality name for a zip code, or ErrNotFound.
func (c *Client) Locality(ctx context.Context, zipCode string) (string, error) {
	zip := strings.TrimSpace(zipCode)
	if zip == "" {
		return "", ErrNotFound
	}

	if v, found := c.store.Get(zip); found {
		name := v.(string)
		if name == "" {
			return "", ErrNotFound
		}
		return name, nil
	}

	url := fmt.Sprintf("%s/%s/%s", c.baseURL, c.country, zip)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("geo: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("geo: lookup %q: %w", zip, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		// Negative results are cached as well to spare the upstream.
		c.store.SetDefault(zip, "")
		return "", ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("geo: lookup %q returned status %d", zip, resp.StatusCode)
	}

	var decoded zipResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("geo: decode response for %q: %w", zip, err)
	}

	if len(decoded.Places) == 0 || strings.TrimSpace(decoded.Places[0].PlaceName) == "" {
		c.store.SetDefault(zip, "")
		return "", ErrNotFound
	}

	name := strings.TrimSpace(decoded.Places[0].PlaceName)
	c.store.SetDefault(zip, name)
	return name, nil
}
