package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ecolinkdev/ecolink-back/pkg/config"
	"github.com/ecolinkdev/ecolink-back/pkg/logger"
	"github.com/ecolinkdev/ecolink-back/pkg/metrics"
)

const defaultTimeout = 10 * time.Second

// LatLng is a resolved coordinate pair.
type LatLng struct {
	Latitude  float64
	Longitude float64
}

// Resolver is the capability the registries depend on. Implementations are
// best-effort: absence is an answer, never an error.
type Resolver interface {
	Resolve(ctx context.Context, address string) (LatLng, bool)
}

// Client resolves free-text addresses against a Nominatim-compatible search
// endpoint. Every failure mode is absorbed here: the caller only learns
// whether the address resolved.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	logg       *logger.Logger
	metrics    *metrics.GeocoderMetrics
}

// Option configures optional client behavior.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithMetrics attaches lookup instrumentation.
func WithMetrics(m *metrics.GeocoderMetrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// NewClient builds a geocoder from configuration.
func NewClient(cfg config.GeocoderConfig, logg *logger.Logger, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	client := &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		userAgent:  cfg.UserAgent,
		logg:       logg,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client
}

// Resolve looks up the address and reports the first match. A false result
// means the address could not be resolved for any reason; details are logged
// here and not surfaced.
func (c *Client) Resolve(ctx context.Context, address string) (LatLng, bool) {
	if c == nil || strings.TrimSpace(address) == "" {
		return LatLng{}, false
	}

	start := time.Now()
	coords, err := c.lookup(ctx, address)
	c.metrics.ObserveLookup(time.Since(start), err == nil)

	if err != nil {
		if c.logg != nil {
			lctx := c.logg.WithField(ctx, "address", address)
			c.logg.Warn(lctx, fmt.Sprintf("geocoding failed: %v", err))
		}
		return LatLng{}, false
	}
	return coords, true
}

func (c *Client) lookup(ctx context.Context, address string) (LatLng, error) {
	query := url.Values{}
	query.Set("q", address)
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return LatLng{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LatLng{}, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return LatLng{}, fmt.Errorf("status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return LatLng{}, fmt.Errorf("decode response: %w", err)
	}
	if len(results) == 0 {
		return LatLng{}, fmt.Errorf("no results")
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("parse latitude %q: %w", results[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return LatLng{}, fmt.Errorf("parse longitude %q: %w", results[0].Lon, err)
	}

	return LatLng{Latitude: lat, Longitude: lng}, nil
}
