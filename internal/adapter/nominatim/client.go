// Package nominatim implements domain.Geocoder against the OpenStreetMap
// Nominatim search endpoint.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/city-distance/internal/domain"
	"github.com/couchcryptid/city-distance/internal/observability"
)

// Client issues free-text search queries scoped to Lithuania. Nominatim's
// usage policy requires an identifying User-Agent, which is mandatory here.
type Client struct {
	userAgent  string
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a Nominatim search client.
func NewClient(baseURL, userAgent string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Search resolves a place name to coordinates. found is false when Nominatim
// returns an empty result set; any transport, status, or decode failure is an
// error.
func (c *Client) Search(ctx context.Context, name string) (domain.Coordinate, bool, error) {
	params := url.Values{
		"q":            {fmt.Sprintf("%s, Lithuania", name)},
		"format":       {"json"},
		"limit":        {"1"},
		"countrycodes": {"lt"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Coordinate{}, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.GeocodeAPIDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		c.logger.Debug("geocode request failed", "place", name, "error", err)
		return domain.Coordinate{}, false, fmt.Errorf("geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.Coordinate{}, false, fmt.Errorf("nominatim API error: status %d: %s", resp.StatusCode, body)
	}

	var results []result
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.Coordinate{}, false, fmt.Errorf("decode response: %w", err)
	}

	if len(results) == 0 {
		c.metrics.GeocodeRequests.WithLabelValues("empty").Inc()
		c.logger.Debug("no results for place", "place", name)
		return domain.Coordinate{}, false, nil
	}

	coord, err := results[0].coordinate()
	if err != nil {
		c.metrics.GeocodeRequests.WithLabelValues("error").Inc()
		return domain.Coordinate{}, false, err
	}

	c.metrics.GeocodeRequests.WithLabelValues("success").Inc()
	return coord, true, nil
}

// Nominatim API response types. Coordinates arrive string-encoded.

type result struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (r result) coordinate() (domain.Coordinate, error) {
	lat, err := strconv.ParseFloat(r.Lat, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse lat %q: %w", r.Lat, err)
	}
	lon, err := strconv.ParseFloat(r.Lon, 64)
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("parse lon %q: %w", r.Lon, err)
	}
	return domain.Coordinate{Lat: lat, Lon: lon}, nil
}
