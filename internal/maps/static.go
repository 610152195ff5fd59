package maps

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-travel-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

const (
	mapWidth  = 600
	mapHeight = 350
	mapZoom   = 13
)

// Client fetches a static route map from one of several tile providers,
// best effort. It never returns an error: any fault yields absence.
type Client struct {
	logger      *slog.Logger
	httpClient  *http.Client
	metrics     *metrics.AppMetrics
	mapboxToken string

	// providerOverride replaces the default provider list, for tests.
	providerOverride []string
}

func NewClient(logger *slog.Logger, m *metrics.AppMetrics, timeout time.Duration, mapboxToken string) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		logger:      logger,
		httpClient:  &http.Client{Timeout: timeout},
		metrics:     m,
		mapboxToken: mapboxToken,
	}
}

// FetchStaticMap returns raw image bytes for the route, or nil when no
// place carries coordinates or every provider fails. Providers are tried
// in order; the first success wins and the rest are skipped.
func (c *Client) FetchStaticMap(ctx context.Context, places []types.Place) []byte {
	markers := buildMarkers(places)
	if len(markers) == 0 {
		return nil
	}

	first := places[firstWithCoords(places)]
	center := fmt.Sprintf("%v,%v", first.Coords[0], first.Coords[1])
	urls := c.providerOverride
	if urls == nil {
		urls = c.providerURLs(center, strings.Join(markers, "&"))
	}
	for _, url := range urls {
		data, err := c.fetch(ctx, url)
		if err != nil {
			c.recordAttempt(ctx, "fault")
			c.logger.DebugContext(ctx, "Map provider failed", slog.Any("error", err))
			continue
		}
		c.recordAttempt(ctx, "ok")
		return data
	}

	c.logger.InfoContext(ctx, "All map providers failed, continuing without map")
	return nil
}

// buildMarkers produces one marker descriptor per place with coordinates.
// The first place is marked red, the rest blue; places without coordinates
// are skipped.
func buildMarkers(places []types.Place) []string {
	var markers []string
	for i, place := range places {
		if !place.HasCoords() {
			continue
		}
		color := "blue"
		if len(markers) == 0 {
			color = "red"
		}
		markers = append(markers, fmt.Sprintf("markers=%v,%v,%s%d", place.Coords[0], place.Coords[1], color, i+1))
	}
	return markers
}

func firstWithCoords(places []types.Place) int {
	for i, p := range places {
		if p.HasCoords() {
			return i
		}
	}
	return 0
}

func (c *Client) providerURLs(center, markers string) []string {
	return []string{
		fmt.Sprintf("https://api.mapbox.com/styles/v1/mapbox/streets-v11/static/%s,%d/%dx%d?access_token=%s",
			center, mapZoom, mapWidth, mapHeight, c.mapboxToken),
		fmt.Sprintf("https://maps.googleapis.com/maps/api/staticmap?center=%s&zoom=%d&size=%dx%d&%s",
			center, mapZoom, mapWidth, mapHeight, markers),
		fmt.Sprintf("https://staticmap.openstreetmap.de/staticmap.php?center=%s&zoom=%d&size=%dx%d&%s",
			center, mapZoom, mapWidth, mapHeight, markers),
	}
}

func (c *Client) fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("provider returned empty body")
	}
	return data, nil
}

func (c *Client) recordAttempt(ctx context.Context, outcome string) {
	if c.metrics == nil {
		return
	}
	c.metrics.MapProviderAttemptTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
}
