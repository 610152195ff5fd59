package place

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Geocoder resolves a place name to a [lat, lon] pair.
type Geocoder interface {
	GetCoordinates(ctx context.Context, place string) ([]float64, error)
}

// NominatimGeocoder implements Geocoder against the OpenStreetMap
// Nominatim API. Nominatim requires a User-Agent on every request.
type NominatimGeocoder struct {
	logger     *slog.Logger
	httpClient *http.Client
	baseURL    string
	userAgent  string
}

func NewNominatimGeocoder(logger *slog.Logger, baseURL, userAgent string, timeout time.Duration) *NominatimGeocoder {
	if baseURL == "" {
		baseURL = "https://nominatim.openstreetmap.org/search"
	}
	if userAgent == "" {
		userAgent = "TravelApp/1.0"
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &NominatimGeocoder{
		logger:     logger,
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
		userAgent:  userAgent,
	}
}

func (g *NominatimGeocoder) GetCoordinates(ctx context.Context, place string) ([]float64, error) {
	params := url.Values{}
	params.Set("q", place+", India")
	params.Set("format", "json")
	params.Set("limit", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building geocode request: %w", err)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocode request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, fmt.Errorf("no coordinates found for %q", place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing latitude: %w", err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing longitude: %w", err)
	}

	g.logger.DebugContext(ctx, "Geocoded place",
		slog.String("place", place),
		slog.Float64("lat", lat),
		slog.Float64("lon", lon),
	)
	return []float64{lat, lon}, nil
}
