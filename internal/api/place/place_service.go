package place

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"
	"time"

	"github.com/patrickmn/go-cache"
	"google.golang.org/genai"

	generativeAI "github.com/FACorreiaa/go-travel-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

// fallbackCoordinates centers on Delhi when geocoding fails.
var fallbackCoordinates = []float64{28.6139, 77.2090}

// jsonArrayRe extracts the first JSON array from a model response that may
// be wrapped in prose or code fences.
var jsonArrayRe = regexp.MustCompile(`(?s)\[.*\]`)

const suggestionsPrompt = `For the location %q in India (coordinates: %v), provide 8 popular tourist attractions/places to visit nearby.

Return the response in this exact JSON format:
[
    {"name": "Attraction Name 1", "coords": [lat1, lon1], "description": "Brief attractive description"},
    {"name": "Attraction Name 2", "coords": [lat2, lon2], "description": "Brief attractive description"}
]
with exactly 8 entries.

Make descriptions appealing, 1-2 sentences, under 80 characters each.
Only return the JSON array, no additional text.`

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GetPlaceDetails(ctx context.Context, name string) *types.PlaceDetails
	GetCoordinates(ctx context.Context, name string) []float64
}

// ServiceImpl resolves place details with layered fallbacks: geocoder then
// Delhi coordinates, AI suggestions then the deterministic catalog. It
// never returns an error to its callers.
type ServiceImpl struct {
	logger   *slog.Logger
	aiClient generativeAI.Client
	geocoder Geocoder
	cache    *cache.Cache
}

func NewServiceImpl(aiClient generativeAI.Client, geocoder Geocoder, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
		geocoder: geocoder,
		cache:    cache.New(1*time.Hour, 10*time.Minute),
	}
}

// GetCoordinates geocodes a place name, caching results. A failed lookup
// returns nil so callers can decide on their own fallback.
func (s *ServiceImpl) GetCoordinates(ctx context.Context, name string) []float64 {
	cacheKey := "coords:" + name
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.([]float64)
	}

	coords, err := s.geocoder.GetCoordinates(ctx, name)
	if err != nil {
		s.logger.WarnContext(ctx, "Geocoding failed", slog.String("place", name), slog.Any("error", err))
		return nil
	}
	s.cache.Set(cacheKey, coords, cache.DefaultExpiration)
	return coords
}

// GetPlaceDetails returns coordinates plus exactly eight suggestions for
// the place, substituting deterministic fallbacks for any upstream fault.
func (s *ServiceImpl) GetPlaceDetails(ctx context.Context, name string) *types.PlaceDetails {
	cacheKey := "details:" + name
	if cached, found := s.cache.Get(cacheKey); found {
		return cached.(*types.PlaceDetails)
	}

	coords := s.GetCoordinates(ctx, name)
	if coords == nil {
		s.logger.InfoContext(ctx, "Using fallback coordinates", slog.String("place", name))
		coords = fallbackCoordinates
	}

	suggestions, err := s.suggestionsFromAI(ctx, name, coords)
	if err != nil {
		s.logger.WarnContext(ctx, "AI suggestions unavailable, using fallback catalog",
			slog.String("place", name), slog.Any("error", err))
		suggestions = fallbackSuggestions(name, coords)
	}

	details := &types.PlaceDetails{
		Coordinates: coords,
		Suggestions: suggestions,
	}
	s.cache.Set(cacheKey, details, cache.DefaultExpiration)
	return details
}

func (s *ServiceImpl) suggestionsFromAI(ctx context.Context, name string, coords []float64) ([]types.Suggestion, error) {
	prompt := fmt.Sprintf(suggestionsPrompt, name, coords)
	response, err := s.aiClient.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		return nil, err
	}

	jsonStr := jsonArrayRe.FindString(response)
	if jsonStr == "" {
		return nil, fmt.Errorf("no JSON array found in model response")
	}

	var suggestions []types.Suggestion
	if err := json.Unmarshal([]byte(jsonStr), &suggestions); err != nil {
		return nil, fmt.Errorf("failed to parse suggestions JSON: %w", err)
	}
	if len(suggestions) == 0 {
		return nil, fmt.Errorf("model returned an empty suggestion list")
	}
	return suggestions, nil
}

// fallbackSuggestions returns the deterministic eight-entry catalog offset
// around the resolved coordinates.
func fallbackSuggestions(place string, coords []float64) []types.Suggestion {
	lat, lon := coords[0], coords[1]
	return []types.Suggestion{
		{Name: fmt.Sprintf("Red Fort, %s", place), Coords: []float64{lat + 0.01, lon + 0.01}, Description: "Historic Mughal fortress with stunning red walls"},
		{Name: fmt.Sprintf("Local Market, %s", place), Coords: []float64{lat - 0.01, lon + 0.01}, Description: "Vibrant local market with authentic crafts"},
		{Name: fmt.Sprintf("Temple, %s", place), Coords: []float64{lat + 0.01, lon - 0.01}, Description: "Sacred temple with beautiful architecture"},
		{Name: fmt.Sprintf("Cultural Center, %s", place), Coords: []float64{lat - 0.01, lon - 0.01}, Description: "Rich cultural heritage and local arts"},
		{Name: fmt.Sprintf("Gardens, %s", place), Coords: []float64{lat, lon + 0.02}, Description: "Peaceful gardens perfect for relaxation"},
		{Name: fmt.Sprintf("Museum, %s", place), Coords: []float64{lat + 0.02, lon}, Description: "Local history and artifacts museum"},
		{Name: fmt.Sprintf("Viewpoint, %s", place), Coords: []float64{lat - 0.02, lon}, Description: "Scenic viewpoint with panoramic views"},
		{Name: fmt.Sprintf("Food Street, %s", place), Coords: []float64{lat, lon - 0.02}, Description: "Famous street food and local delicacies"},
	}
}
