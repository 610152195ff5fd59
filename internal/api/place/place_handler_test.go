package place

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

type stubPlaceService struct {
	details *types.PlaceDetails
}

func (s *stubPlaceService) GetPlaceDetails(_ context.Context, _ string) *types.PlaceDetails {
	return s.details
}

func (s *stubPlaceService) GetCoordinates(_ context.Context, _ string) []float64 {
	return s.details.Coordinates
}

func TestGetPlaceDetailsHandler(t *testing.T) {
	svc := &stubPlaceService{details: &types.PlaceDetails{
		Coordinates: []float64{26.9124, 75.7873},
		Suggestions: []types.Suggestion{
			{Name: "Hawa Mahal", Coords: []float64{26.9239, 75.8267}, Description: "Palace of winds"},
		},
	}}
	handler := NewHandler(svc, testLogger())

	r := chi.NewRouter()
	r.Get("/place/{name}", handler.GetPlaceDetails)

	req := httptest.NewRequest(http.MethodGet, "/place/Jaipur", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var details types.PlaceDetails
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &details))
	assert.Equal(t, []float64{26.9124, 75.7873}, details.Coordinates)
	require.Len(t, details.Suggestions, 1)
	assert.Equal(t, "Hawa Mahal", details.Suggestions[0].Name)
}
