package main

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/FACorreiaa/go-travel-itinerary/internal/api/chat"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/itinerary"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/place"
	"github.com/FACorreiaa/go-travel-itinerary/internal/render"
	"github.com/FACorreiaa/go-travel-itinerary/internal/router"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

const benchmarkItinerary = `# Day 1: Arrival in Jaipur
Check in and head straight to the **Amber Fort** before the crowds.
- Amber Fort elephant courtyard
- Panna Meena ka Kund stepwell
- Dinner at *Chokhi Dhani* (budget around $15 & tip)

# Day 2: Old City
Walk the pink lanes from **Hawa Mahal** to the City Palace.
- City Palace museum
- Jantar Mantar observatory
- Bapu Bazaar for textiles`

// setupBenchmarkRouter wires the HTTP surface with scripted upstreams so
// benchmarks measure the service, not the network.
func setupBenchmarkRouter(b *testing.B) http.Handler {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ai := &scriptedAI{text: benchmarkItinerary}

	geocoderSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"lat": "26.9124", "lon": "75.7873"}]`))
	}))
	b.Cleanup(geocoderSrv.Close)

	geocoder := place.NewNominatimGeocoder(logger, geocoderSrv.URL, "TravelApp/1.0 (bench)", time.Second)
	placeService := place.NewServiceImpl(ai, geocoder, logger)

	renderer := render.NewRenderer(logger, nil, nil, "/nonexistent/pdflatex-bench-binary", time.Second)
	itineraryService := itinerary.NewServiceImpl(ai, placeService, renderer, nil, "http://127.0.0.1:1", time.Second, logger)

	return router.SetupRouter(&router.Config{
		PlaceHandler:     place.NewHandler(placeService, logger),
		ChatHandler:      chat.NewHandler(chat.NewServiceImpl(ai, logger), logger),
		ItineraryHandler: itinerary.NewHandler(itineraryService, nil, false, logger),
		NodeServerURL:    "http://127.0.0.1:1",
		Environment:      "bench",
	})
}

func BenchmarkMarkdownToLaTeX(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = render.MarkdownToLaTeX(benchmarkItinerary)
	}
}

func BenchmarkLibraryRender(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer := render.NewRenderer(logger, nil, nil, "/nonexistent/pdflatex-bench-binary", time.Second)
	places := []types.Place{{Name: "Jaipur", Coords: []float64{26.9124, 75.7873}}}
	opts := types.TripOptions{Days: 2, Budget: 15000, People: 2}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		data := renderer.Render(context.Background(), benchmarkItinerary, places, opts, "vintage")
		if len(data) == 0 {
			b.Fatal("empty render output")
		}
	}
}

func BenchmarkItineraryDownloadEndpoint(b *testing.B) {
	handler := setupBenchmarkRouter(b)
	body := `{"itineraryText": "Day 1: Amber Fort", "destination": "Jaipur", "template": "modern"}`

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/itinerary/download", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}

func BenchmarkPlaceDetailsEndpoint(b *testing.B) {
	handler := setupBenchmarkRouter(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodGet, "/place/Jaipur", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			b.Fatalf("unexpected status %d", rec.Code)
		}
	}
}
