package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/chat"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/itinerary"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/place"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

// Config contains dependencies needed for the router setup
type Config struct {
	PlaceHandler     *place.Handler
	ChatHandler      *chat.Handler
	ItineraryHandler *itinerary.Handler

	// Health payload fields
	NodeServerURL string
	Environment   string

	// Allowed CORS origin for the frontend; localhost origins are always
	// allowed for development.
	FrontendURL string
}

// SetupRouter initializes and configures the main application router.
// Server-wide middleware (like logger, requestID, recoverer) are expected
// to be applied *before* mounting this router in main.go.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	origins := []string{"http://localhost:3000", "http://localhost:5173"}
	if cfg.FrontendURL != "" {
		origins = append(origins, cfg.FrontendURL)
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Save-Warning"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any major browsers
	}))

	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		api.WriteJSONResponse(w, req, http.StatusOK, types.HealthResponse{
			Status:      "healthy",
			NodeServer:  cfg.NodeServerURL,
			Environment: cfg.Environment,
		})
	})

	r.Get("/place/{name}", cfg.PlaceHandler.GetPlaceDetails)
	r.Post("/chat", cfg.ChatHandler.Chat)
	r.Post("/itinerary", cfg.ItineraryHandler.GenerateItinerary)
	r.Post("/itinerary/download", cfg.ItineraryHandler.DownloadItinerary)

	return r
}
