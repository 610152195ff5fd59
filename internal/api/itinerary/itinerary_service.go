package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-travel-itinerary/app/observability/metrics"
	generativeAI "github.com/FACorreiaa/go-travel-itinerary/internal/api/generative_ai"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api/place"
	"github.com/FACorreiaa/go-travel-itinerary/internal/render"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

const itineraryPromptTail = "Create a detailed travel itinerary for: %s. Suggest the best order, time to spend at each, and what to do at each place. Include tips and local insights."

// DocumentRenderer is the rendering chain; it always produces bytes.
type DocumentRenderer interface {
	Render(ctx context.Context, text string, places []types.Place, opts types.TripOptions, themeID string) []byte
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GenerateText(ctx context.Context, req types.ItineraryRequest) string
	ResolvePlaces(ctx context.Context, names []string) []types.Place
	RenderDocument(ctx context.Context, text string, places []types.Place, opts types.TripOptions, themeID string) types.RenderedDocument
	SaveAdventure(ctx context.Context, authHeader string, payload types.AdventurePayload) error
}

// ServiceImpl generates itinerary text, resolves places, renders the
// document, and forwards saved adventures to the companion Node server.
type ServiceImpl struct {
	logger       *slog.Logger
	aiClient     generativeAI.Client
	placeService place.Service
	renderer     DocumentRenderer
	metrics      *metrics.AppMetrics
	nodeURL      string
	httpClient   *http.Client
}

func NewServiceImpl(aiClient generativeAI.Client, placeService place.Service, renderer DocumentRenderer, m *metrics.AppMetrics, nodeURL string, saveTimeout time.Duration, logger *slog.Logger) *ServiceImpl {
	if saveTimeout <= 0 {
		saveTimeout = 10 * time.Second
	}
	return &ServiceImpl{
		logger:       logger,
		aiClient:     aiClient,
		placeService: placeService,
		renderer:     renderer,
		metrics:      m,
		nodeURL:      nodeURL,
		httpClient:   &http.Client{Timeout: saveTimeout},
	}
}

// GenerateText asks the model for an itinerary. Faults are folded into the
// returned text, matching the chat endpoint's degrade-to-string behavior.
func (s *ServiceImpl) GenerateText(ctx context.Context, req types.ItineraryRequest) string {
	var personalization strings.Builder
	if days := render.CoerceDays(req.Days); req.Days != nil {
		fmt.Fprintf(&personalization, "For %d days. ", days)
	}
	if req.Budget != nil {
		fmt.Fprintf(&personalization, "Budget: ₹%v. ", req.Budget)
	}
	if req.People != nil {
		fmt.Fprintf(&personalization, "For %v people. ", req.People)
	}
	if req.UserLocation != "" {
		fmt.Fprintf(&personalization, "Start from user's current location: %s. ", req.UserLocation)
	}

	prompt := personalization.String() + fmt.Sprintf(itineraryPromptTail, strings.Join(req.Places, ", "))
	text, err := s.aiClient.GenerateContent(ctx, prompt, &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	})
	if err != nil {
		s.logger.ErrorContext(ctx, "AI itinerary generation failed", slog.Any("error", err))
		s.recordFault(ctx, "ai")
		return fmt.Sprintf("Error: %v", err)
	}
	return strings.TrimSpace(text)
}

// ResolvePlaces geocodes each place name, keeping only resolvable places.
// Geocoding faults skip the place rather than failing the request.
func (s *ServiceImpl) ResolvePlaces(ctx context.Context, names []string) []types.Place {
	var places []types.Place
	for _, name := range names {
		coords := s.placeService.GetCoordinates(ctx, name)
		if coords == nil {
			s.recordFault(ctx, "geocoder")
			continue
		}
		places = append(places, types.Place{Name: name, Coords: coords})
	}
	return places
}

// RenderDocument runs the fallback rendering chain and wraps the result
// with its download metadata. It cannot fail.
func (s *ServiceImpl) RenderDocument(ctx context.Context, text string, places []types.Place, opts types.TripOptions, themeID string) types.RenderedDocument {
	data := s.renderer.Render(ctx, text, places, opts, themeID)
	return types.RenderedDocument{
		Data:     data,
		Filename: render.Filename(themeID),
		MIMEType: render.MIMETypePDF,
	}
}

// SaveAdventure forwards the generated itinerary to the companion Node
// server using the caller's Authorization header. The caller decides
// whether a failure is logged or surfaced.
func (s *ServiceImpl) SaveAdventure(ctx context.Context, authHeader string, payload types.AdventurePayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling adventure payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.nodeURL+"/api/adventures", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building adventure request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader)

	if s.metrics != nil {
		s.metrics.AdventureForwardsTotal.Add(ctx, 1)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.recordFault(ctx, "node")
		return fmt.Errorf("forwarding adventure: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		s.recordFault(ctx, "node")
		return fmt.Errorf("adventure save returned status %d", resp.StatusCode)
	}
	s.logger.InfoContext(ctx, "Adventure saved successfully")
	return nil
}

func (s *ServiceImpl) recordFault(ctx context.Context, upstream string) {
	if s.metrics == nil {
		return
	}
	s.metrics.UpstreamFaultsTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("upstream", upstream)))
}
