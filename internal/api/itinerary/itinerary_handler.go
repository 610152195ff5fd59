package itinerary

import (
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary/internal/render"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

type Handler struct {
	logger  *slog.Logger
	service Service
	metrics *metrics.AppMetrics

	// saveWarnings surfaces failed adventure saves to the caller via the
	// X-Save-Warning header instead of only logging them.
	saveWarnings bool
}

func NewHandler(service Service, m *metrics.AppMetrics, saveWarnings bool, logger *slog.Logger) *Handler {
	return &Handler{
		logger:       logger,
		service:      service,
		metrics:      m,
		saveWarnings: saveWarnings,
	}
}

// GenerateItinerary handles POST /itinerary - generates itinerary text,
// forwards a summary to the companion server, and returns either the text
// or a rendered document download. The caller always receives a document,
// never a rendering error.
func (h *Handler) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateItinerary")
	defer span.End()

	l := h.logger.With(slog.String("method", "GenerateItinerary"))

	var req types.ItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	// Only PDF output is supported; other formats are coerced, not rejected.
	if req.Format != "pdf" {
		req.Format = "pdf"
	}
	theme := render.ThemeByID(req.Template)
	span.SetAttributes(
		attribute.Int("app.itinerary.places", len(req.Places)),
		attribute.String("app.itinerary.theme", theme.ID),
	)

	text := h.service.GenerateText(ctx, req)
	places := h.service.ResolvePlaces(ctx, req.Places)

	if h.metrics != nil {
		h.metrics.ItineraryRequestsTotal.Add(ctx, 1)
	}

	// Best-effort save to the companion server; faults never fail the request.
	if authHeader := r.Header.Get("Authorization"); authHeader != "" && len(req.Places) > 0 && text != "" {
		payload := types.AdventurePayload{
			Destination: req.Places[0],
			Places:      places,
			Itinerary:   types.TextPayload{Text: text},
			Options:     req.Options(),
		}
		if err := h.service.SaveAdventure(ctx, authHeader, payload); err != nil {
			l.WarnContext(ctx, "Failed to save adventure", slog.Any("error", err))
			if h.saveWarnings {
				w.Header().Set("X-Save-Warning", "adventure save failed")
			}
		}
	}

	if r.URL.Query().Get("preview") == "1" || req.ReturnText {
		span.SetStatus(codes.Ok, "Itinerary text returned")
		api.WriteJSONResponse(w, r, http.StatusOK, types.ChatResponse{Reply: text})
		return
	}

	doc := h.service.RenderDocument(ctx, text, places, req.Options(), theme.ID)
	l.InfoContext(ctx, "Itinerary document generated",
		slog.String("filename", doc.Filename),
		slog.Int("bytes", len(doc.Data)),
	)
	span.SetStatus(codes.Ok, "Itinerary document returned")
	api.WriteDownloadResponse(w, r, doc.Data, doc.Filename, doc.MIMEType)
}

// DownloadItinerary handles POST /itinerary/download - renders an already
// generated itinerary text into a document. The itinerary text is the only
// validated field in the whole API.
func (h *Handler) DownloadItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "DownloadItinerary")
	defer span.End()

	l := h.logger.With(slog.String("method", "DownloadItinerary"))

	var req types.DownloadRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	if req.ItineraryText == "" {
		span.SetStatus(codes.Error, "Missing itinerary text")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Itinerary text is required")
		return
	}

	if req.Destination == "" {
		req.Destination = "destination"
	}
	if req.Days == nil {
		req.Days = 3
	}
	if req.Budget == nil {
		req.Budget = 10000
	}
	if req.People == nil {
		req.People = 2
	}

	theme := render.ThemeByID(req.Template)
	opts := types.TripOptions{Days: req.Days, Budget: req.Budget, People: req.People}

	doc := h.service.RenderDocument(ctx, req.ItineraryText, req.Places, opts, theme.ID)
	doc.Filename = render.DownloadFilename(req.Destination, theme.ID)

	l.InfoContext(ctx, "Itinerary re-download generated",
		slog.String("filename", doc.Filename),
		slog.Int("bytes", len(doc.Data)),
	)
	span.SetStatus(codes.Ok, "Itinerary document returned")
	api.WriteDownloadResponse(w, r, doc.Data, doc.Filename, doc.MIMEType)
}
