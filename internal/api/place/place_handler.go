package place

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-travel-itinerary/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// GetPlaceDetails handles GET /place/{name} - coordinates plus suggestions
// for a destination. Upstream faults are substituted inside the service, so
// this endpoint always answers 200.
func (h *Handler) GetPlaceDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlaceHandler").Start(r.Context(), "GetPlaceDetails")
	defer span.End()

	l := h.logger.With(slog.String("method", "GetPlaceDetails"))

	name := chi.URLParam(r, "name")
	if name == "" {
		span.SetStatus(codes.Error, "Missing place name")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Place name is required")
		return
	}
	span.SetAttributes(attribute.String("app.place.name", name))

	details := h.service.GetPlaceDetails(ctx, name)

	l.InfoContext(ctx, "Returning place details",
		slog.String("place", name),
		slog.Int("suggestions", len(details.Suggestions)),
	)
	span.SetStatus(codes.Ok, "Place details returned")
	api.WriteJSONResponse(w, r, http.StatusOK, details)
}
