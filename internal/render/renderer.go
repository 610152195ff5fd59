package render

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/FACorreiaa/go-travel-itinerary/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-itinerary/internal/types"
)

// MIMETypePDF is reported for every rendered document regardless of which
// tier produced it.
const MIMETypePDF = "application/pdf"

// MapFetcher retrieves a static route-map image, or nil when unavailable.
type MapFetcher interface {
	FetchStaticMap(ctx context.Context, places []types.Place) []byte
}

// Renderer runs the three-tier document rendering chain:
// external engine, in-process library, minimal byte stream. Render never
// returns an error; each tier failure advances to the next and the last
// tier cannot fail.
type Renderer struct {
	logger        *slog.Logger
	maps          MapFetcher
	metrics       *metrics.AppMetrics
	engineBin     string
	engineTimeout time.Duration
}

func NewRenderer(logger *slog.Logger, maps MapFetcher, m *metrics.AppMetrics, engineBin string, engineTimeout time.Duration) *Renderer {
	if engineBin == "" {
		engineBin = "pdflatex"
	}
	if engineTimeout <= 0 {
		engineTimeout = 30 * time.Second
	}
	return &Renderer{
		logger:        logger,
		maps:          maps,
		metrics:       m,
		engineBin:     engineBin,
		engineTimeout: engineTimeout,
	}
}

// Render produces a styled document for the itinerary text. Callers cannot
// tell which tier produced the result.
func (r *Renderer) Render(ctx context.Context, text string, places []types.Place, opts types.TripOptions, themeID string) []byte {
	theme := ThemeByID(themeID)
	now := time.Now()
	meta := BuildMetadata(places, opts, now)
	l := r.logger.With(slog.String("theme", theme.ID), slog.String("destination", meta.Destination))

	var mapImage []byte
	if r.maps != nil && len(places) > 0 {
		mapImage = r.maps.FetchStaticMap(ctx, places)
	}

	data, err := r.tryEngine(ctx, text, meta, theme, mapImage, now)
	if err == nil {
		r.recordTier(ctx, "engine", time.Since(now))
		return data
	}
	l.WarnContext(ctx, "Engine tier failed, falling back to library renderer", slog.Any("error", err))

	data, err = renderWithLibrary(text, theme, meta, now)
	if err == nil {
		r.recordTier(ctx, "library", time.Since(now))
		return data
	}
	l.WarnContext(ctx, "Library tier failed, falling back to minimal renderer", slog.Any("error", err))

	r.recordTier(ctx, "minimal", time.Since(now))
	return renderMinimal(text, theme.ID, now)
}

func (r *Renderer) tryEngine(ctx context.Context, text string, meta Metadata, theme Theme, mapImage []byte, now time.Time) ([]byte, error) {
	content := MarkdownToLaTeX(text)
	docSource, err := BuildLaTeXDocument(meta, theme, content, len(mapImage) > 0, now)
	if err != nil {
		return nil, err
	}
	return r.renderWithEngine(ctx, docSource, mapImage)
}

func (r *Renderer) recordTier(ctx context.Context, tier string, elapsed time.Duration) {
	if r.metrics == nil {
		return
	}
	r.metrics.RenderTierTotal.Add(ctx, 1, metric.WithAttributes(attribute.String("tier", tier)))
	r.metrics.RenderDurationSeconds.Record(ctx, elapsed.Seconds(), metric.WithAttributes(attribute.String("tier", tier)))
}

// Filename returns the download name for a generated itinerary.
func Filename(themeID string) string {
	return fmt.Sprintf("itinerary_%s.pdf", ThemeByID(themeID).ID)
}

// DownloadFilename prefixes the destination for re-downloads of an
// existing itinerary.
func DownloadFilename(destination, themeID string) string {
	if destination == "" {
		destination = "destination"
	}
	return fmt.Sprintf("%s_itinerary_%s.pdf", destination, ThemeByID(themeID).ID)
}
