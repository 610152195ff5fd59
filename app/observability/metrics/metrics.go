package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
// Make fields public so they can be accessed from other packages.
type AppMetrics struct {
	ItineraryRequestsTotal  metric.Int64Counter
	RenderTierTotal         metric.Int64Counter
	RenderDurationSeconds   metric.Float64Histogram
	UpstreamFaultsTotal     metric.Int64Counter
	AdventureForwardsTotal  metric.Int64Counter
	MapProviderAttemptTotal metric.Int64Counter
}

var (
	// Global instance of AppMetrics (initialized once)
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metrics instruments ONLY ONCE.
// It gets the Meter from the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("TravelItinerary")
		var err error
		m := &AppMetrics{}

		m.ItineraryRequestsTotal, err = meter.Int64Counter(
			"itinerary_requests_total",
			metric.WithDescription("Total number of itinerary generation requests completed"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create itinerary_requests_total: %v", err)
		}

		m.RenderTierTotal, err = meter.Int64Counter(
			"render_tier_total",
			metric.WithDescription("Documents produced per rendering tier (engine, library, minimal)"),
			metric.WithUnit("{document}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create render_tier_total: %v", err)
		}

		m.RenderDurationSeconds, err = meter.Float64Histogram(
			"render_duration_seconds",
			metric.WithDescription("Duration of document rendering in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create render_duration_seconds: %v", err)
		}

		m.UpstreamFaultsTotal, err = meter.Int64Counter(
			"upstream_faults_total",
			metric.WithDescription("Total number of upstream service faults swallowed (ai, geocoder, map, node)"),
			metric.WithUnit("{fault}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create upstream_faults_total: %v", err)
		}

		m.AdventureForwardsTotal, err = meter.Int64Counter(
			"adventure_forwards_total",
			metric.WithDescription("Total number of adventure save forwards attempted"),
			metric.WithUnit("{request}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create adventure_forwards_total: %v", err)
		}

		m.MapProviderAttemptTotal, err = meter.Int64Counter(
			"map_provider_attempts_total",
			metric.WithDescription("Static map provider attempts by outcome"),
			metric.WithUnit("{attempt}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create map_provider_attempts_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance.
// Panics if InitAppMetrics was not called first.
func Get() *AppMetrics {
	if appMetrics == nil {
		panic("metrics instruments not initialized. Call metrics.InitAppMetrics() first.")
	}
	return appMetrics
}
