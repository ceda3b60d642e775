package observability

import (
	"context"
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/ca-srg/brandrank"

var (
	countersOnce  sync.Once
	checkCounter  metric.Int64Counter
	errorCounter  metric.Int64Counter
	matchCounter  metric.Int64Counter
	countersReady bool
)

func initCounters() {
	meter := otel.Meter(meterName)

	var err error
	checkCounter, err = meter.Int64Counter("brandrank.checks",
		metric.WithDescription("Number of ranking checks performed"))
	if err != nil {
		log.Printf("observability: failed to create checks counter: %v", err)
		return
	}

	errorCounter, err = meter.Int64Counter("brandrank.service_errors",
		metric.WithDescription("Number of text-generation service failures"))
	if err != nil {
		log.Printf("observability: failed to create service_errors counter: %v", err)
		return
	}

	matchCounter, err = meter.Int64Counter("brandrank.brand_matches",
		metric.WithDescription("Number of checks where the brand was found"))
	if err != nil {
		log.Printf("observability: failed to create brand_matches counter: %v", err)
		return
	}

	countersReady = true
}

// RecordCheck counts one completed ranking check for the given surface
// (cli, interactive, webui).
func RecordCheck(ctx context.Context, surface string) {
	countersOnce.Do(initCounters)
	if !countersReady {
		return
	}
	checkCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("surface", surface)))
}

// RecordServiceError counts one failed text-generation call.
func RecordServiceError(ctx context.Context, surface string) {
	countersOnce.Do(initCounters)
	if !countersReady {
		return
	}
	errorCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("surface", surface)))
}

// RecordBrandMatch counts one check where the brand appeared in the ranking.
func RecordBrandMatch(ctx context.Context, surface string) {
	countersOnce.Do(initCounters)
	if !countersReady {
		return
	}
	matchCounter.Add(ctx, 1, metric.WithAttributes(attribute.String("surface", surface)))
}
