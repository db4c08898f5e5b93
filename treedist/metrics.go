package treedist

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/viant/phylosel/treedist"

// instruments holds the counters of one cache. Every measurement carries the
// cache's metric kind as the "metric" attribute.
type instruments struct {
	hits   metric.Int64Counter
	misses metric.Int64Counter
	errors metric.Int64Counter
	attrs  metric.MeasurementOption
}

func newInstruments(mp metric.MeterProvider, kind Kind) (*instruments, error) {
	meter := mp.Meter(meterName)

	hits, err := meter.Int64Counter(
		"treedist_cache_hits_total",
		metric.WithDescription("Distance lookups served from the cache"),
	)
	if err != nil {
		return nil, err
	}
	misses, err := meter.Int64Counter(
		"treedist_cache_misses_total",
		metric.WithDescription("Distance lookups that invoked the metric"),
	)
	if err != nil {
		return nil, err
	}
	errs, err := meter.Int64Counter(
		"treedist_distance_errors_total",
		metric.WithDescription("Distance computations that returned an error"),
	)
	if err != nil {
		return nil, err
	}
	return &instruments{
		hits:   hits,
		misses: misses,
		errors: errs,
		attrs:  metric.WithAttributes(attribute.String("metric", string(kind))),
	}, nil
}

func (i *instruments) recordHit(ctx context.Context)   { i.hits.Add(ctx, 1, i.attrs) }
func (i *instruments) recordMiss(ctx context.Context)  { i.misses.Add(ctx, 1, i.attrs) }
func (i *instruments) recordError(ctx context.Context) { i.errors.Add(ctx, 1, i.attrs) }
