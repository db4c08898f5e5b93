package treedist

import (
	"log/slog"
	"runtime"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// Option configures a Cache.
type Option func(*options)

type options struct {
	store         Store
	logger        *slog.Logger
	meterProvider metric.MeterProvider
	parallelism   int
}

func defaultOptions() options {
	return options{
		logger:      slog.Default(),
		parallelism: runtime.GOMAXPROCS(0),
	}
}

// WithStore sets the entry store. The store must be empty and must not be
// shared with another cache.
func WithStore(store Store) Option {
	return func(o *options) {
		if store != nil {
			o.store = store
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithMeterProvider sets the provider for cache counters. Defaults to the
// global otel provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(o *options) {
		if mp != nil {
			o.meterProvider = mp
		}
	}
}

// WithParallelism caps the number of concurrent computations in Matrix.
func WithParallelism(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.parallelism = n
		}
	}
}

func (o *options) resolve() {
	if o.store == nil {
		o.store = NewMemoryStore()
	}
	if o.meterProvider == nil {
		o.meterProvider = otel.GetMeterProvider()
	}
}
