package treedist

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes distances between pairs of trees under one fixed metric.
//
// Entries are keyed by the canonical PairKey, created on first request, and
// never updated or evicted. Cache is safe for concurrent use: the
// lookup/compute/insert sequence for a key runs inside a singleflight call
// that re-checks the store, so the metric runs at most once per pair.
type Cache[T Tree] struct {
	kind        Kind
	metric      Metric[T]
	store       Store
	flight      singleflight.Group
	logger      *slog.Logger
	inst        *instruments
	parallelism int

	hits   atomic.Int64
	misses atomic.Int64
	errors atomic.Int64
}

// New creates a cache computing distances of the given kind with the matching
// function from fns. It returns ErrInvalidMetricKind for an unsupported kind.
func New[T Tree](kind Kind, fns Functions[T], opts ...Option) (*Cache[T], error) {
	if err := kind.Validate(); err != nil {
		return nil, err
	}
	m, err := fns.Metric(kind)
	if err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	o.resolve()
	inst, err := newInstruments(o.meterProvider, kind)
	if err != nil {
		return nil, fmt.Errorf("treedist: create instruments: %w", err)
	}
	return &Cache[T]{
		kind:        kind,
		metric:      m,
		store:       o.store,
		logger:      o.logger,
		inst:        inst,
		parallelism: o.parallelism,
	}, nil
}

// Kind returns the metric kind fixed at construction.
func (c *Cache[T]) Kind() Kind { return c.kind }

// Distance returns the distance between a and b, computing it only if the
// unordered pair has not been seen before. Errors from the distance function
// are returned unchanged and leave no entry behind.
func (c *Cache[T]) Distance(a, b T) (float64, error) {
	ctx := context.Background()
	key := NewPairKey(a.Key(), b.Key())

	d, ok, err := c.store.Load(key)
	if err != nil {
		return 0, err
	}
	if ok {
		c.hit(ctx)
		return d, nil
	}

	computed := false
	v, err, _ := c.flight.Do(key.String(), func() (interface{}, error) {
		// another call may have stored the pair after our first lookup
		if d, ok, err := c.store.Load(key); err != nil || ok {
			return d, err
		}
		computed = true
		c.misses.Add(1)
		c.inst.recordMiss(ctx)

		d, err := c.metric.Distance(a, b)
		if err != nil {
			c.fail(ctx)
			return nil, err
		}
		if err := c.store.Save(key, d); err != nil {
			c.fail(ctx)
			return nil, err
		}
		c.logger.Debug("distance computed",
			"metric", c.kind.String(),
			"lo", key.Lo,
			"hi", key.Hi,
			"distance", d,
		)
		return d, nil
	})
	if err != nil {
		return 0, err
	}
	if !computed {
		c.hit(ctx)
	}
	return v.(float64), nil
}

// Contains reports whether the pair (a, b) already has a stored distance.
func (c *Cache[T]) Contains(a, b T) (bool, error) {
	_, ok, err := c.store.Load(NewPairKey(a.Key(), b.Key()))
	return ok, err
}

// Len returns the number of cached pairs.
func (c *Cache[T]) Len() (int, error) { return c.store.Len() }

// Stats returns a snapshot of the cache counters.
func (c *Cache[T]) Stats() Stats {
	return Stats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Errors: c.errors.Load(),
	}
}

func (c *Cache[T]) hit(ctx context.Context) {
	c.hits.Add(1)
	c.inst.recordHit(ctx)
}

func (c *Cache[T]) fail(ctx context.Context) {
	c.errors.Add(1)
	c.inst.recordError(ctx)
}
