package treedist

// Stats is a snapshot of cache activity.
type Stats struct {
	// Hits counts lookups answered without running the metric.
	Hits int64
	// Misses counts lookups that ran the metric, including failed runs.
	Misses int64
	// Errors counts misses that returned an error, from the metric or from
	// saving its result.
	Errors int64
}

// HitRatio returns Hits / (Hits + Misses), or 0 before any lookup.
func (s Stats) HitRatio() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
