// Package treedist memoizes pairwise distances between phylogenetic trees.
//
// A Cache is bound to one distance metric for its whole lifetime and stores
// every computed distance under a canonical, unordered pair key, so that
// Distance(a, b) and Distance(b, a) share one entry and the underlying metric
// runs at most once per distinct pair. Features:
//   - Closed metric Kind enumeration (euclidean, robinson_foulds)
//   - Metric strategies wrapping injected pure distance functions
//   - Write-once entry stores: in-memory map or SQLite (modernc.org/sqlite)
//   - Concurrent-safe lookup/compute/insert with singleflight
//   - OpenTelemetry hit/miss/computation counters
package treedist
