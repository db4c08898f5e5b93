package treedist

import "errors"

var (
	// ErrInvalidMetricKind is returned when a cache is constructed with a kind
	// other than Euclidean or RobinsonFoulds.
	ErrInvalidMetricKind = errors.New("treedist: unsupported distance type")

	// ErrMissingFunction is returned when the distance function for a valid
	// kind was not supplied.
	ErrMissingFunction = errors.New("treedist: distance function is nil")
)
