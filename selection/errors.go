package selection

import "errors"

var (
	// ErrInvalidModel is returned for a nil model, a non-finite
	// log-likelihood, a negative parameter count, or a score that overflows.
	ErrInvalidModel = errors.New("selection: invalid model")

	// ErrInvalidSampleSize is returned when a criterion needs the sample size
	// and it is not strictly positive and finite.
	ErrInvalidSampleSize = errors.New("selection: sample size must be positive and finite")

	// ErrInsufficientSampleSize is returned by AICc when n-k-1 <= 0.
	ErrInsufficientSampleSize = errors.New("selection: sample size too small for parameter count")

	// ErrUnknownCriterion is returned by CriterionByName.
	ErrUnknownCriterion = errors.New("selection: unknown criterion")
)
