package selection

// Model is the view of a fitted substitution model a score needs.
type Model interface {
	// LogLikelihood returns the maximized log-likelihood.
	LogLikelihood() float64
	// ParameterCount returns the number of free parameters.
	ParameterCount() int
}
