package phylo

import "github.com/viant/phylosel/treedist"

// Functions returns the reference distance functions for use with treedist.
func Functions() treedist.Functions[*Tree] {
	return treedist.Functions[*Tree]{
		Euclidean:      EuclideanDistance,
		RobinsonFoulds: RobinsonFouldsDistance,
	}
}

// NewCache creates a distance cache over Tree values using the reference
// distance functions.
func NewCache(kind treedist.Kind, opts ...treedist.Option) (*treedist.Cache[*Tree], error) {
	return treedist.New(kind, Functions(), opts...)
}
