package treedist

import "fmt"

// Tree is the identity contract the cache needs from a tree value. Two values
// denoting the same tree must return the same key, and the key must not change
// once the tree takes part in any cached pair.
type Tree interface {
	Key() string
}

// Func computes the distance between two trees. It must be symmetric.
type Func[T Tree] func(a, b T) (float64, error)

// Functions holds the distance implementations a cache may dispatch to.
type Functions[T Tree] struct {
	Euclidean      Func[T]
	RobinsonFoulds Func[T]
}

// Metric is a distance strategy bound to a single kind.
type Metric[T Tree] interface {
	Kind() Kind
	Distance(a, b T) (float64, error)
}

type euclideanMetric[T Tree] struct{ fn Func[T] }

func (m euclideanMetric[T]) Kind() Kind                       { return Euclidean }
func (m euclideanMetric[T]) Distance(a, b T) (float64, error) { return m.fn(a, b) }

type robinsonFouldsMetric[T Tree] struct{ fn Func[T] }

func (m robinsonFouldsMetric[T]) Kind() Kind                       { return RobinsonFoulds }
func (m robinsonFouldsMetric[T]) Distance(a, b T) (float64, error) { return m.fn(a, b) }

// Metric resolves the strategy for kind.
func (f Functions[T]) Metric(kind Kind) (Metric[T], error) {
	switch kind {
	case Euclidean:
		if f.Euclidean == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingFunction, kind)
		}
		return euclideanMetric[T]{fn: f.Euclidean}, nil
	case RobinsonFoulds:
		if f.RobinsonFoulds == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingFunction, kind)
		}
		return robinsonFouldsMetric[T]{fn: f.RobinsonFoulds}, nil
	default:
		return nil, kind.Validate()
	}
}
