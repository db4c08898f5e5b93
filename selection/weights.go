package selection

import (
	"fmt"
	"math"
	"reflect"
)

// Weights returns the criterion weights exp(-d_i/2) / sum_j exp(-d_j/2),
// where d_i is the difference between score i and the best (lowest) score.
// All scores should come from the same criterion and sample size.
func Weights(scores []*Score) []float64 {
	if len(scores) == 0 {
		return nil
	}
	best := math.Inf(1)
	for _, s := range scores {
		best = math.Min(best, s.value)
	}
	w := make([]float64, len(scores))
	var sum float64
	for i, s := range scores {
		w[i] = math.Exp(-(s.value - best) / 2)
		sum += w[i]
	}
	for i := range w {
		w[i] /= sum
	}
	return w
}

// Distancer returns the distance between two trees. *treedist.Cache
// satisfies it.
type Distancer[T any] interface {
	Distance(a, b T) (float64, error)
}

// Candidate pairs a model score with the tree inferred under that model.
type Candidate[T any] struct {
	Score *Score
	Tree  T
}

// DecisionTheory returns the decision-theoretic risk of each candidate:
// DT_i = sum_j w_j * d(T_i, T_j), with w the criterion weights of the
// candidates' scores. Each unordered pair of trees is requested twice, so d
// should memoize. A nil d, including a typed nil pointer, is an error.
func DecisionTheory[T any](candidates []Candidate[T], d Distancer[T]) ([]float64, error) {
	if len(candidates) == 0 {
		return nil, nil
	}
	if isNil(d) {
		return nil, fmt.Errorf("selection: nil distancer")
	}
	scores := make([]*Score, len(candidates))
	for i, c := range candidates {
		if c.Score == nil {
			return nil, fmt.Errorf("%w: candidate %d has no score", ErrInvalidModel, i)
		}
		scores[i] = c.Score
	}
	w := Weights(scores)

	risk := make([]float64, len(candidates))
	for i := range candidates {
		for j := range candidates {
			if i == j {
				continue
			}
			dist, err := d.Distance(candidates[i].Tree, candidates[j].Tree)
			if err != nil {
				return nil, fmt.Errorf("selection: distance between candidates %d and %d: %w", i, j, err)
			}
			risk[i] += w[j] * dist
		}
	}
	return risk, nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Func, reflect.Interface, reflect.Chan, reflect.Slice:
		return rv.IsNil()
	}
	return false
}
