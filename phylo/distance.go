package phylo

import (
	"fmt"
	"math"
	"sort"

	"github.com/viant/vec/search"
)

// EuclideanDistance returns the branch-score distance between a and b: the
// Euclidean norm of the difference of their branch-length vectors indexed by
// split, where a split missing from a tree contributes length zero.
func EuclideanDistance(a, b *Tree) (float64, error) {
	if err := sameTaxa(a, b); err != nil {
		return 0, err
	}
	ids := make([]string, 0, len(a.splits)+len(b.splits))
	for id := range a.splits {
		ids = append(ids, id)
	}
	for id := range b.splits {
		if _, ok := a.splits[id]; !ok {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}
	sort.Strings(ids)
	diff := make([]float64, len(ids))
	var scale float64
	for i, id := range ids {
		diff[i] = a.splits[id].length - b.splits[id].length
		scale = math.Max(scale, math.Abs(diff[i]))
	}
	if scale == 0 {
		return 0, nil
	}
	// differences are normalized to [-1, 1] so float32 keeps their relative precision
	v := make([]float32, len(diff))
	for i, d := range diff {
		v[i] = float32(d / scale)
	}
	zero := make([]float32, len(v))
	return scale * float64(search.Float32s(v).EuclideanDistance(zero)), nil
}

// RobinsonFouldsDistance returns the number of non-trivial splits present in
// exactly one of a and b. Terminal branches are ignored.
func RobinsonFouldsDistance(a, b *Tree) (float64, error) {
	if err := sameTaxa(a, b); err != nil {
		return 0, err
	}
	count := 0
	for id, s := range a.splits {
		if _, ok := b.splits[id]; !ok && !a.trivial(s) {
			count++
		}
	}
	for id, s := range b.splits {
		if _, ok := a.splits[id]; !ok && !b.trivial(s) {
			count++
		}
	}
	return float64(count), nil
}

func sameTaxa(a, b *Tree) error {
	if a == nil || b == nil {
		return ErrNilTree
	}
	if len(a.taxa) != len(b.taxa) {
		return fmt.Errorf("%w: %d vs %d taxa", ErrTaxaMismatch, len(a.taxa), len(b.taxa))
	}
	for i := range a.taxa {
		if a.taxa[i] != b.taxa[i] {
			return fmt.Errorf("%w: %q vs %q", ErrTaxaMismatch, a.taxa[i], b.taxa[i])
		}
	}
	return nil
}
