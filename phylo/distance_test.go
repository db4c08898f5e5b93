package phylo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/phylosel/treedist"
)

func testTrees(t *testing.T) (*Tree, *Tree) {
	t1 := mustTree(t, fiveTaxa,
		Split{Taxa: []string{"A", "B"}, Length: 0.1},
		Split{Taxa: []string{"D", "E"}, Length: 0.2},
	)
	t2 := mustTree(t, fiveTaxa,
		Split{Taxa: []string{"A", "C"}, Length: 0.1},
		Split{Taxa: []string{"D", "E"}, Length: 0.5},
	)
	return t1, t2
}

func TestRobinsonFouldsDistance(t *testing.T) {
	t1, t2 := testTrees(t)

	d, err := RobinsonFouldsDistance(t1, t2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	back, err := RobinsonFouldsDistance(t2, t1)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	self, err := RobinsonFouldsDistance(t1, t1)
	require.NoError(t, err)
	assert.Zero(t, self)
}

func TestRobinsonFouldsDistance_IgnoresTerminalBranches(t *testing.T) {
	t1, _ := testTrees(t)
	withTips := mustTree(t, fiveTaxa,
		Split{Taxa: []string{"A", "B"}, Length: 0.1},
		Split{Taxa: []string{"D", "E"}, Length: 0.2},
		Split{Taxa: []string{"A"}, Length: 0.3},
	)

	d, err := RobinsonFouldsDistance(t1, withTips)
	require.NoError(t, err)
	assert.Zero(t, d)

	e, err := EuclideanDistance(t1, withTips)
	require.NoError(t, err)
	assert.InEpsilon(t, 0.3, e, 1e-6)
}

func TestEuclideanDistance(t *testing.T) {
	t1, t2 := testTrees(t)

	d, err := EuclideanDistance(t1, t2)
	require.NoError(t, err)
	assert.InEpsilon(t, math.Sqrt(0.11), d, 1e-6)

	back, err := EuclideanDistance(t2, t1)
	require.NoError(t, err)
	assert.InEpsilon(t, d, back, 1e-6)
}

func TestEuclideanDistance_KeepsSmallDifferences(t *testing.T) {
	tests := []struct {
		name   string
		la, lb float64
		want   float64
	}{
		{name: "tiny difference on a long branch", la: 1.0, lb: 1.0 + 1e-9, want: 1e-9},
		{name: "short branches", la: 0.1, lb: 0.3, want: 0.2},
		{name: "large lengths", la: 1e6, lb: 2e6, want: 1e6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustTree(t, fiveTaxa, Split{Taxa: []string{"A", "B"}, Length: tt.la})
			b := mustTree(t, fiveTaxa, Split{Taxa: []string{"A", "B"}, Length: tt.lb})
			require.NotEqual(t, a.Key(), b.Key())

			d, err := EuclideanDistance(a, b)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, d, 1e-6)
		})
	}
}

func TestDistance_DegenerateTrees(t *testing.T) {
	star := mustTree(t, []string{"A", "B", "C"})
	other := mustTree(t, []string{"C", "B", "A"})

	rf, err := RobinsonFouldsDistance(star, other)
	require.NoError(t, err)
	assert.Zero(t, rf)

	e, err := EuclideanDistance(star, other)
	require.NoError(t, err)
	assert.Zero(t, e)
}

func TestDistance_Errors(t *testing.T) {
	t1, _ := testTrees(t)
	fourTaxa := mustTree(t, []string{"A", "B", "C", "D"})
	renamed := mustTree(t, []string{"A", "B", "C", "D", "F"})

	for name, fn := range map[string]treedist.Func[*Tree]{
		"euclidean":       EuclideanDistance,
		"robinson_foulds": RobinsonFouldsDistance,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := fn(t1, nil)
			assert.ErrorIs(t, err, ErrNilTree)
			_, err = fn(t1, fourTaxa)
			assert.ErrorIs(t, err, ErrTaxaMismatch)
			_, err = fn(t1, renamed)
			assert.ErrorIs(t, err, ErrTaxaMismatch)
		})
	}
}

func TestNewCache_SharesEntriesAcrossEqualTrees(t *testing.T) {
	t1, t2 := testTrees(t)
	t1Copy := mustTree(t, fiveTaxa,
		Split{Taxa: []string{"D", "E"}, Length: 0.2},
		Split{Taxa: []string{"C", "D", "E"}, Length: 0.1},
	)

	cache, err := NewCache(treedist.RobinsonFoulds)
	require.NoError(t, err)

	d, err := cache.Distance(t1, t2)
	require.NoError(t, err)
	assert.Equal(t, 2.0, d)

	again, err := cache.Distance(t2, t1Copy)
	require.NoError(t, err)
	assert.Equal(t, d, again)

	stats := cache.Stats()
	assert.EqualValues(t, 1, stats.Misses)
	assert.EqualValues(t, 1, stats.Hits)
}
