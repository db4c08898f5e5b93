package selection

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	lnL float64
	k   int
}

func (m *fakeModel) LogLikelihood() float64 { return m.lnL }
func (m *fakeModel) ParameterCount() int    { return m.k }

func TestNewBIC(t *testing.T) {
	m := &fakeModel{lnL: -100, k: 5}
	s, err := NewBIC(m, 1000)
	require.NoError(t, err)

	assert.InDelta(t, 234.5388, s.Value(), 1e-4)
	assert.InDelta(t, 200+5*math.Log(1000), s.Value(), 1e-12)
	assert.Same(t, m, s.Model())
	assert.Equal(t, BIC, s.Criterion())
	assert.Equal(t, 1000.0, s.SampleSize())
	assert.Equal(t, "BIC=234.5388", s.String())
}

func TestNewScore_Criteria(t *testing.T) {
	m := &fakeModel{lnL: -100, k: 5}
	tests := []struct {
		criterion Criterion
		want      float64
	}{
		{criterion: AIC, want: 210},
		{criterion: AICc, want: 210 + 60.0/994.0},
		{criterion: BIC, want: 200 + 5*math.Log(1000)},
	}
	for _, tt := range tests {
		t.Run(tt.criterion.Name(), func(t *testing.T) {
			s, err := NewScore(tt.criterion, m, 1000)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, s.Value(), 1e-9)
		})
	}
}

func TestNewScore_Immutable(t *testing.T) {
	m := &fakeModel{lnL: -100, k: 5}
	first, err := NewBIC(m, 1000)
	require.NoError(t, err)
	second, err := NewBIC(m, 1000)
	require.NoError(t, err)
	assert.Equal(t, first.Value(), second.Value())

	m.lnL = -50
	m.k = 1
	assert.InDelta(t, 234.5388, first.Value(), 1e-4)
	assert.Equal(t, -100.0, first.LogLikelihood())
	assert.Equal(t, 5, first.ParameterCount())

	third, err := NewBIC(m, 1000)
	require.NoError(t, err)
	assert.NotEqual(t, first.Value(), third.Value())
}

func TestNewScore_ZeroParameters(t *testing.T) {
	s, err := NewBIC(&fakeModel{lnL: -10, k: 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, 20.0, s.Value())
}

func TestNewScore_Invalid(t *testing.T) {
	valid := &fakeModel{lnL: -100, k: 5}
	tests := []struct {
		name      string
		criterion Criterion
		model     Model
		n         float64
		want      error
	}{
		{name: "nil model", criterion: BIC, n: 10, want: ErrInvalidModel},
		{name: "nan likelihood", criterion: BIC, model: &fakeModel{lnL: math.NaN()}, n: 10, want: ErrInvalidModel},
		{name: "infinite likelihood", criterion: AIC, model: &fakeModel{lnL: math.Inf(-1)}, n: 10, want: ErrInvalidModel},
		{name: "overflowing score", criterion: BIC, model: &fakeModel{lnL: -1e308, k: 1}, n: 10, want: ErrInvalidModel},
		{name: "negative parameters", criterion: BIC, model: &fakeModel{k: -1}, n: 10, want: ErrInvalidModel},
		{name: "zero sample size", criterion: BIC, model: valid, n: 0, want: ErrInvalidSampleSize},
		{name: "negative sample size", criterion: BIC, model: valid, n: -5, want: ErrInvalidSampleSize},
		{name: "nan sample size", criterion: AICc, model: valid, n: math.NaN(), want: ErrInvalidSampleSize},
		{name: "infinite sample size", criterion: BIC, model: valid, n: math.Inf(1), want: ErrInvalidSampleSize},
		{name: "aicc too small", criterion: AICc, model: valid, n: 6, want: ErrInsufficientSampleSize},
		{name: "nil criterion", model: valid, n: 10, want: ErrUnknownCriterion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewScore(tt.criterion, tt.model, tt.n)
			assert.ErrorIs(t, err, tt.want)
			assert.Nil(t, s)
		})
	}
}

func TestNewScore_AICIgnoresSampleSize(t *testing.T) {
	s, err := NewScore(AIC, &fakeModel{lnL: -1, k: 2}, 0)
	require.NoError(t, err)
	assert.Equal(t, 6.0, s.Value())
}

func TestCriterionByName(t *testing.T) {
	for _, name := range []string{"bic", "AIC", " aicc "} {
		c, err := CriterionByName(name)
		require.NoError(t, err)
		assert.NotNil(t, c)
	}
	c, err := CriterionByName("aicc")
	require.NoError(t, err)
	assert.Equal(t, AICc, c)

	_, err = CriterionByName("dic")
	assert.ErrorIs(t, err, ErrUnknownCriterion)
}
