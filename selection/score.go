package selection

import (
	"fmt"
	"math"
)

// Score is a model's value under one information criterion. It keeps the
// log-likelihood and parameter count observed at construction, so later
// changes to the model do not affect it.
type Score struct {
	model      Model
	criterion  Criterion
	sampleSize float64
	lnL        float64
	k          int
	value      float64
}

// NewScore computes the score of m under c with the given sample size. It
// fails fast instead of producing a non-finite value.
func NewScore(c Criterion, m Model, sampleSize float64) (*Score, error) {
	if c == nil {
		return nil, fmt.Errorf("%w: nil criterion", ErrUnknownCriterion)
	}
	if m == nil {
		return nil, fmt.Errorf("%w: nil model", ErrInvalidModel)
	}
	lnL := m.LogLikelihood()
	if math.IsNaN(lnL) || math.IsInf(lnL, 0) {
		return nil, fmt.Errorf("%w: log-likelihood %v", ErrInvalidModel, lnL)
	}
	k := m.ParameterCount()
	if k < 0 {
		return nil, fmt.Errorf("%w: parameter count %d", ErrInvalidModel, k)
	}
	penalty, err := c.Penalty(k, sampleSize)
	if err != nil {
		return nil, err
	}
	value := -2*lnL + penalty
	if math.IsInf(value, 0) {
		return nil, fmt.Errorf("%w: %s overflows for log-likelihood %v", ErrInvalidModel, c.Name(), lnL)
	}
	return &Score{
		model:      m,
		criterion:  c,
		sampleSize: sampleSize,
		lnL:        lnL,
		k:          k,
		value:      value,
	}, nil
}

// NewBIC computes the BIC score of m.
func NewBIC(m Model, sampleSize float64) (*Score, error) {
	return NewScore(BIC, m, sampleSize)
}

// Value returns the criterion value; lower is better.
func (s *Score) Value() float64 { return s.value }

// Model returns the scored model.
func (s *Score) Model() Model { return s.model }

// Criterion returns the criterion the score was computed under.
func (s *Score) Criterion() Criterion { return s.criterion }

// SampleSize returns the sample size passed at construction.
func (s *Score) SampleSize() float64 { return s.sampleSize }

// LogLikelihood returns the log-likelihood captured at construction.
func (s *Score) LogLikelihood() float64 { return s.lnL }

// ParameterCount returns the parameter count captured at construction.
func (s *Score) ParameterCount() int { return s.k }

func (s *Score) String() string {
	return fmt.Sprintf("%s=%.4f", s.criterion.Name(), s.value)
}
