package selection

import (
	"fmt"
	"math"
	"strings"
)

// Criterion supplies the complexity penalty of an information criterion. The
// score of a model is -2*lnL + Penalty(k, n).
type Criterion interface {
	Name() string
	Penalty(k int, n float64) (float64, error)
}

var (
	// BIC is the Bayesian information criterion, penalty k*ln(n).
	BIC Criterion = bic{}
	// AIC is the Akaike information criterion, penalty 2k.
	AIC Criterion = aic{}
	// AICc is AIC with the small-sample correction 2k(k+1)/(n-k-1).
	AICc Criterion = aicc{}
)

// Criteria lists the built-in criteria.
func Criteria() []Criterion { return []Criterion{AIC, AICc, BIC} }

// CriterionByName resolves a built-in criterion, ignoring case.
func CriterionByName(name string) (Criterion, error) {
	for _, c := range Criteria() {
		if strings.EqualFold(strings.TrimSpace(name), c.Name()) {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCriterion, name)
}

type bic struct{}

func (bic) Name() string { return "BIC" }

func (bic) Penalty(k int, n float64) (float64, error) {
	if err := checkSampleSize(n); err != nil {
		return 0, err
	}
	return float64(k) * math.Log(n), nil
}

type aic struct{}

func (aic) Name() string { return "AIC" }

func (aic) Penalty(k int, _ float64) (float64, error) { return 2 * float64(k), nil }

type aicc struct{}

func (aicc) Name() string { return "AICc" }

func (aicc) Penalty(k int, n float64) (float64, error) {
	if err := checkSampleSize(n); err != nil {
		return 0, err
	}
	kf := float64(k)
	denom := n - kf - 1
	if denom <= 0 {
		return 0, fmt.Errorf("%w: n=%v k=%d", ErrInsufficientSampleSize, n, k)
	}
	return 2*kf + 2*kf*(kf+1)/denom, nil
}

func checkSampleSize(n float64) error {
	if n <= 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidSampleSize, n)
	}
	return nil
}
