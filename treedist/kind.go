package treedist

import (
	"fmt"
	"strings"
)

// Kind enumerates supported tree distance metrics.
type Kind string

const (
	// Euclidean is the branch-score distance over split branch lengths.
	Euclidean Kind = "euclidean"
	// RobinsonFoulds counts splits present in exactly one of the two trees.
	RobinsonFoulds Kind = "robinson_foulds"
)

// Kinds lists every supported metric kind.
func Kinds() []Kind { return []Kind{Euclidean, RobinsonFoulds} }

// Validate returns ErrInvalidMetricKind for anything but the defined kinds.
func (k Kind) Validate() error {
	switch k {
	case Euclidean, RobinsonFoulds:
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMetricKind, string(k))
	}
}

// Description returns a human readable label for the kind.
func (k Kind) Description() string {
	switch k {
	case Euclidean:
		return "Euclidean"
	case RobinsonFoulds:
		return "Robinson-Foulds"
	default:
		return "unknown"
	}
}

func (k Kind) String() string { return string(k) }

// ParseKind resolves a metric name, ignoring case and accepting the common
// aliases "l2", "rf" and "robinson-foulds".
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	n = strings.ReplaceAll(n, "-", "_")
	switch n {
	case "euclidean", "l2":
		return Euclidean, nil
	case "robinson_foulds", "rf":
		return RobinsonFoulds, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMetricKind, name)
	}
}
