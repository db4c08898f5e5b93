package treedist

import "strconv"

// PairKey identifies an unordered pair of trees. Lo never sorts after Hi, so
// both operand orders produce the same key.
type PairKey struct {
	Lo string
	Hi string
}

// NewPairKey returns the canonical key for the pair of tree keys a and b.
func NewPairKey(a, b string) PairKey {
	if b < a {
		a, b = b, a
	}
	return PairKey{Lo: a, Hi: b}
}

// String encodes the key as the length of Lo followed by Lo and Hi, so
// distinct pairs never share an encoding whatever bytes the tree keys hold.
func (k PairKey) String() string { return strconv.Itoa(len(k.Lo)) + ":" + k.Lo + k.Hi }
