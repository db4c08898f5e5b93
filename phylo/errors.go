package phylo

import "errors"

var (
	// ErrNilTree is returned when a distance is requested for a nil tree.
	ErrNilTree = errors.New("phylo: nil tree")
	// ErrTaxaMismatch is returned when two trees are not defined over the
	// same taxa.
	ErrTaxaMismatch = errors.New("phylo: trees have different taxa")
	// ErrInvalidTree is returned by New for malformed taxa or splits.
	ErrInvalidTree = errors.New("phylo: invalid tree")
)
