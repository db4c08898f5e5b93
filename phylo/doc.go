// Package phylo provides an immutable, split-based phylogenetic tree value and
// reference tree distance functions:
//   - Tree: taxa plus bipartitions (splits) with branch lengths, identified by
//     a content-derived Key
//   - EuclideanDistance: branch-score distance over split branch lengths
//   - RobinsonFouldsDistance: count of non-trivial splits found in only one tree
//
// Functions and NewCache plug these into a treedist.Cache.
package phylo
