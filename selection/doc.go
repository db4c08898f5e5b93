// Package selection computes information-criterion scores for candidate
// models of sequence evolution.
//
// A Score snapshots a model's log-likelihood and parameter count and derives
// -2*lnL + penalty once, at construction. Criteria differ only in the penalty
// term (BIC, AIC, AICc). Weights and DecisionTheory combine scores with
// pairwise tree distances, typically served by a treedist.Cache.
package selection
