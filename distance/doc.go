// Package distance provides distance functions for kdgo point queries.
//
// All functions in this package are per-axis monotonic and non-negative,
// which is what the k-d tree search requires for its hyperplane pruning
// to be correct. Caller-supplied functions are accepted by the tree
// without validation; a metric that violates those properties yields
// silently incorrect results.
package distance
