// Package kdgo provides a static k-d tree for bounded k-nearest-neighbor
// queries over flat float64 point buffers.
//
// The tree is build-once, query-many: it is constructed from an immutable
// point set by recursive median partitioning and supports no insertion or
// deletion afterwards. Queries are branch-and-bound descents that prune
// subtrees using the distance to the splitting hyperplane.
//
// # Quick Start
//
//	// Four 2D points, flattened row-major.
//	buf := []float64{0, 0, 1, 0, 0, 1, 5, 5}
//
//	tree, err := kdgo.New(buf, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	results, err := tree.Nearest([]float64{0, 0}, 2)
//	for _, r := range results {
//	    fmt.Println(r.Node.Index, r.Distance)
//	}
//
// # Result Ordering
//
// Nearest does NOT sort its result by distance: the slice reflects the
// internal array order of the candidate heap after traversal. Pass the
// WithSorted option to get ascending-distance order, or sort the slice
// yourself.
//
// # Mutability and Concurrency
//
// New reorders the point buffer in place while partitioning; the buffer
// must not be read or written concurrently with the build. Once built
// the tree is strictly read-only and any number of goroutines may query
// it concurrently — each query owns its ephemeral candidate heap.
package kdgo
