package kdgo

import (
	"math"
	"sort"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/kdgo/queue"
)

// Result represents a single nearest-neighbor candidate.
type Result struct {
	// Node is the matched tree node; its Index identifies the point
	// in the input buffer.
	Node *Node

	// Distance is the metric distance between the query and the node.
	Distance float64
}

// Nearest returns up to k nearest neighbors of query under the tree's
// distance function.
//
// The result slice is NOT sorted by distance unless WithSorted is
// passed: it reflects the candidate heap's internal array order after
// the traversal (see the package documentation).
//
// An empty tree yields an empty result and no error. It fails with
// ErrInvalidK if k < 1 and *ErrDimensionMismatch if the query length
// does not match the tree's dimensionality.
func (t *Tree) Nearest(query []float64, k int, optFns ...func(*SearchOptions)) ([]Result, error) {
	opts := DefaultSearchOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if k < 1 {
		return nil, ErrInvalidK
	}

	if len(query) != t.dim {
		return nil, &ErrDimensionMismatch{Expected: t.dim, Actual: len(query)}
	}

	if t.root == nil {
		return []Result{}, nil
	}

	s := &searcher{
		tree:   t,
		query:  query,
		k:      k,
		filter: opts.Filter,
		probe:  make([]float64, t.dim),
		// Negated distance: the candidate with the largest distance
		// has the lowest score, sits at the top, and is evicted first.
		pq: queue.New(func(r Result) float64 { return -r.Distance }),
	}

	// A radius cutoff is enforced by pre-seeding k placeholders at the
	// cutoff distance: a real candidate is only admitted by beating
	// the current worst entry.
	if opts.MaxDistance >= 0 {
		for i := 0; i < k; i++ {
			s.pq.Push(Result{Distance: opts.MaxDistance})
		}
	}

	s.visit(t.root)

	// Harvest the heap's backing slice directly, dropping surviving
	// placeholders. The order is whatever the heap left behind.
	results := make([]Result, 0, s.pq.Len())
	for _, r := range s.pq.Items() {
		if r.Node == nil {
			continue
		}
		results = append(results, r)
	}

	if opts.Sorted {
		sort.Slice(results, func(i, j int) bool {
			return results[i].Distance < results[j].Distance
		})
	}

	t.logger.WithK(k).WithCount(len(results)).Debug("nearest completed")

	return results, nil
}

// searcher holds the per-query traversal state. It lives for the
// duration of one Nearest call only.
type searcher struct {
	tree   *Tree
	query  []float64
	k      int
	filter *roaring.Bitmap
	pq     *queue.PriorityQueue[Result]
	probe  []float64
}

// visit performs the branch-and-bound descent rooted at node.
func (s *searcher) visit(node *Node) {
	axis := node.Axis(s.tree.dim)
	ownDistance := s.tree.distanceFunc(s.query, node.Position)

	// Distance from the query to the splitting hyperplane through this
	// node: probe the node's position with the query's value on the
	// split axis. It lower-bounds the distance to anything strictly on
	// the far side.
	copy(s.probe, node.Position)
	s.probe[axis] = s.query[axis]
	hyperplaneDistance := s.tree.distanceFunc(s.probe, node.Position)

	if node.IsLeaf() {
		s.admit(node, ownDistance)
		return
	}

	near, far := node.Left, node.Right
	if s.query[axis] >= node.Position[axis] {
		near, far = far, near
	}
	if near == nil {
		near, far = far, nil
	}

	s.visit(near)

	s.admit(node, ownDistance)

	// The far subtree cannot hold a better candidate unless the
	// hyperplane itself is closer than the worst kept distance.
	if far != nil && (s.pq.Len() < s.k || hyperplaneDistance < s.worst()) {
		s.visit(far)
	}
}

// admit offers node as a candidate, evicting the worst entry when the
// heap would exceed k.
func (s *searcher) admit(node *Node, d float64) {
	if s.filter != nil {
		// The bitmap holds 32-bit indices; anything beyond that range
		// cannot be in the allow-list, and the cast below would wrap.
		if uint64(node.Index) > math.MaxUint32 || !s.filter.Contains(uint32(node.Index)) {
			return
		}
	}

	if s.pq.Len() >= s.k && d >= s.worst() {
		return
	}

	s.pq.Push(Result{Node: node, Distance: d})

	if s.pq.Len() > s.k {
		s.pq.Pop()
	}
}

// worst returns the largest kept distance. It must only be called when
// the heap is non-empty.
func (s *searcher) worst() float64 {
	r, _ := s.pq.Peek()
	return r.Distance
}
