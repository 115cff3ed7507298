package kdgo

import (
	"sort"

	"github.com/hupe1980/kdgo/distance"
)

// Stats holds read-only statistics captured during the build.
type Stats struct {
	// MaxDepth is the depth of the deepest node; -1 for an empty tree.
	MaxDepth int

	// LeafCount is the number of nodes without children.
	LeafCount int
}

// Tree is a static k-d tree over a flat point buffer. It is immutable
// once built; queries never mutate it, so concurrent queries from
// multiple goroutines are safe.
type Tree struct {
	root         *Node
	dim          int
	size         int
	stats        Stats
	distanceFunc distance.Func
	logger       *Logger
}

// New builds a k-d tree from a flat row-major point buffer of the given
// dimensionality. The buffer is reordered in place during the build and
// must not be accessed concurrently with it; afterwards node positions
// alias the reordered buffer.
//
// It fails with *ErrInvalidDimension or *ErrBufferLength before
// touching the buffer.
func New(buf []float64, dim int, optFns ...func(*Options)) (*Tree, error) {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = NoopLogger()
	}

	w, err := NewWindow(buf, dim)
	if err != nil {
		return nil, err
	}

	b := &builder{dim: dim, maxDepth: -1}
	root := b.build(w, 0, nil, 0)

	t := &Tree{
		root:         root,
		dim:          dim,
		size:         w.Len(),
		stats:        Stats{MaxDepth: b.maxDepth, LeafCount: b.leafCount},
		distanceFunc: opts.DistanceFunc,
		logger:       opts.Logger,
	}

	opts.Logger.WithDimension(dim).WithCount(t.size).Debug("tree built",
		"max_depth", t.stats.MaxDepth,
		"leaf_count", t.stats.LeafCount,
	)

	return t, nil
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node { return t.root }

// Size returns the number of points in the tree.
func (t *Tree) Size() int { return t.size }

// Dimension returns the point dimensionality.
func (t *Tree) Dimension() int { return t.dim }

// Stats returns the statistics captured during the build.
func (t *Tree) Stats() Stats { return t.stats }

// builder accumulates build statistics across the recursion. It exists
// for the duration of one New call only.
type builder struct {
	dim       int
	maxDepth  int
	leafCount int
}

// build partitions the window by the depth-cycled axis and returns the
// subtree's root. base is the absolute index of the window's first
// point in the original buffer.
func (b *builder) build(w Window, depth int, parent *Node, base int) *Node {
	switch w.Len() {
	case 0:
		return nil
	case 1:
		b.leafCount++
		if depth > b.maxDepth {
			b.maxDepth = depth
		}
		return &Node{
			Position: w.Point(0),
			Depth:    depth,
			Index:    base,
			parent:   parent,
		}
	}

	axis := depth % b.dim
	sort.Sort(axisSorter{w: w, axis: axis})

	median := w.Len() / 2

	node := &Node{
		Position: w.Point(median),
		Depth:    depth,
		Index:    base + median,
		parent:   parent,
	}

	// Any window of two or more points yields a non-empty left
	// sub-window, so the deepest node is always a leaf and tracking
	// maxDepth in the leaf case alone is sufficient.
	node.Left = b.build(w.Slice(0, median), depth+1, node, base)
	node.Right = b.build(w.Slice(median+1, w.Len()), depth+1, node, base+median+1)

	return node
}
