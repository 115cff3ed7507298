package kdgo

// Node represents one point placed in the tree.
type Node struct {
	// Position is the point's coordinates. It is a view into the
	// original buffer, not a copy.
	Position []float64

	// Depth is the node's depth in the tree; the root has depth 0.
	// The partition axis at this node is Depth mod dimension.
	Depth int

	// Index is the point's absolute position in the input buffer
	// after the build's in-place partitioning.
	Index int

	// Left and Right are the child subtrees; a leaf has both nil.
	Left  *Node
	Right *Node

	parent *Node
}

// Parent returns the node's parent, or nil for the root. The reference
// is for upward traversal only; the parent does not own the node.
func (n *Node) Parent() *Node { return n.parent }

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool { return n.Left == nil && n.Right == nil }

// Axis returns the partition axis of the node for the given dimension.
func (n *Node) Axis(dim int) int { return n.Depth % dim }
