package avl

// Node is a single key/value entry of the tree.
// NOTE: Key and value of a node may be replaced by the tree when another entry
// is removed, so node pointers must not be kept across removals.
type Node[K, V any] struct {
	key    K
	value  V
	parent *Node[K, V]
	left   *Node[K, V]
	right  *Node[K, V]
	height int
}

// Key returns key of the tree node.
func (n *Node[K, V]) Key() K {
	return n.key
}

// Value returns value of the tree node.
func (n *Node[K, V]) Value() V {
	return n.value
}

// Height returns cached height of the subtree rooted at the node (leaf is 0).
func (n *Node[K, V]) Height() int {
	return n.height
}

// MostLeft returns the node with the smallest key in the subtree.
func (n *Node[K, V]) MostLeft() *Node[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// MostRight returns the node with the biggest key in the subtree.
func (n *Node[K, V]) MostRight() *Node[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// Next returns in-order successor of the node or nil if it is the last one.
func (n *Node[K, V]) Next() *Node[K, V] {
	if n.right != nil {
		return n.right.MostLeft()
	}
	// Climb while coming from the right side
	parent := n.parent
	for parent != nil && n == parent.right {
		n = parent
		parent = parent.parent
	}
	return parent
}

// Prev returns in-order predecessor of the node or nil if it is the first one.
func (n *Node[K, V]) Prev() *Node[K, V] {
	if n.left != nil {
		return n.left.MostRight()
	}
	parent := n.parent
	for parent != nil && n == parent.left {
		n = parent
		parent = parent.parent
	}
	return parent
}

func (n *Node[K, V]) iteratePreOrder(f func(v *Node[K, V]) bool) bool {
	if f(n) {
		return true
	}
	if n.left != nil && n.left.iteratePreOrder(f) {
		return true
	}
	return n.right != nil && n.right.iteratePreOrder(f)
}

func (n *Node[K, V]) iterateInOrder(f func(v *Node[K, V]) bool) bool {
	if n.left != nil && n.left.iterateInOrder(f) {
		return true
	}
	if f(n) {
		return true
	}
	return n.right != nil && n.right.iterateInOrder(f)
}

func (n *Node[K, V]) iteratePostOrder(f func(v *Node[K, V]) bool) bool {
	// Children are read before f is called so f may release the node
	left, right := n.left, n.right
	if left != nil && left.iteratePostOrder(f) {
		return true
	}
	if right != nil && right.iteratePostOrder(f) {
		return true
	}
	return f(n)
}
