package avl

import (
	"sync"

	"gopkg.in/typ.v4"
)

// Tree is a binary search tree (BST) for any key type with a comparator,
// implemented as an AVL tree (Adelson-Velsky and Landis tree), a type of self-balancing BST.
// This guarantees O(log t) operations on insertion, searching, and deletion.
// Nodes keep links to their parents so the tree can be walked in both directions
// without a stack.
// NOTE: Not thread-safe.
type Tree[K, V any] struct {
	compare func(a, b K) int
	pool    *sync.Pool
	root    *Node[K, V]
	size    int
}

////////////////////////////////////////////////////////////////

// NewOrderedTree creates a new AVL tree using a default comparator function
// for any ordered type (ints, uints, floats, strings).
func NewOrderedTree[K typ.Ordered, V any]() Tree[K, V] {
	return NewTree[K, V](typ.Compare[K])
}

// NewTree creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, negative if a < b, and positive if a > b.
func NewTree[K, V any](compare func(a, b K) int) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
	}
}

// NewTreePooled creates a new AVL tree using a comparator function that is
// expected to return 0 if a == b, negative if a < b, and positive if a > b.
// Pooled tree uses given pool for nodes creating/releasing.
func NewTreePooled[K, V any](compare func(a, b K) int, pool *sync.Pool) Tree[K, V] {
	return Tree[K, V]{
		compare: compare,
		pool:    pool,
	}
}

////////////////////////////////////////////////////////////////

// Size returns the amount of nodes in the tree.
func (t *Tree[K, V]) Size() int {
	return t.size
}

// Root returns the root node or nil if the tree is empty.
func (t *Tree[K, V]) Root() *Node[K, V] {
	return t.root
}

// Contains checks if node with given key exists in the tree by iterating the binary search tree.
func (t *Tree[K, V]) Contains(key K) bool {
	return t.Find(key) != nil
}

// Find finds the node with given key in the tree by iterating the binary search tree.
func (t *Tree[K, V]) Find(key K) *Node[K, V] {
	current := t.root
	for current != nil {
		cmp := t.compare(key, current.key)
		switch {
		case cmp == 0:
			return current
		case cmp < 0:
			current = current.left
		default:
			current = current.right
		}
	}
	return nil
}

// Ceil returns the node with the smallest key greater than or equal to given key.
func (t *Tree[K, V]) Ceil(key K) *Node[K, V] {
	var best *Node[K, V]
	current := t.root
	for current != nil {
		if t.compare(current.key, key) >= 0 {
			best = current
			current = current.left
		} else {
			current = current.right
		}
	}
	return best
}

// Floor returns the node with the biggest key less than or equal to given key.
func (t *Tree[K, V]) Floor(key K) *Node[K, V] {
	var best *Node[K, V]
	current := t.root
	for current != nil {
		if t.compare(current.key, key) <= 0 {
			best = current
			current = current.right
		} else {
			current = current.left
		}
	}
	return best
}

// Higher returns the node with the smallest key strictly greater than given key.
func (t *Tree[K, V]) Higher(key K) *Node[K, V] {
	var best *Node[K, V]
	current := t.root
	for current != nil {
		if t.compare(current.key, key) > 0 {
			best = current
			current = current.left
		} else {
			current = current.right
		}
	}
	return best
}

// Lower returns the node with the biggest key strictly less than given key.
func (t *Tree[K, V]) Lower(key K) *Node[K, V] {
	var best *Node[K, V]
	current := t.root
	for current != nil {
		if t.compare(current.key, key) < 0 {
			best = current
			current = current.right
		} else {
			current = current.left
		}
	}
	return best
}

// Add inserts a node with given key and value to the tree.
// Duplicate keys are not allowed so the existing node is returned
// together with ErrorTreeNodeDuplicate and the tree is left untouched.
func (t *Tree[K, V]) Add(key K, value V) (*Node[K, V], error) {
	// Find the parent of the new leaf
	var parent *Node[K, V]
	cmp := 0
	current := t.root
	for current != nil {
		cmp = t.compare(key, current.key)
		if cmp == 0 {
			return current, ErrorTreeNodeDuplicate
		}
		parent = current
		if cmp < 0 {
			current = current.left
		} else {
			current = current.right
		}
	}
	// Attach the node and restore balance up to the root
	node := t.newNode(key, value)
	node.parent = parent
	switch {
	case parent == nil:
		t.root = node
	case cmp < 0:
		parent.left = node
	default:
		parent.right = node
	}
	t.size++
	t.rebalance(node)
	return node, nil
}

// MostLeft returns most left node.
func (t *Tree[K, V]) MostLeft() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.MostLeft()
}

// MostRight returns most right node.
func (t *Tree[K, V]) MostRight() *Node[K, V] {
	if t.root == nil {
		return nil
	}
	return t.root.MostRight()
}

// Clear will reset this tree to an empty tree.
func (t *Tree[K, V]) Clear() {
	if t.root != nil {
		t.root.iteratePostOrder(func(node *Node[K, V]) bool {
			t.releaseNode(node)
			return false
		})
	}
	t.root = nil
	t.size = 0
}

// IteratePreOrder will iterate all values in this tree by first visiting each
// node's value, followed by the its left branch, and then its right branch.
// Iteration stops as soon as f returns true.
//
// This is useful when copying binary search trees, as inserting back in this
// order will guarantee the clone will have the exact same layout.
func (t *Tree[K, V]) IteratePreOrder(f func(key K, value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePreOrder(func(v *Node[K, V]) bool {
		return f(v.key, v.value)
	})
}

// IterateInOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its own value, and then its right branch.
// Iteration stops as soon as f returns true.
//
// This is useful when reading a tree's values in order, as this guarantees
// iterating them in a sorted order.
func (t *Tree[K, V]) IterateInOrder(f func(key K, value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iterateInOrder(func(v *Node[K, V]) bool {
		return f(v.key, v.value)
	})
}

// IteratePostOrder will iterate all values in this tree by first visiting each
// node's left branch, followed by the its right branch, and then its own value.
// Iteration stops as soon as f returns true.
//
// This is useful when deleting values from a tree, as this guarantees to always
// delete leaf nodes.
func (t *Tree[K, V]) IteratePostOrder(f func(key K, value V) bool) {
	if t.root == nil {
		return
	}
	t.root.iteratePostOrder(func(v *Node[K, V]) bool {
		return f(v.key, v.value)
	})
}

////////////////////////////////////////////////////////////////

func (t *Tree[K, V]) newNode(key K, value V) (node *Node[K, V]) {
	// Create tree node
	if t.pool != nil {
		node = t.pool.Get().(*Node[K, V])
		node.key = key
		node.value = value
	} else {
		node = &Node[K, V]{
			key:   key,
			value: value,
		}
	}
	return
}

func (t *Tree[K, V]) releaseNode(node *Node[K, V]) {
	// Clean up released node so it does not keep the tree reachable
	*node = Node[K, V]{}
	// Release tree node if pool is used
	if t.pool != nil {
		t.pool.Put(node)
	}
}
