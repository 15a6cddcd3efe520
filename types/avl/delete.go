package avl

// Delete removes the entry stored in node n from the tree.
//
// Entries with children are removed by moving key and value of a child
// (or of the in-order successor) into n and deleting that node instead,
// so only leaves are ever detached physically.
// The node must belong to the tree.
func (t *Tree[K, V]) Delete(n *Node[K, V]) {
	switch {
	case n.left != nil && n.right == nil:
		// Single child: left
		n.key, n.value = n.left.key, n.left.value
		t.Delete(n.left)
		n.fixHeight()
	case n.left == nil && n.right != nil:
		// Single child: right
		n.key, n.value = n.right.key, n.right.value
		t.Delete(n.right)
		n.fixHeight()
	case n.left != nil && n.right != nil:
		// Two children
		successor := n.right.MostLeft()
		n.key, n.value = successor.key, successor.value
		parent := successor.parent
		t.Delete(successor)
		t.rebalance(parent)
	default:
		// Leaf node
		parent := n.parent
		if parent != nil {
			if parent.left == n {
				parent.left = nil
			} else {
				parent.right = nil
			}
			t.rebalance(parent)
		} else if t.root == n {
			t.root = nil
		}
		t.size--
		t.releaseNode(n)
	}
}

// Remove removes a node with given key from the tree and returns its value.
func (t *Tree[K, V]) Remove(key K) (value V, err error) {
	node := t.Find(key)
	if node == nil {
		err = ErrorTreeNodeNotFound
		return
	}
	value = node.value
	t.Delete(node)
	return
}
