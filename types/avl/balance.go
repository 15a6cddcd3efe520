package avl

import (
	"fmt"
)

// balanceFactor is height of the left subtree minus height of the right one.
type balanceFactor int8

const (
	balanceHeavyRight balanceFactor = -2
	balanceRight      balanceFactor = -1
	balanceEven       balanceFactor = 0
	balanceLeft       balanceFactor = 1
	balanceHeavyLeft  balanceFactor = 2
)

// heightOf returns height of the subtree, missing subtree has height -1.
func heightOf[K, V any](n *Node[K, V]) int {
	if n == nil {
		return -1
	}
	return n.height
}

func (n *Node[K, V]) fixHeight() {
	n.height = 1 + max(heightOf(n.left), heightOf(n.right))
}

func (n *Node[K, V]) calcBalanceFactor() balanceFactor {
	diff := heightOf(n.left) - heightOf(n.right)
	if diff < int(balanceHeavyRight) || diff > int(balanceHeavyLeft) {
		panic(fmt.Errorf("%w: balance factor %d at key %v", ErrorTreeCorrupted, diff, n.key))
	}
	return balanceFactor(diff)
}

// replaceWith links node's parent to the given node instead of n.
func (n *Node[K, V]) replaceWith(node *Node[K, V]) {
	parent := n.parent
	node.parent = parent
	if parent == nil {
		return
	}
	if parent.left == n {
		parent.left = node
	} else {
		parent.right = node
	}
}

// rotateLeftLeft promotes the left child into n's place.
func (n *Node[K, V]) rotateLeftLeft() *Node[K, V] {
	newRoot := n.left
	n.replaceWith(newRoot)
	n.left = newRoot.right
	if n.left != nil {
		n.left.parent = n
	}
	newRoot.right = n
	n.parent = newRoot
	n.fixHeight()
	newRoot.fixHeight()
	return newRoot
}

// rotateRightRight promotes the right child into n's place.
func (n *Node[K, V]) rotateRightRight() *Node[K, V] {
	newRoot := n.right
	n.replaceWith(newRoot)
	n.right = newRoot.left
	if n.right != nil {
		n.right.parent = n
	}
	newRoot.left = n
	n.parent = newRoot
	n.fixHeight()
	newRoot.fixHeight()
	return newRoot
}

// rotateLeftRight promotes the right grandchild of the left child into n's place.
func (n *Node[K, V]) rotateLeftRight() *Node[K, V] {
	n.left.rotateRightRight()
	return n.rotateLeftLeft()
}

// rotateRightLeft promotes the left grandchild of the right child into n's place.
func (n *Node[K, V]) rotateRightLeft() *Node[K, V] {
	n.right.rotateLeftLeft()
	return n.rotateRightRight()
}

// rotate applies at most one rotation to n and returns root of the subtree.
func (n *Node[K, V]) rotate() *Node[K, V] {
	switch n.calcBalanceFactor() {
	case balanceHeavyLeft:
		if n.left.calcBalanceFactor() == balanceRight {
			return n.rotateLeftRight()
		}
		return n.rotateLeftLeft()
	case balanceHeavyRight:
		if n.right.calcBalanceFactor() == balanceLeft {
			return n.rotateRightLeft()
		}
		return n.rotateRightRight()
	}
	return n
}

// rebalance walks from n up to the root fixing heights and rotating heavy nodes.
func (t *Tree[K, V]) rebalance(n *Node[K, V]) {
	for n != nil {
		n.fixHeight()
		n = n.rotate()
		if n.parent == nil {
			t.root = n
		}
		n = n.parent
	}
}
