package avl

import (
	"fmt"
)

// Check walks the whole tree and verifies that keys are ordered, heights are
// cached correctly, every node is balanced, parent links are consistent
// and size matches the number of nodes.
func (t *Tree[K, V]) Check() error {
	if t.root != nil && t.root.parent != nil {
		return fmt.Errorf("%w: root %v has parent %v", ErrorTreeParent, t.root.key, t.root.parent.key)
	}
	count, _, err := t.check(t.root, nil, nil)
	if err != nil {
		return err
	}
	if count != t.size {
		return fmt.Errorf("%w: size %d, nodes %d", ErrorTreeSize, t.size, count)
	}
	return nil
}

// check returns node count and height of the subtree rooted at n whose keys
// must lay strictly between lower and upper bounds (nil means unbounded).
func (t *Tree[K, V]) check(n, lower, upper *Node[K, V]) (count int, height int, err error) {
	if n == nil {
		return 0, -1, nil
	}
	if lower != nil && t.compare(n.key, lower.key) <= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not after %v", ErrorTreeUnordered, n.key, lower.key)
	}
	if upper != nil && t.compare(n.key, upper.key) >= 0 {
		return 0, 0, fmt.Errorf("%w: %v is not before %v", ErrorTreeUnordered, n.key, upper.key)
	}
	for _, child := range []*Node[K, V]{n.left, n.right} {
		if child != nil && child.parent != n {
			return 0, 0, fmt.Errorf("%w: child %v of %v", ErrorTreeParent, child.key, n.key)
		}
	}
	leftCount, leftHeight, err := t.check(n.left, lower, n)
	if err != nil {
		return 0, 0, err
	}
	rightCount, rightHeight, err := t.check(n.right, n, upper)
	if err != nil {
		return 0, 0, err
	}
	height = 1 + max(leftHeight, rightHeight)
	if n.height != height {
		return 0, 0, fmt.Errorf("%w: %v has %d, want %d", ErrorTreeHeight, n.key, n.height, height)
	}
	if diff := leftHeight - rightHeight; diff > 1 || diff < -1 {
		return 0, 0, fmt.Errorf("%w: %v has balance factor %d", ErrorTreeUnbalanced, n.key, diff)
	}
	return leftCount + rightCount + 1, height, nil
}
