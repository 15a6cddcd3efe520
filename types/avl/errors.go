package avl

import (
	"errors"
)

var (
	ErrorTreeNodeDuplicate = errors.New("tree node is duplicated")
	ErrorTreeNodeNotFound  = errors.New("tree node is not found")

	// Tree consistency errors reported by Check
	ErrorTreeCorrupted  = errors.New("tree is corrupted")
	ErrorTreeUnordered  = errors.New("tree keys are out of order")
	ErrorTreeUnbalanced = errors.New("tree is unbalanced")
	ErrorTreeHeight     = errors.New("tree node height is stale")
	ErrorTreeParent     = errors.New("tree node parent link is broken")
	ErrorTreeSize       = errors.New("tree size does not match node count")
)
