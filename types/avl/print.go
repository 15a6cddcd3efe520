package avl

import (
	"fmt"
	"io"
	"strings"
)

// branch tells the printer which side of its parent a node hangs on.
type branch int

const (
	branchRoot branch = iota
	branchLeft
	branchRight
)

// Print writes an ASCII picture of the tree to w, right subtrees on top.
// Each line shows key, height and the parent key.
func (t *Tree[K, V]) Print(w io.Writer) error {
	if t.root == nil {
		_, err := fmt.Fprintln(w, "<empty>")
		return err
	}
	return printNode(w, t.root, "", branchRoot)
}

// String returns the picture produced by Print.
func (t *Tree[K, V]) String() string {
	var sb strings.Builder
	_ = t.Print(&sb)
	return sb.String()
}

func printNode[K, V any](w io.Writer, n *Node[K, V], prefix string, br branch) error {
	if n.right != nil {
		indent := "       "
		if br == branchLeft {
			indent = "|      "
		}
		if err := printNode(w, n.right, prefix+indent, branchRight); err != nil {
			return err
		}
	}
	var edge string
	switch br {
	case branchRoot:
		edge = "|------+ "
	case branchLeft:
		edge = "\\------+ "
	case branchRight:
		edge = "/------+ "
	}
	var err error
	if n.parent != nil {
		_, err = fmt.Fprintf(w, "%s%s%v h=%d ^%v\n", prefix, edge, n.key, n.height, n.parent.key)
	} else {
		_, err = fmt.Fprintf(w, "%s%s%v h=%d\n", prefix, edge, n.key, n.height)
	}
	if err != nil {
		return err
	}
	if n.left != nil {
		indent := "       "
		if br == branchRight {
			indent = "|      "
		}
		return printNode(w, n.left, prefix+indent, branchLeft)
	}
	return nil
}
