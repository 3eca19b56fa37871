package collections

import "fmt"

type color bool

const (
	red   color = false
	black color = true
)

func (c color) String() string {
	if c == black {
		return "black"
	}
	return "red"
}

// rbNode links: left and right are owned by the node, parent is a back
// reference used only for walking up and for rotations.
type rbNode[V any] struct {
	key    V
	color  color
	parent *rbNode[V]
	left   *rbNode[V]
	right  *rbNode[V]
}

// nil children count as black leaves
func isBlack[V any](n *rbNode[V]) bool {
	return n == nil || n.color == black
}

func (n *rbNode[V]) sibling() *rbNode[V] {
	p := n.parent
	if p == nil {
		return nil
	}
	if p.left == n {
		return p.right
	}
	return p.left
}

func (n *rbNode[V]) uncle() *rbNode[V] {
	if n.parent == nil {
		return nil
	}
	return n.parent.sibling()
}

// predecessor is the maximum of the left subtree, n must have a left child.
func (n *rbNode[V]) predecessor() *rbNode[V] {
	if n.left == nil {
		corrupted("predecessor requested for node %v without left child", n.key)
	}
	curr := n.left
	for curr.right != nil {
		curr = curr.right
	}
	return curr
}

func (n *rbNode[V]) minimum() *rbNode[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *rbNode[V]) maximum() *rbNode[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// ColoredValue is one entry of a tree dump.
type ColoredValue[V any] struct {
	Value   V
	IsBlack bool
}

func (c ColoredValue[V]) String() string {
	if c.IsBlack {
		return fmt.Sprintf("(%v,b)", c.Value)
	}
	return fmt.Sprintf("(%v,r)", c.Value)
}

func corrupted(format string, args ...any) {
	panic(fmt.Sprintf("collections: red-black tree corrupted: "+format, args...))
}
