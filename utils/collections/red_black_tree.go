package collections

import (
	"fmt"

	"github.com/MarquessV/marquess-lib/utils/math"
	"golang.org/x/exp/constraints"
)

// OrderedSet is a set of unique keys kept in sorted order.
// Implementations are not safe for concurrent use.
type OrderedSet[V any] interface {
	Insert(v V) bool
	Remove(v V) bool
	Find(v V) bool
	Size() int
	Height() int
	// Dump lists every key with its color, parents before children
	// (pre-order).
	Dump() []ColoredValue[V]
	// InOrder lists every key with its color in ascending key order.
	InOrder() []ColoredValue[V]
	Keys() []V
	Min() (V, bool)
	Max() (V, bool)
	Successor(v V) (V, bool)
	Predecessor(v V) (V, bool)
	Clear()
	Verify() error
}

// CompareFunc returns a negative number when a < b, zero when a == b and a
// positive number when a > b.
type CompareFunc[V any] func(a, b V) int

func Compare[V constraints.Ordered](a, b V) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}

type redBlackTree[V any] struct {
	root    *rbNode[V]
	size    int
	compare CompareFunc[V]
}

// NewRedBlackTree returns a red-black tree seeded with values, inserted in
// order. Duplicates after the first occurrence are dropped.
func NewRedBlackTree[V constraints.Ordered](values ...V) OrderedSet[V] {
	return NewRedBlackTreeFunc[V](Compare[V], values...)
}

func NewRedBlackTreeFunc[V any](cmp CompareFunc[V], values ...V) OrderedSet[V] {
	t := &redBlackTree[V]{
		compare: cmp,
	}
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

func NewRedBlackTreeFromVector[V constraints.Ordered](vec Vector[V]) OrderedSet[V] {
	return NewRedBlackTree(vec.Entries()...)
}

func (t *redBlackTree[V]) Insert(v V) bool {
	var parent *rbNode[V]
	curr := t.root
	c := 0
	for curr != nil {
		parent = curr
		c = t.compare(v, curr.key)
		switch {
		case c == 0:
			return false
		case c < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}
	n := &rbNode[V]{
		key:    v,
		color:  red,
		parent: parent,
	}
	switch {
	case parent == nil:
		t.root = n
	case c < 0:
		parent.left = n
	default:
		parent.right = n
	}
	t.size++
	t.insertRepair(n)
	return true
}

func (t *redBlackTree[V]) insertRepair(n *rbNode[V]) {
	for {
		parent := n.parent
		// n is the root
		if parent == nil {
			n.color = black
			t.root = n
			return
		}
		if parent.color == black {
			return
		}
		// a red parent is never the root, so the grandparent exists
		grandparent := parent.parent
		uncle := n.uncle()
		if isBlack(uncle) {
			// move n to the outside first
			if parent == grandparent.left && n == parent.right {
				t.rotateLeft(parent)
				n, parent = parent, n
			} else if parent == grandparent.right && n == parent.left {
				t.rotateRight(parent)
				n, parent = parent, n
			}
			if n == parent.left {
				t.rotateRight(grandparent)
			} else {
				t.rotateLeft(grandparent)
			}
			parent.color = black
			grandparent.color = red
			return
		}
		parent.color = black
		uncle.color = black
		grandparent.color = red
		n = grandparent
	}
}

func (t *redBlackTree[V]) Remove(v V) bool {
	curr := t.lookup(v)
	if curr == nil {
		return false
	}
	if t.size == 1 {
		t.root = nil
		t.size = 0
		return true
	}
	if curr.left != nil && curr.right != nil {
		pred := curr.predecessor()
		curr.key = pred.key
		curr = pred
	}
	// curr has at most one child from here on
	child := curr.left
	if child == nil {
		child = curr.right
	}
	if curr.color == black {
		if isBlack(child) {
			// a black node with a single black child cannot exist, so child
			// is nil and curr itself carries the missing black while it is
			// still linked
			if child != nil {
				corrupted("black node %v has a single black child", curr.key)
			}
			t.removeRepair(curr)
		} else {
			child.color = black
		}
	}
	t.replace(curr, child)
	curr.parent, curr.left, curr.right = nil, nil, nil
	t.size--
	return true
}

// removeRepair resolves the black-height deficit at n, which is still
// linked into the tree.
func (t *redBlackTree[V]) removeRepair(n *rbNode[V]) {
	for {
		parent := n.parent
		if parent == nil {
			n.color = black
			t.root = n
			return
		}
		sibling := n.sibling()
		if sibling == nil {
			corrupted("node %v carries a black deficit but has no sibling", n.key)
		}
		if sibling.color == red {
			parent.color = red
			sibling.color = black
			if n == parent.left {
				t.rotateLeft(parent)
				sibling = parent.right
			} else {
				t.rotateRight(parent)
				sibling = parent.left
			}
			if sibling == nil {
				corrupted("node %v lost its sibling after rotation", n.key)
			}
		}
		if isBlack(sibling.left) && isBlack(sibling.right) {
			sibling.color = red
			if parent.color == black {
				n = parent
				continue
			}
			parent.color = black
			return
		}
		var near, far *rbNode[V]
		if n == parent.left {
			near, far = sibling.left, sibling.right
		} else {
			near, far = sibling.right, sibling.left
		}
		if isBlack(far) {
			// near is red here
			sibling.color = red
			near.color = black
			if n == parent.left {
				t.rotateRight(sibling)
			} else {
				t.rotateLeft(sibling)
			}
			far = sibling
			sibling = near
		}
		sibling.color = parent.color
		parent.color = black
		far.color = black
		if n == parent.left {
			t.rotateLeft(parent)
		} else {
			t.rotateRight(parent)
		}
		return
	}
}

// replace puts child in the slot n occupies under its parent, or at the root.
func (t *redBlackTree[V]) replace(n, child *rbNode[V]) {
	parent := n.parent
	switch {
	case parent == nil:
		t.root = child
	case parent.left == n:
		parent.left = child
	default:
		parent.right = child
	}
	if child != nil {
		child.parent = parent
	}
}

func (t *redBlackTree[V]) rotateLeft(x *rbNode[V]) {
	y := x.right
	if y == nil {
		corrupted("left rotation of %v without right child", x.key)
	}
	t.replace(x, y)
	x.right = y.left
	if x.right != nil {
		x.right.parent = x
	}
	y.left = x
	x.parent = y
}

func (t *redBlackTree[V]) rotateRight(x *rbNode[V]) {
	y := x.left
	if y == nil {
		corrupted("right rotation of %v without left child", x.key)
	}
	t.replace(x, y)
	x.left = y.right
	if x.left != nil {
		x.left.parent = x
	}
	y.right = x
	x.parent = y
}

func (t *redBlackTree[V]) lookup(v V) *rbNode[V] {
	curr := t.root
	for curr != nil {
		c := t.compare(v, curr.key)
		switch {
		case c == 0:
			return curr
		case c < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}
	return nil
}

func (t *redBlackTree[V]) Find(v V) bool {
	return t.lookup(v) != nil
}

func (t *redBlackTree[V]) Size() int {
	return t.size
}

func (t *redBlackTree[V]) Height() int {
	return height(t.root)
}

func height[V any](n *rbNode[V]) int {
	if n == nil {
		return -1
	}
	return 1 + math.Max(height(n.left), height(n.right))
}

// Dump threads each left subtree's rightmost node back to its ancestor to
// walk without a stack. Every thread is removed again before returning.
func (t *redBlackTree[V]) Dump() []ColoredValue[V] {
	out := make([]ColoredValue[V], 0, t.size)
	curr := t.root
	for curr != nil {
		if curr.left == nil {
			out = append(out, ColoredValue[V]{Value: curr.key, IsBlack: curr.color == black})
			curr = curr.right
			continue
		}
		pre := curr.left
		for pre.right != nil && pre.right != curr {
			pre = pre.right
		}
		if pre.right == nil {
			pre.right = curr
			out = append(out, ColoredValue[V]{Value: curr.key, IsBlack: curr.color == black})
			curr = curr.left
		} else {
			pre.right = nil
			curr = curr.right
		}
	}
	return out
}

func (t *redBlackTree[V]) InOrder() []ColoredValue[V] {
	out := make([]ColoredValue[V], 0, t.size)
	t.walk(func(n *rbNode[V]) {
		out = append(out, ColoredValue[V]{Value: n.key, IsBlack: n.color == black})
	})
	return out
}

func (t *redBlackTree[V]) Keys() []V {
	out := make([]V, 0, t.size)
	t.walk(func(n *rbNode[V]) {
		out = append(out, n.key)
	})
	return out
}

// walk visits nodes in ascending order.
func (t *redBlackTree[V]) walk(visit func(n *rbNode[V])) {
	s := NewStack[*rbNode[V]]()
	curr := t.root
	for curr != nil || s.Size() > 0 {
		for curr != nil {
			s.Push(curr)
			curr = curr.left
		}
		curr = s.Pop()
		visit(curr)
		curr = curr.right
	}
}

func (t *redBlackTree[V]) Min() (v V, ok bool) {
	if t.root == nil {
		return v, false
	}
	return t.root.minimum().key, true
}

func (t *redBlackTree[V]) Max() (v V, ok bool) {
	if t.root == nil {
		return v, false
	}
	return t.root.maximum().key, true
}

func (t *redBlackTree[V]) Successor(v V) (ret V, ok bool) {
	var best *rbNode[V]
	curr := t.root
	for curr != nil {
		if t.compare(v, curr.key) < 0 {
			best = curr
			curr = curr.left
		} else {
			curr = curr.right
		}
	}
	if best == nil {
		return ret, false
	}
	return best.key, true
}

func (t *redBlackTree[V]) Predecessor(v V) (ret V, ok bool) {
	var best *rbNode[V]
	curr := t.root
	for curr != nil {
		if t.compare(v, curr.key) > 0 {
			best = curr
			curr = curr.right
		} else {
			curr = curr.left
		}
	}
	if best == nil {
		return ret, false
	}
	return best.key, true
}

func (t *redBlackTree[V]) Clear() {
	t.root = nil
	t.size = 0
}

func (t *redBlackTree[V]) String() string {
	return fmt.Sprint(t.Dump())
}
