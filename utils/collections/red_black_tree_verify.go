package collections

import "fmt"

// Verify walks the whole tree level by level and reports the first broken
// red-black or binary-search-tree property.
func (t *redBlackTree[V]) Verify() error {
	if t.root == nil {
		if t.size != 0 {
			return fmt.Errorf("%w: empty tree reports size %d", ErrTreeCorrupted, t.size)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root %v has a parent", ErrTreeCorrupted, t.root.key)
	}
	if t.root.color != black {
		return fmt.Errorf("%w: root %v is red", ErrTreeCorrupted, t.root.key)
	}
	count := 0
	q := NewQueue[*rbNode[V]]()
	q.Push(t.root)
	for q.Size() > 0 {
		n := q.Pop()
		count++
		for _, child := range []*rbNode[V]{n.left, n.right} {
			if child == nil {
				continue
			}
			if child.parent != n {
				return fmt.Errorf("%w: parent link of %v does not point to %v", ErrTreeCorrupted, child.key, n.key)
			}
			if n.color == red && child.color == red {
				return fmt.Errorf("%w: red node %v has red child %v", ErrTreeCorrupted, n.key, child.key)
			}
			q.Push(child)
		}
		if n.left != nil && t.compare(n.left.key, n.key) >= 0 {
			return fmt.Errorf("%w: left child %v not less than %v", ErrTreeCorrupted, n.left.key, n.key)
		}
		if n.right != nil && t.compare(n.right.key, n.key) <= 0 {
			return fmt.Errorf("%w: right child %v not greater than %v", ErrTreeCorrupted, n.right.key, n.key)
		}
	}
	if count != t.size {
		return fmt.Errorf("%w: %d reachable nodes but size %d", ErrTreeCorrupted, count, t.size)
	}
	// local child ordering does not rule out a key on the wrong side of a
	// distant ancestor, the ascending walk does
	keys := t.Keys()
	for i := 1; i < len(keys); i++ {
		if t.compare(keys[i-1], keys[i]) >= 0 {
			return fmt.Errorf("%w: keys %v and %v out of order", ErrTreeCorrupted, keys[i-1], keys[i])
		}
	}
	if _, err := blackHeight(t.root); err != nil {
		return err
	}
	return nil
}

// blackHeight counts black nodes from n down to any nil leaf, n included.
func blackHeight[V any](n *rbNode[V]) (int, error) {
	if n == nil {
		return 0, nil
	}
	left, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	right, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if left != right {
		return 0, fmt.Errorf("%w: black heights %d and %d differ below %v", ErrTreeCorrupted, left, right, n.key)
	}
	if n.color == black {
		left++
	}
	return left, nil
}
