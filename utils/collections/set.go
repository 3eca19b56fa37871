package collections

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Set[V any] interface {
	Contains(v V) bool
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
	Clear()
}

// treeSet is a Set whose Entries come out in ascending order.
type treeSet[V any] struct {
	tree OrderedSet[V]
}

func NewTreeSet[V constraints.Ordered](values ...V) Set[V] {
	return &treeSet[V]{
		tree: NewRedBlackTree(values...),
	}
}

func NewTreeSetFunc[V any](cmp CompareFunc[V], values ...V) Set[V] {
	return &treeSet[V]{
		tree: NewRedBlackTreeFunc(cmp, values...),
	}
}

func (s *treeSet[V]) Contains(v V) bool {
	return s.tree.Find(v)
}

func (s *treeSet[V]) Add(v V) error {
	if !s.tree.Insert(v) {
		return fmt.Errorf("%w: %v", ErrValueExisted, v)
	}
	return nil
}

func (s *treeSet[V]) Remove(v V) error {
	if !s.tree.Remove(v) {
		return fmt.Errorf("%w: %v", ErrValueNotExisted, v)
	}
	return nil
}

func (s *treeSet[V]) Size() int {
	return s.tree.Size()
}

func (s *treeSet[V]) Entries() []V {
	return s.tree.Keys()
}

func (s *treeSet[V]) Clear() {
	s.tree.Clear()
}

func (s *treeSet[V]) String() string {
	return fmt.Sprint(s.tree.Keys())
}
