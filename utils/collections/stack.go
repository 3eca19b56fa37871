package collections

import "fmt"

type Stack[V any] interface {
	Push(V)
	Pop() V
	Peek() V
	Size() int
}

// stack keeps its entries in a Vector, so a drained stack releases memory.
type stack[V any] struct {
	entries Vector[V]
}

func NewStack[V any]() Stack[V] {
	return &stack[V]{
		entries: NewVector[V](),
	}
}

func (s *stack[V]) Push(v V) {
	s.entries.PushBack(v)
}

// Pop returns the zero value on an empty stack.
func (s *stack[V]) Pop() V {
	v, _ := s.entries.Pop()
	return v
}

func (s *stack[V]) Peek() (v V) {
	n := s.entries.Size()
	if n == 0 {
		return v
	}
	v, _ = s.entries.At(n - 1)
	return v
}

func (s *stack[V]) Size() int {
	return s.entries.Size()
}

func (s stack[V]) String() string {
	return fmt.Sprint(s.entries.Entries())
}
