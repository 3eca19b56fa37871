package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Push(V)
	Pop() V
	Peek() V
	Size() int
}

// queue pops by advancing head and compacts once the dead prefix
// outgrows the live part.
type queue[V any] struct {
	entries []V
	head    int
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 0),
	}
}

func (s *queue[V]) Push(v V) {
	s.entries = append(s.entries, v)
}

func (s *queue[V]) Pop() (v V) {
	if s.Size() == 0 {
		return v
	}
	ret := s.entries[s.head]
	s.entries[s.head] = v
	s.head++
	if s.head > len(s.entries)-s.head {
		n := copy(s.entries, s.entries[s.head:])
		for i := n; i < len(s.entries); i++ {
			s.entries[i] = v
		}
		s.entries = s.entries[:n]
		s.head = 0
	}
	return ret
}

func (s *queue[V]) Peek() (v V) {
	if s.Size() == 0 {
		return v
	}
	return s.entries[s.head]
}

func (s *queue[V]) Size() int {
	return len(s.entries) - s.head
}

func (s queue[V]) String() string {
	return fmt.Sprint(s.entries[s.head:])
}
