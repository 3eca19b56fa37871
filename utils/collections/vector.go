package collections

import (
	"fmt"

	"github.com/MarquessV/marquess-lib/utils/math"
)

// Vector is a growable indexed sequence. Capacity doubles once the size
// reaches it and halves once the size drops to a quarter of it.
type Vector[V any] interface {
	PushBack(v V)
	Pop() (V, error)
	At(i int) (V, error)
	Set(i int, v V) error
	Insert(i int, v V) error
	RemoveAt(i int) (V, error)
	RemoveFunc(match func(V) bool) int
	Find(match func(V) bool) int
	Size() int
	Capacity() int
	Empty() bool
	Entries() []V
}

type vector[V any] struct {
	entries []V
}

// NewVector copies values into a vector whose capacity equals their count.
func NewVector[V any](values ...V) Vector[V] {
	entries := make([]V, len(values), math.Max(len(values), 1))
	copy(entries, values)
	return &vector[V]{
		entries: entries,
	}
}

// NewVectorOfSize returns n copies of fill with room for 2n.
func NewVectorOfSize[V any](n int, fill V) Vector[V] {
	entries := make([]V, n, math.Max(2*n, 1))
	for i := range entries {
		entries[i] = fill
	}
	return &vector[V]{
		entries: entries,
	}
}

func (s *vector[V]) resize(capacity int) {
	entries := make([]V, len(s.entries), capacity)
	copy(entries, s.entries)
	s.entries = entries
}

// grow keeps at least one free slot so append never reallocates on its own.
func (s *vector[V]) grow() {
	if len(s.entries) >= cap(s.entries) {
		s.resize(2 * math.Max(cap(s.entries), 1))
	}
}

func (s *vector[V]) shrink() {
	c := cap(s.entries)
	if c > 1 && len(s.entries) <= math.DivFloor(c, 4) {
		s.resize(math.Max(math.DivFloor(c, 2), 1))
	}
}

func (s *vector[V]) checkIndex(i, size int) error {
	if i < 0 || i >= size {
		return fmt.Errorf("%w: %d (size %d)", ErrIndexOutOfRange, i, len(s.entries))
	}
	return nil
}

func (s *vector[V]) PushBack(v V) {
	s.grow()
	s.entries = append(s.entries, v)
	s.grow()
}

func (s *vector[V]) Pop() (v V, err error) {
	n := len(s.entries)
	if n == 0 {
		return v, ErrEmpty
	}
	v = s.entries[n-1]
	var zero V
	s.entries[n-1] = zero
	s.entries = s.entries[:n-1]
	s.shrink()
	return v, nil
}

func (s *vector[V]) At(i int) (v V, err error) {
	if err = s.checkIndex(i, len(s.entries)); err != nil {
		return v, err
	}
	return s.entries[i], nil
}

func (s *vector[V]) Set(i int, v V) error {
	if err := s.checkIndex(i, len(s.entries)); err != nil {
		return err
	}
	s.entries[i] = v
	return nil
}

// Insert places v at index i, shifting later entries right. i may equal
// Size() to append.
func (s *vector[V]) Insert(i int, v V) error {
	if err := s.checkIndex(i, len(s.entries)+1); err != nil {
		return err
	}
	var zero V
	s.grow()
	s.entries = append(s.entries, zero)
	copy(s.entries[i+1:], s.entries[i:])
	s.entries[i] = v
	s.grow()
	return nil
}

func (s *vector[V]) RemoveAt(i int) (v V, err error) {
	if err = s.checkIndex(i, len(s.entries)); err != nil {
		return v, err
	}
	v = s.entries[i]
	n := len(s.entries)
	copy(s.entries[i:], s.entries[i+1:])
	var zero V
	s.entries[n-1] = zero
	s.entries = s.entries[:n-1]
	s.shrink()
	return v, nil
}

// RemoveFunc drops every entry matching and returns how many were dropped.
func (s *vector[V]) RemoveFunc(match func(V) bool) int {
	kept := 0
	for _, v := range s.entries {
		if !match(v) {
			s.entries[kept] = v
			kept++
		}
	}
	removed := len(s.entries) - kept
	var zero V
	for i := kept; i < len(s.entries); i++ {
		s.entries[i] = zero
	}
	s.entries = s.entries[:kept]
	s.shrink()
	return removed
}

func (s *vector[V]) Find(match func(V) bool) int {
	for i, v := range s.entries {
		if match(v) {
			return i
		}
	}
	return -1
}

func (s *vector[V]) Size() int {
	return len(s.entries)
}

func (s *vector[V]) Capacity() int {
	return cap(s.entries)
}

func (s *vector[V]) Empty() bool {
	return len(s.entries) == 0
}

func (s *vector[V]) Entries() []V {
	arr := make([]V, len(s.entries))
	copy(arr, s.entries)
	return arr
}

func (s vector[V]) String() string {
	return fmt.Sprint(s.entries)
}
