package collections

import "fmt"

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

func NewHashMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

func (m *hashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

// Put refuses to overwrite an existing key unless forced.
func (m *hashMap[K, V]) Put(k K, v V, forced bool) error {
	if !forced && m.Contains(k) {
		return fmt.Errorf("%w: key %v", ErrValueExisted, k)
	}
	m.entries[k] = v
	return nil
}

func (m *hashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, fmt.Errorf("%w: key %v", ErrValueNotExisted, k)
	}
	return v, nil
}

func (m *hashMap[K, V]) GetOrDefault(k K, def V) V {
	if v, ok := m.entries[k]; ok {
		return v
	}
	return def
}

func (m *hashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return fmt.Errorf("%w: key %v", ErrValueNotExisted, k)
	}
	delete(m.entries, k)
	return nil
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Keys() []K {
	arr := make([]K, 0, m.Size())
	for k := range m.entries {
		arr = append(arr, k)
	}
	return arr
}

func (m *hashMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, v := range m.entries {
		arr = append(arr, v)
	}
	return arr
}
