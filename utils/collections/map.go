package collections

type Map[K any, V any] interface {
	Contains(k K) bool
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	// GetOrDefault returns def when k is absent.
	GetOrDefault(k K, def V) V
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
}
