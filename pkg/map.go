package pkg

type Map[K comparable, V any] map[K]V

func (m Map[K, V]) Get(key K) V {
	return m[key]
}

func (m Map[K, V]) Set(key K, value V) {
	m[key] = value
}

func (m Map[K, V]) Has(key K) bool {
	_, ok := m[key]
	return ok
}

// InsertSortMap is a map that remembers insertion order.
// Replacing a key with Set keeps its original position.
type InsertSortMap[K comparable, V any] struct {
	Idx    Map[K, V]
	Sorted []K
}

func NewInsertSortMap[K comparable, V any]() *InsertSortMap[K, V] {
	return &InsertSortMap[K, V]{Idx: Map[K, V]{}, Sorted: []K{}}
}

func (m *InsertSortMap[K, V]) Len() int { return len(m.Sorted) }

func (m *InsertSortMap[K, V]) Get(key K) V { return m.Idx.Get(key) }

func (m *InsertSortMap[K, V]) Has(key K) bool { return m.Idx.Has(key) }

func (m *InsertSortMap[K, V]) Set(key K, value V) {
	if !m.Idx.Has(key) {
		m.Sorted = append(m.Sorted, key)
	}
	m.Idx.Set(key, value)
}

// Values returns the stored values in insertion order.
func (m *InsertSortMap[K, V]) Values() []V {
	values := make([]V, 0, len(m.Sorted))
	for _, k := range m.Sorted {
		values = append(values, m.Idx.Get(k))
	}
	return values
}
