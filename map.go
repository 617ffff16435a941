package robinhood

import "iter"

// Map is an unordered associative container backed by a Robin Hood hash table.
// It grows and shrinks with its contents, keeping between a quarter and a
// half of its slots occupied.
//
// Map is not safe for concurrent use.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new empty map.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(opts...)

	return &m
}

// NewFrom returns a map holding the given pairs. If a key repeats, its first
// occurrence wins.
func NewFrom[K comparable, V any](pairs []Pair[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(opts...)
	for _, p := range pairs {
		m.insert(p.Key, p.Value)
	}

	return m
}

// Collect returns a map holding the pairs yielded by seq, first occurrence
// of a key winning.
func Collect[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New(opts...)
	for k, v := range seq {
		m.insert(k, v)
	}

	return m
}

// Insert adds the pair if key is absent. An existing value is never
// overwritten. Returns whether the pair was added.
func (m *Map[K, V]) Insert(key K, value V) bool {
	return m.insert(key, value)
}

// Erase removes key. Returns whether it was present.
func (m *Map[K, V]) Erase(key K) bool {
	return m.erase(key)
}

// Find returns an iterator to key, or End() if it is absent.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	pos := m.lookup(key)
	if pos < 0 {
		return m.End()
	}

	return Iterator[K, V]{t: &m.table, pos: pos}
}

// At returns the value stored under key or a *KeyNotFoundError.
func (m *Map[K, V]) At(key K) (V, error) {
	return m.View().At(key)
}

// Ref returns a pointer to the value stored under key. An absent key is
// inserted with the zero value first, which may rebuild the map.
// The pointer is valid until the next mutation.
func (m *Map[K, V]) Ref(key K) *V {
	return m.ref(key)
}

// Get returns the value stored under key and whether it was found.
func (m *Map[K, V]) Get(key K) (V, bool) {
	return m.View().Get(key)
}

func (m *Map[K, V]) Contains(key K) bool {
	return m.lookup(key) >= 0
}

// Begin returns an iterator to the first entry in slot order.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	return Iterator[K, V]{t: &m.table, pos: m.seek(0)}
}

// End returns the past-the-last iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	return Iterator[K, V]{t: &m.table, pos: len(m.slots)}
}

// All yields every entry in slot order.
// The map must not be modified during the iteration.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.View().All()
}

func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// View returns a read-only handle to the map.
func (m *Map[K, V]) View() View[K, V] {
	return View[K, V]{t: &m.table}
}

// View is a read-only handle to a Map. It observes later changes to the map.
type View[K comparable, V any] struct {
	t *table[K, V]
}

func (v View[K, V]) Len() int {
	return v.t.Len()
}

func (v View[K, V]) Empty() bool {
	return v.t.Empty()
}

func (v View[K, V]) HashFunction() HashFunc[K] {
	return v.t.hashFunc
}

func (v View[K, V]) Begin() ConstIterator[K, V] {
	return ConstIterator[K, V]{t: v.t, pos: v.t.seek(0)}
}

func (v View[K, V]) End() ConstIterator[K, V] {
	return ConstIterator[K, V]{t: v.t, pos: len(v.t.slots)}
}

func (v View[K, V]) Find(key K) ConstIterator[K, V] {
	pos := v.t.lookup(key)
	if pos < 0 {
		return v.End()
	}

	return ConstIterator[K, V]{t: v.t, pos: pos}
}

func (v View[K, V]) At(key K) (V, error) {
	pos := v.t.lookup(key)
	if pos < 0 {
		var zero V
		return zero, &KeyNotFoundError{Key: key}
	}

	return v.t.slots[pos].value, nil
}

func (v View[K, V]) Get(key K) (V, bool) {
	pos := v.t.lookup(key)
	if pos < 0 {
		var zero V
		return zero, false
	}

	return v.t.slots[pos].value, true
}

func (v View[K, V]) Contains(key K) bool {
	return v.t.lookup(key) >= 0
}

func (v View[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for pos := v.t.seek(0); pos < len(v.t.slots); pos = v.t.next(pos) {
			s := &v.t.slots[pos]
			if !yield(s.key, s.value) {
				return
			}
		}
	}
}
