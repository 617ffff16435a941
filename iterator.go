package robinhood

// Iterator points at an occupied slot of a Map, or at its end position.
//
// Iterators are plain values: two of them are equal (also with ==) when they
// refer to the same table and slot. Any Insert, Erase, Ref, Compact or Clear
// on the map may rebuild it and invalidates every outstanding iterator.
type Iterator[K comparable, V any] struct {
	t   *table[K, V]
	pos int
}

// Valid reports whether the iterator points at an entry rather than the end.
func (it Iterator[K, V]) Valid() bool {
	return it.t != nil && it.pos < len(it.t.slots)
}

// Next advances to the next entry in slot order. Advancing End is a no-op.
func (it *Iterator[K, V]) Next() {
	it.pos = it.t.next(it.pos)
}

func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it == other
}

// Key panics when called on an end iterator.
func (it Iterator[K, V]) Key() K {
	return it.t.slots[it.pos].key
}

func (it Iterator[K, V]) Value() V {
	return it.t.slots[it.pos].value
}

// ValuePtr returns a pointer to the stored value, valid until the next
// mutation of the map.
func (it Iterator[K, V]) ValuePtr() *V {
	return &it.t.slots[it.pos].value
}

func (it Iterator[K, V]) SetValue(v V) {
	it.t.slots[it.pos].value = v
}

// ReadOnly converts the iterator into one that cannot modify values.
func (it Iterator[K, V]) ReadOnly() ConstIterator[K, V] {
	return ConstIterator[K, V]{t: it.t, pos: it.pos}
}

// ConstIterator is the read-only counterpart of Iterator.
type ConstIterator[K comparable, V any] struct {
	t   *table[K, V]
	pos int
}

func (it ConstIterator[K, V]) Valid() bool {
	return it.t != nil && it.pos < len(it.t.slots)
}

func (it *ConstIterator[K, V]) Next() {
	it.pos = it.t.next(it.pos)
}

func (it ConstIterator[K, V]) Equal(other ConstIterator[K, V]) bool {
	return it == other
}

func (it ConstIterator[K, V]) Key() K {
	return it.t.slots[it.pos].key
}

func (it ConstIterator[K, V]) Value() V {
	return it.t.slots[it.pos].value
}
