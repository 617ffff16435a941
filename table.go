package robinhood

import (
	"hash/maphash"

	"go.uber.org/zap"
)

// Capacity the table starts with and never shrinks below.
const minCapacity = 2

// table is an open-addressing hash table with Robin Hood displacement and
// tombstone deletion. Capacity is always a power of two and, once any
// mutating call returns, size*2 <= capacity <= size*4 holds (apart from the
// minimum capacity floor).
//
// Tombstones are never reused in place: insert only stops on an empty slot.
// To keep at least one empty slot on every probe sequence, the table is
// compacted once live entries and tombstones together take three quarters
// of the slots.
type table[K comparable, V any] struct {
	slots []slot[K, V]
	mask  uint64

	size       int
	tombstones int
	rebuilds   int

	hashFunc HashFunc[K]
	logger   *zap.Logger
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// WithLogger sets the logger rebuilds are reported to at debug level.
func WithLogger[K comparable, V any](logger *zap.Logger) Option[K, V] {
	return func(t *table[K, V]) {
		t.logger = logger
	}
}

func (t *table[K, V]) init(opts ...Option[K, V]) {
	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}

	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	t.logger = t.logger.Named("robinhood")

	t.reset(minCapacity)
}

// reset replaces the slots with capacity empty ones.
func (t *table[K, V]) reset(capacity int) {
	t.slots = make([]slot[K, V], capacity)
	t.mask = uint64(capacity - 1)
	t.size = 0
	t.tombstones = 0
}

// Len returns the number of stored entries. Tombstones are not counted.
func (t *table[K, V]) Len() int {
	return t.size
}

func (t *table[K, V]) Empty() bool {
	return t.size == 0
}

// Cap returns the current number of slots.
func (t *table[K, V]) Cap() int {
	return len(t.slots)
}

// HashFunction returns the hash function the table was configured with.
func (t *table[K, V]) HashFunction() HashFunc[K] {
	return t.hashFunc
}

// Stats returns a snapshot of occupancy and probe lengths.
func (t *table[K, V]) Stats() Stats {
	return t.stats()
}

// Clear drops every entry and returns the table to its initial capacity.
func (t *table[K, V]) Clear() {
	from := len(t.slots)

	t.reset(minCapacity)
	t.rebuilds = 0

	if ce := t.logger.Check(zap.DebugLevel, "table cleared"); ce != nil {
		ce.Write(zap.Int("from", from))
	}
}

// Compact rebuilds the table at its current capacity, dropping all tombstones.
func (t *table[K, V]) Compact() {
	t.rebuild(len(t.slots))
}

// lookup returns the slot holding key, or -1 if the key is absent.
// The scan steps over tombstones and stops at the first empty slot.
func (t *table[K, V]) lookup(key K) int {
	var (
		mask = int(t.mask)
		pos  = homeSlot(t.hashFunc(key), t.mask)
	)

	for range len(t.slots) {
		s := &t.slots[pos]

		switch {
		case s.state == slotEmpty:
			return -1
		case s.state == slotOccupied && s.key == key:
			return pos
		}

		pos = (pos + 1) & mask
	}

	return -1
}

// insert adds the pair unless key is already present, in which case nothing
// changes. Returns whether the pair was added.
func (t *table[K, V]) insert(key K, value V) bool {
	var (
		mask = int(t.mask)
		pos  = homeSlot(t.hashFunc(key), t.mask)
		cur  = slot[K, V]{key: key, value: value, psl: 1, state: slotOccupied}
	)

	for range len(t.slots) {
		s := &t.slots[pos]

		if s.state == slotEmpty {
			*s = cur
			t.size++
			t.afterInsert()

			return true
		}

		if s.state == slotOccupied {
			// Only the inserted key can match here: once swapped out, cur
			// carries a key that was just removed from the table.
			if s.key == cur.key {
				return false
			}

			// Robin Hood: the entry closer to its home slot moves on.
			if s.psl < cur.psl {
				*s, cur = cur, *s
			}
		}

		pos = (pos + 1) & mask
		cur.psl++
	}

	panic("robinhood: probe sequence has no empty slot")
}

func (t *table[K, V]) afterInsert() {
	capacity := len(t.slots)

	if t.size*2 >= capacity || (t.size+t.tombstones)*4 >= capacity*3 {
		t.resize()
	}
}

// erase turns the slot holding key into a tombstone.
// Returns whether the key was present.
func (t *table[K, V]) erase(key K) bool {
	pos := t.lookup(key)
	if pos < 0 {
		return false
	}

	t.slots[pos] = slot[K, V]{state: slotTombstone}
	t.size--
	t.tombstones++

	if t.size*4 < len(t.slots) {
		t.resize()
	}

	return true
}

// ref returns a pointer to the value stored under key, inserting the zero
// value first if the key is absent. The insert may rebuild the table.
func (t *table[K, V]) ref(key K) *V {
	pos := t.lookup(key)
	if pos < 0 {
		var zero V
		t.insert(key, zero)

		pos = t.lookup(key)
	}

	return &t.slots[pos].value
}

// resize picks the capacity for a rebuild from the current size: double when
// at least half full, halve when less than a quarter full, keep otherwise.
func (t *table[K, V]) resize() {
	capacity := len(t.slots)

	switch {
	case t.size*2 >= capacity:
		capacity *= 2
	case t.size*4 < capacity:
		capacity = max(capacity/2, minCapacity)
	}

	t.rebuild(capacity)
}

// rebuild rehashes every live entry into capacity fresh slots.
//
// Reinsertion goes through insert and could in principle trigger another
// rebuild, but it never does: capacity is chosen for the pre-drain size,
// which is exactly the size reached once every entry is back.
func (t *table[K, V]) rebuild(capacity int) {
	live := make([]Pair[K, V], 0, t.size)
	for pos := t.seek(0); pos < len(t.slots); pos = t.next(pos) {
		live = append(live, Pair[K, V]{Key: t.slots[pos].key, Value: t.slots[pos].value})
	}

	from, tombstones := len(t.slots), t.tombstones

	t.reset(capacity)
	for _, p := range live {
		t.insert(p.Key, p.Value)
	}
	t.rebuilds++

	if ce := t.logger.Check(zap.DebugLevel, "table rebuilt"); ce != nil {
		ce.Write(
			zap.Int("size", t.size),
			zap.Int("from", from),
			zap.Int("to", capacity),
			zap.Int("tombstones", tombstones),
		)
	}
}

// seek returns the first occupied slot at or after pos, or len(slots).
func (t *table[K, V]) seek(pos int) int {
	for pos < len(t.slots) && t.slots[pos].state != slotOccupied {
		pos++
	}

	return pos
}

// next returns the occupied slot following pos. The end position maps to itself.
func (t *table[K, V]) next(pos int) int {
	if pos >= len(t.slots) {
		return len(t.slots)
	}

	return t.seek(pos + 1)
}
