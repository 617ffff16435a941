package robinhood

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotTombstone
)

// slot is a single cell of the table.
// key, value and psl are only meaningful while the slot is occupied;
// erasing a slot zeroes them, so tombstones never hold stale keys.
type slot[K comparable, V any] struct {
	key   K
	value V

	// Probe sequence length: 1 when the entry sits in its home slot.
	psl uint32

	state slotState
}

// Pair is a single key/value entry, used for bulk construction.
type Pair[K comparable, V any] struct {
	Key   K
	Value V
}
