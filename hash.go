package robinhood

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

// MakeDefaultHashFunc returns the hash function used when none is given.
// It hashes any comparable key with the runtime hasher under the given seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// StringHashFunc returns a seed-free xxhash64 hash function for string keys.
// Slot order of a table using it is the same across processes.
func StringHashFunc() HashFunc[string] {
	return xxhash.Sum64String
}

// homeSlot maps a hash to a slot index. mask must be capacity-1 of a
// power-of-two capacity, which makes this hash mod capacity.
func homeSlot(hash uint64, mask uint64) int {
	return int(hash & mask)
}
