package robinhood

import (
	"iter"

	"go.uber.org/zap"
)

// Set is a set-like data structure over the same Robin Hood table as Map.
// It only stores keys; growth, shrinking and tombstone handling are shared
// with Map.
type Set[K comparable] struct {
	table[K, struct{}]
}

// WithSetHashFunc overrides the default hash function of a set.
func WithSetHashFunc[K comparable](f HashFunc[K]) Option[K, struct{}] {
	return WithHashFunc[K, struct{}](f)
}

func WithSetLogger[K comparable](logger *zap.Logger) Option[K, struct{}] {
	return WithLogger[K, struct{}](logger)
}

func NewSet[K comparable](opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(opts...)

	return &s
}

// Puts a key in the set. Returns whether the key is new.
func (s *Set[K]) Put(key K) bool {
	return s.insert(key, struct{}{})
}

func (s *Set[K]) Has(key K) bool {
	return s.lookup(key) >= 0
}

// Deletes a key from the set. Returns whether it was present.
func (s *Set[K]) Delete(key K) bool {
	return s.erase(key)
}

// Reset removes every key, returning the set to its initial capacity.
func (s *Set[K]) Reset() {
	s.Clear()
}

// All yields the keys in slot order.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		for pos := s.seek(0); pos < len(s.slots); pos = s.next(pos) {
			if !yield(s.slots[pos].key) {
				return
			}
		}
	}
}
