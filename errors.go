package robinhood

import (
	"errors"
	"fmt"
)

// ErrKeyNotFound is matched by every *KeyNotFoundError.
var ErrKeyNotFound = errors.New("robinhood: key not found")

// KeyNotFoundError is returned by At when the key is absent.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("robinhood: key not found: %v", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
