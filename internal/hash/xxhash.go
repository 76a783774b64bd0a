package hash

import "github.com/cespare/xxhash/v2"

// XXHasher - Internally provided hasher creating a hash value using 64-bit xxHash over a tagged encoding
// of the key. It spreads keys over the full 64 bits, which the 32-bit CRC32Hasher can not.
type XXHasher[K any] struct{}

// NewXXHasher - Returns a pointer to a new XXHasher instance
func NewXXHasher[K any]() *XXHasher[K] {
	return &XXHasher[K]{}
}

// Hash - Given key it generates a hash value, or an error of type adt.TypeMismatch for unsupported key types
func (X *XXHasher[K]) Hash(key K) (uint64, error) {
	return hashKey(any(key), xxhash.Sum64)
}

// Equal - Returns true if a and b are the same key
func (X *XXHasher[K]) Equal(a, b K) (bool, error) {
	return equalKeys(any(a), any(b))
}
