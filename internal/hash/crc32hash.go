package hash

import "hash/crc32"

// CRC32Hasher - The default internally used hasher. It creates a hash value using crc32.ChecksumIEEE over
// a tagged encoding of the key. Keys implementing hashfunc.Hashable are hashed by their own Hash method.
type CRC32Hasher[K any] struct{}

// NewCRC32Hasher - Returns a pointer to a new CRC32Hasher instance
func NewCRC32Hasher[K any]() *CRC32Hasher[K] {
	return &CRC32Hasher[K]{}
}

// Hash - Given key it generates a hash value, or an error of type adt.TypeMismatch for unsupported key types
func (C *CRC32Hasher[K]) Hash(key K) (uint64, error) {
	return hashKey(any(key), crc32Sum)
}

// Equal - Returns true if a and b are the same key
func (C *CRC32Hasher[K]) Equal(a, b K) (bool, error) {
	return equalKeys(any(a), any(b))
}

// crc32Sum - Widens the IEEE checksum of buf to 64 bits
func crc32Sum(buf []byte) uint64 {
	return uint64(crc32.ChecksumIEEE(buf))
}
