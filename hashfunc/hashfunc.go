package hashfunc

// Algorithm - Identifies one of the built-in hash algorithms
type Algorithm int

const (
	// CRC32 - Built-in hasher using crc32.ChecksumIEEE over an encoding of the key (default)
	CRC32 Algorithm = iota
	// XXHash64 - Built-in hasher using 64-bit xxHash over an encoding of the key
	XXHash64
)

// String - Returns the name of the algorithm
func (A Algorithm) String() string {
	switch A {
	case CRC32:
		return "crc32"
	case XXHash64:
		return "xxhash"
	default:
		return "unknown"
	}
}

// Hasher - Interface that permits a user of the dictionaries to supply a custom hash function and
// equivalence relation over keys. Keys stored in the same dictionary must be mutually hashable and comparable.
type Hasher[K any] interface {
	// Hash - Given key it returns a hash value. The dictionaries reduce it to a slot index themselves.
	// An error (preferably of type adt.TypeMismatch) should be returned if key can not be hashed,
	// it will be surfaced to the caller before any slot is touched.
	Hash(key K) (uint64, error)

	// Equal - Returns true if a and b are the same key. Two keys that are Equal must have the same Hash.
	Equal(a, b K) (bool, error)
}

// Hashable - Interface that lets a key type take part in the built-in hashers.
// A key implementing Hashable is hashed and compared by its own methods instead of by its encoding.
type Hashable interface {
	Hash() uint64
	Equal(other any) bool
}

// HasherFunc - Adapts a pair of plain functions to the Hasher interface
type HasherFunc[K any] struct {
	hash  func(key K) uint64
	equal func(a, b K) bool
}

// NewHasherFunc - Returns a Hasher calling hash and equal.
//   - hash must map equal keys to the same value
//   - equal is the equivalence relation over keys
func NewHasherFunc[K any](hash func(key K) uint64, equal func(a, b K) bool) *HasherFunc[K] {
	return &HasherFunc[K]{hash: hash, equal: equal}
}

// Hash - Returns hash(key)
func (H *HasherFunc[K]) Hash(key K) (uint64, error) {
	return H.hash(key), nil
}

// Equal - Returns equal(a, b)
func (H *HasherFunc[K]) Equal(a, b K) (bool, error) {
	return H.equal(a, b), nil
}
