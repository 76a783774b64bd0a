// Package hashdict implements a dictionary on top of a dynamicarray.Array used as a fixed address slot table.
//
// Collisions are resolved by open addressing with linear probing and Robin Hood displacement: while walking
// forward to insert, an entry that has travelled further from its home slot than the resident entry takes the
// resident's slot, and the resident continues the walk. Deleted entries leave tombstones so that later scans
// do not stop short. Whenever an insert would push the load factor above MaxLoadFactor, the table is rehashed
// into double the capacity first, which is also the only time tombstones are cleared.
//
// Tombstones do not count toward the load factor. A table that sees many deletes and inserts of new keys
// without growing can run out of empty slots, after which every miss and every new key scans the whole
// table. Stat reports Tombstones and Empty to spot that state, and Clear resets it.
package hashdict

import (
	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/dynamicarray"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/hash"
	"github.com/gostonefire/adt/internal/model"
)

// DefaultCapacity - Number of slots in a new table when no initial capacity is given
const DefaultCapacity = dynamicarray.DefaultCapacity

// MaxLoadFactor - Highest ratio of live entries to slots permitted after an insert
const MaxLoadFactor = 0.9

// Conf - Is a struct to be passed in the call to New and NewFromSlices.
//   - InitialCapacity is the number of slots to start with, 0 (zero) gives DefaultCapacity and negative values are rejected
//   - HashAlgorithm selects one of the built-in hashers, hashfunc.CRC32 being the default
//   - Hasher is an optional custom hasher, when given HashAlgorithm is ignored
type Conf[K any] struct {
	InitialCapacity int
	HashAlgorithm   hashfunc.Algorithm
	Hasher          hashfunc.Hasher[K]
}

// HashDict - The main implementation struct
type HashDict[K, V any] struct {
	slots           *dynamicarray.Array[model.Slot[K, V]]
	hasher          hashfunc.Hasher[K]
	initialCapacity int
	capacity        int
	length          int
	nTombstones     int
	maxProbeLength  int
}

// New - Returns a new, empty hash dictionary.
//   - conf is a Conf struct, its zero value gives a table of DefaultCapacity slots using the CRC32 hasher
//
// It returns:
//   - hashDict is a pointer to a HashDict struct
//   - err is of type adt.InvalidArgument if the capacity is negative or the hash algorithm is unknown
func New[K, V any](conf Conf[K]) (hashDict *HashDict[K, V], err error) {
	capacity := conf.InitialCapacity
	if capacity < 0 {
		err = adt.NewInvalidArgument("initial capacity must be 0 (default) or a positive value, got %d", capacity)
		return
	}
	if capacity == 0 {
		capacity = DefaultCapacity
	}

	hasher := conf.Hasher
	if hasher == nil {
		hasher, err = hash.NewHasher[K](conf.HashAlgorithm)
		if err != nil {
			return
		}
	}

	slots, err := newSlots[K, V](capacity)
	if err != nil {
		return
	}

	hashDict = &HashDict[K, V]{
		slots:           slots,
		hasher:          hasher,
		initialCapacity: capacity,
		capacity:        capacity,
	}

	return
}

// NewFromSlices - Returns a new hash dictionary holding keys[i] mapped to values[i] for every i.
// Later duplicates of a key overwrite earlier ones.
//   - keys and values must be of the same length, else an error of type adt.LengthMismatch is returned
//   - conf is a Conf struct as for New
func NewFromSlices[K, V any](keys []K, values []V, conf Conf[K]) (hashDict *HashDict[K, V], err error) {
	if len(keys) != len(values) {
		err = adt.NewLengthMismatch(len(keys), len(values))
		return
	}

	hashDict, err = New[K, V](conf)
	if err != nil {
		return
	}

	for i, key := range keys {
		err = hashDict.Set(key, values[i])
		if err != nil {
			hashDict = nil
			return
		}
	}

	return
}

// Len - Returns the number of live entries
func (H *HashDict[K, V]) Len() int {
	return H.length
}

// IsEmpty - Returns true if there are no live entries
func (H *HashDict[K, V]) IsEmpty() bool {
	return H.length == 0
}

// Capacity - Returns the number of slots in the table
func (H *HashDict[K, V]) Capacity() int {
	return H.capacity
}

// LoadFactor - Returns live entries divided by slots
func (H *HashDict[K, V]) LoadFactor() float64 {
	return float64(H.length) / float64(H.capacity)
}

// MaxProbeLength - Returns the recorded maximum probe length, the longest probe length reached by any insert
// since the last rehash or Clear. Deletes do not lower it, use Stat for the longest chain currently present.
func (H *HashDict[K, V]) MaxProbeLength() int {
	return H.maxProbeLength
}

// Clear - Removes every entry and restores the initial capacity
func (H *HashDict[K, V]) Clear() {
	// capacity was validated in New
	H.slots, _ = newSlots[K, V](H.initialCapacity)
	H.capacity = H.initialCapacity
	H.length = 0
	H.nTombstones = 0
	H.maxProbeLength = 0
}

// Clone - Returns a copy of the dictionary with its own slot table. Keys and values are copied by assignment.
func (H *HashDict[K, V]) Clone() *HashDict[K, V] {
	slots, _ := newSlots[K, V](H.capacity)
	for i := 0; i < H.capacity; i++ {
		_ = slots.Set(i, H.slotAt(i))
	}

	clone := *H
	clone.slots = slots

	return &clone
}

// String - Returns the entries formatted as {k1: v1, k2: v2} in slot order
func (H *HashDict[K, V]) String() string {
	return adt.Format[K, V](H)
}
