package hashdict

import (
	"fmt"
	"iter"

	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/internal/hash"
	"github.com/gostonefire/adt/internal/model"
)

// Contains - Returns true if key is present.
// An error of type adt.TypeMismatch is returned if the hasher can not handle the key.
func (H *HashDict[K, V]) Contains(key K) (found bool, err error) {
	_, _, found, err = H.lookup(key)

	return
}

// Get - Gets the value that corresponds to the given key.
//
// It returns:
//   - value is the value of the matching entry if found, if not found an error of type adt.KeyNotFound is also returned.
//   - err is either of type adt.KeyNotFound, adt.TypeMismatch or nil
func (H *HashDict[K, V]) Get(key K) (value V, err error) {
	index, _, found, err := H.lookup(key)
	if err != nil {
		return
	}
	if !found {
		err = adt.NewKeyNotFound("key %#v not found", key)
		return
	}

	value = H.slotAt(index).Entry.Value

	return
}

// GetOrDefault - Gets the value that corresponds to the given key, or defaultValue if the key is absent
func (H *HashDict[K, V]) GetOrDefault(key K, defaultValue V) (value V, err error) {
	index, _, found, err := H.lookup(key)
	if err != nil {
		return
	}
	if !found {
		value = defaultValue
		return
	}

	value = H.slotAt(index).Entry.Value

	return
}

// Set - Updates the value of an existing key or adds a new entry.
// Adding may first rehash the table into double capacity to keep the load factor at or below MaxLoadFactor.
//   - key is the identifier of the entry, it must be supported by the hasher
//   - value is the value to associate with key
//
// It returns:
//   - err is of type adt.TypeMismatch if the hasher can not handle the key, nil otherwise
func (H *HashDict[K, V]) Set(key K, value V) (err error) {
	index, hashValue, found, err := H.lookup(key)
	if err != nil {
		return
	}

	// Existing entry keeps its slot and probe length
	if found {
		slot := H.slotAt(index)
		slot.Entry.Value = value
		H.setSlot(index, slot)
		return
	}

	if float64(H.length+1) > MaxLoadFactor*float64(H.capacity) {
		H.rehash(H.capacity * 2)
	}

	fromState, probeLength := place(H.slots, H.capacity, model.Entry[K, V]{Key: hash.CloneKey(key), Value: value, Hash: hashValue})
	if fromState == model.SlotTombstone {
		H.nTombstones--
	}
	H.maxProbeLength = max(H.maxProbeLength, probeLength)
	H.length++

	return
}

// Pop - Returns the value corresponding to key and removes it from the dictionary.
// The vacated slot becomes a tombstone.
//   - key is the identifier of the entry
//   - defaultValue is returned if key is absent
//
// It returns:
//   - value is the removed value, or defaultValue
//   - err is of type adt.TypeMismatch if the hasher can not handle the key, nil otherwise
func (H *HashDict[K, V]) Pop(key K, defaultValue V) (value V, err error) {
	index, _, found, err := H.lookup(key)
	if err != nil {
		return
	}
	if !found {
		value = defaultValue
		return
	}

	value = H.removeAt(index)

	return
}

// Remove - Returns the value corresponding to key and removes it from the dictionary.
// If key is absent an error of type adt.KeyNotFound is returned.
func (H *HashDict[K, V]) Remove(key K) (value V, err error) {
	index, _, found, err := H.lookup(key)
	if err != nil {
		return
	}
	if !found {
		err = adt.NewKeyNotFound("key %#v not found", key)
		return
	}

	value = H.removeAt(index)

	return
}

// Keys - Returns an iterator over the keys in slot order.
// The order reflects the slot layout after probing, it is neither insertion order nor sorted.
// The dictionary must not be modified while iterating.
func (H *HashDict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for key := range H.All() {
			if !yield(key) {
				return
			}
		}
	}
}

// Values - Returns an iterator over the values in the same order as Keys
func (H *HashDict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, value := range H.All() {
			if !yield(value) {
				return
			}
		}
	}
}

// All - Returns an iterator over key/value pairs in the same order as Keys
func (H *HashDict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for slot := range H.slots.Items() {
			if slot.State != model.SlotOccupied {
				continue
			}
			if !yield(slot.Entry.Key, slot.Entry.Value) {
				return
			}
		}
	}
}

// GoString - Returns a representation including the type name, e.g. HashDict{"a": 1}
func (H *HashDict[K, V]) GoString() string {
	return fmt.Sprintf("HashDict%s", H.String())
}
