package hashdict

import (
	"github.com/gostonefire/adt/dynamicarray"
	"github.com/gostonefire/adt/internal/hash"
	"github.com/gostonefire/adt/internal/model"
)

// newSlots - Returns a slot table of capacity slots, all in state SlotEmpty
func newSlots[K, V any](capacity int) (slots *dynamicarray.Array[model.Slot[K, V]], err error) {
	return dynamicarray.New[model.Slot[K, V]](capacity, model.EmptySlot[K, V])
}

// slotAt - Returns the slot at index, index is always within the table so the error is ignored
func (H *HashDict[K, V]) slotAt(index int) model.Slot[K, V] {
	slot, _ := H.slots.Get(index)

	return slot
}

// setSlot - Sets the slot at index, index is always within the table so the error is ignored
func (H *HashDict[K, V]) setSlot(index int, slot model.Slot[K, V]) {
	_ = H.slots.Set(index, slot)
}

// lookup - Searches for key starting at its home index.
//
// It returns:
//   - index is the slot holding key if found
//   - hashValue is the hash of key, returned so that an insert does not need to hash again
//   - found is true if key is present
//   - err is of type adt.TypeMismatch if the hasher can not handle the key
func (H *HashDict[K, V]) lookup(key K) (index int, hashValue uint64, found bool, err error) {
	hashValue, err = H.hasher.Hash(key)
	if err != nil {
		return
	}

	home := hash.HomeIndex(hashValue, H.capacity)
	for i := 0; i < H.capacity; i++ {
		index = hash.ProbeIteration(home, i, H.capacity)
		slot := H.slotAt(index)

		switch slot.State {
		case model.SlotEmpty:
			return
		case model.SlotTombstone:
			continue
		}

		if slot.Entry.Hash != hashValue {
			continue
		}
		found, err = H.hasher.Equal(slot.Entry.Key, key)
		if err != nil || found {
			return
		}
	}

	return
}

// place - Stores entry in slots using Robin Hood displacement.
// Starting at the entry's home index, a resident with a shorter probe length than the candidate is evicted and
// becomes the candidate. The walk ends at the first empty or tombstone slot. slots must hold at least one such slot.
//
// It returns:
//   - fromState is the state of the slot the walk ended in, either model.SlotEmpty or model.SlotTombstone
//   - maxProbeLength is the longest probe length of any entry placed during the walk
func place[K, V any](slots *dynamicarray.Array[model.Slot[K, V]], capacity int, entry model.Entry[K, V]) (fromState model.SlotState, maxProbeLength int) {
	candidate := entry
	candidate.ProbeLength = 0
	index := hash.HomeIndex(candidate.Hash, capacity)

	for {
		slot, _ := slots.Get(index)

		if slot.State != model.SlotOccupied {
			_ = slots.Set(index, model.OccupiedSlot(candidate))
			fromState = slot.State
			maxProbeLength = max(maxProbeLength, candidate.ProbeLength)
			return
		}

		if slot.Entry.ProbeLength < candidate.ProbeLength {
			_ = slots.Set(index, model.OccupiedSlot(candidate))
			maxProbeLength = max(maxProbeLength, candidate.ProbeLength)
			candidate = slot.Entry
		}

		candidate.ProbeLength++
		index = hash.ProbeIteration(index, 1, capacity)
	}
}

// removeAt - Replaces the occupied slot at index with a tombstone and returns the removed value
func (H *HashDict[K, V]) removeAt(index int) (value V) {
	value = H.slotAt(index).Entry.Value
	H.setSlot(index, model.TombstoneSlot[K, V]())
	H.length--
	H.nTombstones++

	return
}

// rehash - Moves every live entry into a fresh slot table of the given capacity.
// Stored hash values are reused and probe lengths are computed from scratch. Tombstones are dropped.
func (H *HashDict[K, V]) rehash(capacity int) {
	// capacity is always a positive multiple of the current one
	slots, _ := newSlots[K, V](capacity)

	maxProbeLength := 0
	for slot := range H.slots.Items() {
		if slot.State != model.SlotOccupied {
			continue
		}
		_, probeLength := place(slots, capacity, slot.Entry)
		maxProbeLength = max(maxProbeLength, probeLength)
	}

	H.slots = slots
	H.capacity = capacity
	H.nTombstones = 0
	H.maxProbeLength = maxProbeLength
}
