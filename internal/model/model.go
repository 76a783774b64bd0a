package model

// SlotState - State of one slot in a hash table
type SlotState uint8

// SlotEmpty - State indicating a slot that has never been in use since the table was allocated.
// It terminates a probe scan.
const SlotEmpty SlotState = 0

// SlotOccupied - State indicating a slot holding a live entry
const SlotOccupied SlotState = 1

// SlotTombstone - State indicating a slot that has been in use but whose entry was deleted.
// A probe scan continues past it and an insert may reclaim it.
const SlotTombstone SlotState = 2

// String - Returns the name of the state
func (S SlotState) String() string {
	switch S {
	case SlotEmpty:
		return "empty"
	case SlotOccupied:
		return "occupied"
	case SlotTombstone:
		return "tombstone"
	default:
		return "unknown"
	}
}

// Entry - Represents one key/value pair
//   - Hash is the key's hash value as returned by the hasher, kept so rehashing never calls the hasher again
//   - ProbeLength is the number of linear probe steps from the key's home slot to the slot holding the entry
type Entry[K, V any] struct {
	Key         K
	Value       V
	Hash        uint64
	ProbeLength int
}

// Slot - Represents one slot in a hash table. Entry is only meaningful when State is SlotOccupied.
type Slot[K, V any] struct {
	State SlotState
	Entry Entry[K, V]
}

// EmptySlot - Returns a slot in state SlotEmpty, used as fill value for new tables
func EmptySlot[K, V any]() Slot[K, V] {
	return Slot[K, V]{State: SlotEmpty}
}

// TombstoneSlot - Returns a slot in state SlotTombstone with no entry attached
func TombstoneSlot[K, V any]() Slot[K, V] {
	return Slot[K, V]{State: SlotTombstone}
}

// OccupiedSlot - Returns a slot in state SlotOccupied holding entry
func OccupiedSlot[K, V any](entry Entry[K, V]) Slot[K, V] {
	return Slot[K, V]{State: SlotOccupied, Entry: entry}
}
