// Package dynamicarray implements a resizable array that keeps its physical capacity apart from its logical size.
//
// Capacity management is caller driven: Insert grows and Pop/Remove shrink, but Set may write anywhere below
// the capacity without growing or shifting. That lets a hash table use the array as a fixed address slot space.
package dynamicarray

import (
	"fmt"
	"iter"
	"strings"

	"github.com/gostonefire/adt"
)

// DefaultCapacity - Capacity used by the containers in this module when none is given
const DefaultCapacity = 10

// Array - A contiguous slot storage with explicit logical size and capacity
type Array[T any] struct {
	items           []T
	logicalSize     int
	defaultCapacity int
	fill            func() T
}

// New - Returns a pointer to a new Array with capacity slots.
//   - capacity is the initial number of slots, it must be 1 or more. It is also the floor Shrink never goes below.
//   - fill is called once per slot to produce its unused value, so mutable fill values are never shared between slots. A nil fill gives the zero value of T.
//
// It returns:
//   - array is a pointer to the created Array
//   - err is of type adt.InvalidArgument if capacity is less than 1
func New[T any](capacity int, fill func() T) (array *Array[T], err error) {
	if capacity <= 0 {
		err = adt.NewInvalidArgument("array must have capacity of 1 or more, got %d", capacity)
		return
	}
	if fill == nil {
		fill = func() (zero T) { return }
	}

	array = &Array[T]{
		logicalSize:     0,
		defaultCapacity: capacity,
		fill:            fill,
	}
	array.items = array.allocate(capacity)

	return
}

// Capacity - Returns the physical number of slots
func (A *Array[T]) Capacity() int {
	return len(A.items)
}

// Size - Returns the logical size, i.e. the number of slots holding live data
func (A *Array[T]) Size() int {
	return A.logicalSize
}

// DefaultCapacity - Returns the capacity given at construction
func (A *Array[T]) DefaultCapacity() int {
	return A.defaultCapacity
}

// Get - Returns the item at index
//   - index must be in the range 0 -> Capacity() - 1, else an error of type adt.IndexOutOfRange is returned
func (A *Array[T]) Get(index int) (item T, err error) {
	if index < 0 || index >= len(A.items) {
		err = adt.NewIndexOutOfRange("array index %d out of range [0, %d)", index, len(A.items))
		return
	}
	item = A.items[index]

	return
}

// Set - Sets the item at index. Setting beyond the logical size extends it to index + 1.
//   - index must be in the range 0 -> Capacity() - 1, else an error of type adt.IndexOutOfRange is returned
func (A *Array[T]) Set(index int, item T) (err error) {
	if index < 0 || index >= len(A.items) {
		err = adt.NewIndexOutOfRange("array index %d out of range [0, %d)", index, len(A.items))
		return
	}
	A.items[index] = item
	if index >= A.logicalSize {
		A.logicalSize = index + 1
	}

	return
}

// Grow - Doubles the capacity if the logical size equals the capacity, otherwise does nothing
func (A *Array[T]) Grow() {
	if A.logicalSize == len(A.items) {
		A.resize(len(A.items) * 2)
	}
}

// Shrink - Halves the capacity if the logical size is at most a fourth of the capacity and
// the capacity is at least twice the default capacity, otherwise does nothing
func (A *Array[T]) Shrink() {
	if A.logicalSize <= len(A.items)/4 && len(A.items) >= 2*A.defaultCapacity {
		A.resize(len(A.items) / 2)
	}
}

// Insert - Inserts item before index, shifting later items one slot to the right.
// An index at or beyond the logical size appends the item at the end.
//   - index must be 0 or more, else an error of type adt.IndexOutOfRange is returned
func (A *Array[T]) Insert(index int, item T) (err error) {
	if index < 0 {
		err = adt.NewIndexOutOfRange("array insert index %d is negative", index)
		return
	}

	A.Grow()

	if index >= A.logicalSize {
		index = A.logicalSize
	} else {
		// Iterate from the end so nothing is overwritten before it is moved
		for i := A.logicalSize; i > index; i-- {
			A.items[i] = A.items[i-1]
		}
	}
	A.items[index] = item
	A.logicalSize++

	return
}

// Pop - Removes and returns the item at index, shifting later items one slot to the left, and then shrinks if possible
//   - index must be in the range 0 -> Size() - 1, else an error of type adt.IndexOutOfRange is returned
func (A *Array[T]) Pop(index int) (item T, err error) {
	if index < 0 || index >= A.logicalSize {
		err = adt.NewIndexOutOfRange("array pop index %d out of range [0, %d)", index, A.logicalSize)
		return
	}

	item = A.removeAt(index)

	return
}

// RemoveFunc - Removes and returns the first item for which match returns true.
// If no item matches, an error of type adt.KeyNotFound is returned.
func (A *Array[T]) RemoveFunc(match func(item T) bool) (item T, err error) {
	index := A.IndexFunc(match)
	if index < 0 {
		err = adt.NewKeyNotFound("no matching item in array")
		return
	}

	item = A.removeAt(index)

	return
}

// Remove - Removes the first occurrence of item from array.
// If item is not present, an error of type adt.KeyNotFound is returned.
func Remove[T comparable](array *Array[T], item T) (err error) {
	_, err = array.RemoveFunc(func(other T) bool { return other == item })
	if err != nil {
		err = adt.NewKeyNotFound("array remove: %v not in array", item)
	}

	return
}

// IndexFunc - Returns the index of the first live item for which match returns true, or -1
func (A *Array[T]) IndexFunc(match func(item T) bool) int {
	for i := 0; i < A.logicalSize; i++ {
		if match(A.items[i]) {
			return i
		}
	}

	return -1
}

// Items - Returns an iterator over the live items in index order
func (A *Array[T]) Items() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < A.logicalSize; i++ {
			if !yield(A.items[i]) {
				return
			}
		}
	}
}

// Slice - Returns a copy of the live items
func (A *Array[T]) Slice() []T {
	s := make([]T, A.logicalSize)
	_ = copy(s, A.items[:A.logicalSize])

	return s
}

// String - Returns the live items formatted as [a b c]
func (A *Array[T]) String() string {
	parts := make([]string, A.logicalSize)
	for i := 0; i < A.logicalSize; i++ {
		parts[i] = fmt.Sprint(A.items[i])
	}

	return "[" + strings.Join(parts, " ") + "]"
}

// Equal - Returns true if a and b have the same logical size and the same live items
func Equal[T comparable](a, b *Array[T]) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil || a.logicalSize != b.logicalSize {
		return false
	}
	for i := 0; i < a.logicalSize; i++ {
		if a.items[i] != b.items[i] {
			return false
		}
	}

	return true
}

// removeAt - Shifts items after index one slot to the left, refills the vacated slot and shrinks if possible.
// index is expected to be within the logical size.
func (A *Array[T]) removeAt(index int) (item T) {
	item = A.items[index]
	for i := index + 1; i < A.logicalSize; i++ {
		A.items[i-1] = A.items[i]
	}
	A.logicalSize--
	A.items[A.logicalSize] = A.fill()

	A.Shrink()

	return
}

// resize - Replaces the backing storage with capacity fresh slots and copies the live items over
func (A *Array[T]) resize(capacity int) {
	items := A.allocate(capacity)
	_ = copy(items, A.items[:A.logicalSize])
	A.items = items
}

// allocate - Returns n slots each holding its own fill value
func (A *Array[T]) allocate(n int) []T {
	items := make([]T, n)
	for i := range items {
		items[i] = A.fill()
	}

	return items
}
