// Package arraylist implements a positional list on top of a dynamicarray.Array.
package arraylist

import (
	"iter"

	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/dynamicarray"
)

// List - The main implementation struct
type List[T comparable] struct {
	items *dynamicarray.Array[T]
}

// New - Returns a new list holding source in order
func New[T comparable](source ...T) *List[T] {
	// DefaultCapacity is positive
	items, _ := dynamicarray.New[T](dynamicarray.DefaultCapacity, nil)
	L := &List[T]{items: items}
	L.Extend(source...)

	return L
}

// Len - Returns the number of items
func (L *List[T]) Len() int {
	return L.items.Size()
}

// IsEmpty - Returns true if the list has no items
func (L *List[T]) IsEmpty() bool {
	return L.items.Size() == 0
}

// Get - Returns the item at index
//   - index must be in the range 0 -> Len() - 1, else an error of type adt.IndexOutOfRange is returned
func (L *List[T]) Get(index int) (item T, err error) {
	err = L.checkIndex(index)
	if err != nil {
		return
	}

	return L.items.Get(index)
}

// Set - Replaces the item at index
//   - index must be in the range 0 -> Len() - 1, else an error of type adt.IndexOutOfRange is returned
func (L *List[T]) Set(index int, item T) (err error) {
	err = L.checkIndex(index)
	if err != nil {
		return
	}

	return L.items.Set(index, item)
}

// Insert - Inserts item before index. A negative index inserts at the front and an index at or beyond Len() appends.
func (L *List[T]) Insert(index int, item T) {
	// both bounds are normalized so the array never rejects the index
	_ = L.items.Insert(max(index, 0), item)
}

// Append - Adds item at the end
func (L *List[T]) Append(item T) {
	L.Insert(L.items.Size(), item)
}

// Prepend - Adds item at the front
func (L *List[T]) Prepend(item T) {
	L.Insert(0, item)
}

// Extend - Appends every item in order
func (L *List[T]) Extend(items ...T) {
	for _, item := range items {
		L.Append(item)
	}
}

// Pop - Removes and returns the item at index
//   - index must be in the range 0 -> Len() - 1, else an error of type adt.IndexOutOfRange is returned
func (L *List[T]) Pop(index int) (item T, err error) {
	if L.IsEmpty() {
		err = adt.NewIndexOutOfRange("pop from empty list")
		return
	}
	err = L.checkIndex(index)
	if err != nil {
		return
	}

	return L.items.Pop(index)
}

// Remove - Removes the first occurrence of item, or returns an error of type adt.KeyNotFound if there is none
func (L *List[T]) Remove(item T) error {
	return dynamicarray.Remove(L.items, item)
}

// Index - Returns the index of the first occurrence of item, or -1
func (L *List[T]) Index(item T) int {
	return L.items.IndexFunc(func(other T) bool { return other == item })
}

// Contains - Returns true if item is in the list
func (L *List[T]) Contains(item T) bool {
	return L.Index(item) >= 0
}

// Count - Returns the number of occurrences of item
func (L *List[T]) Count(item T) (n int) {
	for other := range L.items.Items() {
		if other == item {
			n++
		}
	}

	return
}

// Reverse - Reverses the items in place
func (L *List[T]) Reverse() {
	for i, j := 0, L.Len()-1; i < j; i, j = i+1, j-1 {
		L.swap(i, j)
	}
}

// Sort - Sorts the items in place with quicksort.
// cmp returns a negative number when a sorts before b, zero when equal and a positive number otherwise.
// The sort is not stable.
func (L *List[T]) Sort(cmp func(a, b T) int) {
	L.quicksort(cmp, 0, L.Len()-1)
}

// Clear - Removes every item and restores the default capacity
func (L *List[T]) Clear() {
	L.items, _ = dynamicarray.New[T](dynamicarray.DefaultCapacity, nil)
}

// Items - Returns an iterator over the items in order
func (L *List[T]) Items() iter.Seq[T] {
	return L.items.Items()
}

// All - Returns an iterator over index/item pairs in order
func (L *List[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for item := range L.items.Items() {
			if !yield(i, item) {
				return
			}
			i++
		}
	}
}

// Slice - Returns a copy of the items
func (L *List[T]) Slice() []T {
	return L.items.Slice()
}

// String - Returns the items formatted as [a b c]
func (L *List[T]) String() string {
	return L.items.String()
}

// checkIndex - Returns an error of type adt.IndexOutOfRange unless index is in the range 0 -> Len() - 1
func (L *List[T]) checkIndex(index int) (err error) {
	if index < 0 {
		err = adt.NewIndexOutOfRange("list index %d cannot be negative", index)
	} else if index >= L.items.Size() {
		err = adt.NewIndexOutOfRange("list index %d out of range [0, %d)", index, L.items.Size())
	}

	return
}

// at - Returns the item at an index known to be in range
func (L *List[T]) at(index int) T {
	item, _ := L.items.Get(index)

	return item
}

// swap - Exchanges the items at two indexes known to be in range
func (L *List[T]) swap(i, j int) {
	a, b := L.at(i), L.at(j)
	_ = L.items.Set(i, b)
	_ = L.items.Set(j, a)
}

// quicksort - Sorts the items between left and right inclusive
func (L *List[T]) quicksort(cmp func(a, b T) int, left, right int) {
	if left >= right {
		return
	}

	border := L.partition(cmp, left, right)
	L.quicksort(cmp, left, border-1)
	L.quicksort(cmp, border+1, right)
}

// partition - Uses the middle item as pivot and moves every item less than it in front of it.
// Returns the final index of the pivot.
func (L *List[T]) partition(cmp func(a, b T) int, left, right int) (border int) {
	mid := left + (right-left)/2
	L.swap(mid, right)
	pivot := L.at(right)

	border = left
	for i := left; i < right; i++ {
		if cmp(L.at(i), pivot) < 0 {
			L.swap(i, border)
			border++
		}
	}
	L.swap(border, right)

	return
}
