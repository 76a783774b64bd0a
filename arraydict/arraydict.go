// Package arraydict implements a dictionary as an unordered sequence of entries in a dynamicarray.Array.
// Every operation is a linear search, which makes it a baseline to compare hashdict against.
package arraydict

import (
	"errors"
	"fmt"
	"iter"

	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/dynamicarray"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/hash"
	"github.com/gostonefire/adt/internal/model"
)

// Conf - Is a struct to be passed in the call to New and NewFromSlices.
//   - InitialCapacity is the capacity of the backing array, 0 (zero) gives dynamicarray.DefaultCapacity
//   - HashAlgorithm selects one of the built-in hashers, used here to compare keys and to skip mismatches cheaply
//   - Hasher is an optional custom hasher, when given HashAlgorithm is ignored
type Conf[K any] struct {
	InitialCapacity int
	HashAlgorithm   hashfunc.Algorithm
	Hasher          hashfunc.Hasher[K]
}

// ArrayDict - The main implementation struct
type ArrayDict[K, V any] struct {
	entries         *dynamicarray.Array[model.Entry[K, V]]
	hasher          hashfunc.Hasher[K]
	initialCapacity int
}

// New - Returns a new, empty array dictionary.
// It returns an error of type adt.InvalidArgument if the capacity is negative or the hash algorithm is unknown.
func New[K, V any](conf Conf[K]) (arrayDict *ArrayDict[K, V], err error) {
	capacity := conf.InitialCapacity
	if capacity < 0 {
		err = adt.NewInvalidArgument("initial capacity must be 0 (default) or a positive value, got %d", capacity)
		return
	}
	if capacity == 0 {
		capacity = dynamicarray.DefaultCapacity
	}

	hasher := conf.Hasher
	if hasher == nil {
		hasher, err = hash.NewHasher[K](conf.HashAlgorithm)
		if err != nil {
			return
		}
	}

	entries, err := dynamicarray.New[model.Entry[K, V]](capacity, nil)
	if err != nil {
		return
	}

	arrayDict = &ArrayDict[K, V]{
		entries:         entries,
		hasher:          hasher,
		initialCapacity: capacity,
	}

	return
}

// NewFromSlices - Returns a new array dictionary holding keys[i] mapped to values[i] for every i.
// An error of type adt.LengthMismatch is returned if keys and values differ in length.
func NewFromSlices[K, V any](keys []K, values []V, conf Conf[K]) (arrayDict *ArrayDict[K, V], err error) {
	if len(keys) != len(values) {
		err = adt.NewLengthMismatch(len(keys), len(values))
		return
	}

	arrayDict, err = New[K, V](conf)
	if err != nil {
		return
	}

	for i, key := range keys {
		err = arrayDict.Set(key, values[i])
		if err != nil {
			arrayDict = nil
			return
		}
	}

	return
}

// Len - Returns the number of entries
func (A *ArrayDict[K, V]) Len() int {
	return A.entries.Size()
}

// IsEmpty - Returns true if there are no entries
func (A *ArrayDict[K, V]) IsEmpty() bool {
	return A.entries.Size() == 0
}

// Capacity - Returns the capacity of the backing array
func (A *ArrayDict[K, V]) Capacity() int {
	return A.entries.Capacity()
}

// Contains - Returns true if key is present
func (A *ArrayDict[K, V]) Contains(key K) (found bool, err error) {
	index, _, err := A.indexOf(key)
	found = index >= 0

	return
}

// Get - Returns the value for key, or an error of type adt.KeyNotFound if key is absent
func (A *ArrayDict[K, V]) Get(key K) (value V, err error) {
	index, _, err := A.indexOf(key)
	if err != nil {
		return
	}
	if index < 0 {
		err = adt.NewKeyNotFound("key %#v not found", key)
		return
	}

	entry, err := A.entries.Get(index)
	value = entry.Value

	return
}

// GetOrDefault - Returns the value for key, or defaultValue if key is absent
func (A *ArrayDict[K, V]) GetOrDefault(key K, defaultValue V) (value V, err error) {
	value, err = A.Get(key)
	if errors.Is(err, adt.KeyNotFound{}) {
		value, err = defaultValue, nil
	}

	return
}

// Set - Replaces the value of an existing key, or appends a new entry at the end of the array
func (A *ArrayDict[K, V]) Set(key K, value V) (err error) {
	index, hashValue, err := A.indexOf(key)
	if err != nil {
		return
	}

	if index >= 0 {
		entry, _ := A.entries.Get(index)
		entry.Value = value
		err = A.entries.Set(index, entry)
		return
	}

	err = A.entries.Insert(A.entries.Size(), model.Entry[K, V]{Key: hash.CloneKey(key), Value: value, Hash: hashValue})

	return
}

// Pop - Removes key and returns its value, or returns defaultValue if key is absent.
// Later entries shift one position down and the backing array shrinks when sparse.
func (A *ArrayDict[K, V]) Pop(key K, defaultValue V) (value V, err error) {
	index, _, err := A.indexOf(key)
	if err != nil {
		return
	}
	if index < 0 {
		value = defaultValue
		return
	}

	entry, err := A.entries.Pop(index)
	value = entry.Value

	return
}

// Remove - Removes key and returns its value, or an error of type adt.KeyNotFound if key is absent
func (A *ArrayDict[K, V]) Remove(key K) (value V, err error) {
	index, _, err := A.indexOf(key)
	if err != nil {
		return
	}
	if index < 0 {
		err = adt.NewKeyNotFound("key %#v not found", key)
		return
	}

	entry, err := A.entries.Pop(index)
	value = entry.Value

	return
}

// Clear - Removes every entry and restores the initial capacity
func (A *ArrayDict[K, V]) Clear() {
	A.entries, _ = dynamicarray.New[model.Entry[K, V]](A.initialCapacity, nil)
}

// Keys - Returns an iterator over the keys in insertion order
func (A *ArrayDict[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for entry := range A.entries.Items() {
			if !yield(entry.Key) {
				return
			}
		}
	}
}

// Values - Returns an iterator over the values in insertion order
func (A *ArrayDict[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for entry := range A.entries.Items() {
			if !yield(entry.Value) {
				return
			}
		}
	}
}

// All - Returns an iterator over key/value pairs in insertion order
func (A *ArrayDict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for entry := range A.entries.Items() {
			if !yield(entry.Key, entry.Value) {
				return
			}
		}
	}
}

// String - Returns the entries formatted as {k1: v1, k2: v2}
func (A *ArrayDict[K, V]) String() string {
	return adt.Format[K, V](A)
}

// GoString - Returns a representation including the type name, e.g. ArrayDict{"a": 1}
func (A *ArrayDict[K, V]) GoString() string {
	return fmt.Sprintf("ArrayDict%s", A.String())
}

// indexOf - Returns the index of key in the backing array or -1, together with the hash of key
func (A *ArrayDict[K, V]) indexOf(key K) (index int, hashValue uint64, err error) {
	index = -1
	hashValue, err = A.hasher.Hash(key)
	if err != nil {
		return
	}

	var equal bool
	i := 0
	for entry := range A.entries.Items() {
		if entry.Hash == hashValue {
			equal, err = A.hasher.Equal(entry.Key, key)
			if err != nil {
				return
			}
			if equal {
				index = i
				return
			}
		}
		i++
	}

	return
}
