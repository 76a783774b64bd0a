// Package adt holds the shared contracts of the abstract data types in this module.
//
// The storage engine lives in sub packages:
//   - dynamicarray is the resizable slot storage every other container is built on
//   - hashdict is an open addressing dictionary using Robin Hood hashing and tombstones
//   - arraydict is a dictionary doing linear search over a dynamic array
//   - arraylist is a positional list over a dynamic array
//
// This package defines the Dict interface both dictionaries satisfy, a few helpers working on any Dict,
// and the error types returned throughout the module.
package adt

import "iter"

// Dict - Interface for any dictionary implementation
type Dict[K, V any] interface {
	// Len - Returns the number of live entries
	Len() int

	// IsEmpty - Returns true if there are no live entries
	IsEmpty() bool

	// Contains - Returns true if key is present.
	// An error of type TypeMismatch is returned if the key can not be hashed or compared.
	Contains(key K) (bool, error)

	// Get - Returns the value for key, or an error of type KeyNotFound if key is absent
	Get(key K) (V, error)

	// GetOrDefault - Returns the value for key, or defaultValue if key is absent
	GetOrDefault(key K, defaultValue V) (V, error)

	// Set - Updates the value of an existing key or adds a new entry
	Set(key K, value V) error

	// Pop - Removes key and returns its value, or returns defaultValue if key is absent
	Pop(key K, defaultValue V) (V, error)

	// Remove - Removes key and returns its value, or an error of type KeyNotFound if key is absent
	Remove(key K) (V, error)

	// Clear - Removes every entry
	Clear()

	// Keys - Returns an iterator over keys in implementation defined order
	Keys() iter.Seq[K]

	// Values - Returns an iterator over values in the same order as Keys
	Values() iter.Seq[V]

	// All - Returns an iterator over key/value pairs in the same order as Keys
	All() iter.Seq2[K, V]
}
