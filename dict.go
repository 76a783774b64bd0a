package adt

import (
	"errors"
	"fmt"
	"strings"
)

// Equal - Returns true if a and b hold the same keys with equal values.
// Key comparison is done through b's own lookup, so a and b may be different implementations.
func Equal[K any, V comparable](a, b Dict[K, V]) (equal bool, err error) {
	if a.Len() != b.Len() {
		return
	}

	var other V
	for key, value := range a.All() {
		other, err = b.Get(key)
		if errors.Is(err, KeyNotFound{}) {
			err = nil
			return
		}
		if err != nil {
			return
		}
		if other != value {
			return
		}
	}

	equal = true
	return
}

// Count - Returns the number of entries in d holding value
func Count[K any, V comparable](d Dict[K, V], value V) (n int) {
	for v := range d.Values() {
		if v == value {
			n++
		}
	}

	return
}

// Merge - Sets every entry of src into dst, overwriting values of keys present in both
func Merge[K, V any](dst, src Dict[K, V]) (err error) {
	for key, value := range src.All() {
		err = dst.Set(key, value)
		if err != nil {
			err = fmt.Errorf("error while merging entry %v: %w", key, err)
			return
		}
	}

	return
}

// Format - Returns a string representation of d on the form {k1: v1, k2: v2}
func Format[K, V any](d Dict[K, V]) string {
	var sb strings.Builder

	sb.WriteString("{")
	first := true
	for key, value := range d.All() {
		if !first {
			sb.WriteString(", ")
		}
		first = false
		sb.WriteString(fmt.Sprintf("%#v: %v", key, value))
	}
	sb.WriteString("}")

	return sb.String()
}
