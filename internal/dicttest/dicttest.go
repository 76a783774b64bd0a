// Package dicttest holds a conformance suite run against every adt.Dict implementation in this module.
package dicttest

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/gostonefire/adt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// DictFactory is a function that creates a new, empty dictionary with string keys and int values
type DictFactory func() adt.Dict[string, int]

// AnyDictFactory is a function that creates a new, empty dictionary accepting keys of any type
type AnyDictFactory func() adt.Dict[any, int]

// RunDictTests runs the behavioural test suite for a Dict implementation.
func RunDictTests(t *testing.T, name string, factory DictFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Set&Get", func(t *testing.T) {
			testSetGet(t, factory())
		})

		t.Run("MissingKey", func(t *testing.T) {
			testMissingKey(t, factory())
		})

		t.Run("Pop", func(t *testing.T) {
			testPop(t, factory())
		})

		t.Run("Remove", func(t *testing.T) {
			testRemove(t, factory())
		})

		t.Run("DeletionVisibility", func(t *testing.T) {
			testDeletionVisibility(t, factory())
		})

		t.Run("Iteration", func(t *testing.T) {
			testIteration(t, factory())
		})

		t.Run("Clear", func(t *testing.T) {
			testClear(t, factory())
		})

		t.Run("Helpers", func(t *testing.T) {
			testHelpers(t, factory)
		})

		t.Run("RealisticUsage", func(t *testing.T) {
			testRealisticUsage(t, factory())
		})
	})
}

// RunKeyTypeTests runs the key typing test suite for a Dict implementation using the built-in hashers.
func RunKeyTypeTests(t *testing.T, name string, factory AnyDictFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Unhashable", func(t *testing.T) {
			testUnhashable(t, factory())
		})

		t.Run("MixedKinds", func(t *testing.T) {
			testMixedKinds(t, factory())
		})

		t.Run("ByteKeyCopied", func(t *testing.T) {
			testByteKeyCopied(t, factory())
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

func testSetGet(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	require.True(t, d.IsEmpty(), "starts empty")

	// Execute
	require.NoError(t, d.Set("a", 1), "set a")
	require.NoError(t, d.Set("b", 2), "set b")
	require.NoError(t, d.Set("a", 3), "overwrite a")

	// Check
	a, err := d.Get("a")
	assert.NoError(t, err, "get a")
	assert.Equal(t, 3, a, "a overwritten")
	b, err := d.Get("b")
	assert.NoError(t, err, "get b")
	assert.Equal(t, 2, b, "b unchanged")
	assert.Equal(t, 2, d.Len(), "overwrite does not add")
	assert.False(t, d.IsEmpty(), "not empty")
}

func testMissingKey(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	require.NoError(t, d.Set("present", 1), "set present")

	// Execute
	_, errGet := d.Get("absent")
	found, errContains := d.Contains("absent")
	value, errDefault := d.GetOrDefault("absent", 42)

	// Check
	assert.True(t, errors.Is(errGet, adt.KeyNotFound{}), "get fails with key not found")
	assert.NoError(t, errContains, "contains has no error")
	assert.False(t, found, "absent not contained")
	assert.NoError(t, errDefault, "get or default has no error")
	assert.Equal(t, 42, value, "default returned")
	assert.Equal(t, 1, d.Len(), "failed lookups do not mutate")
}

func testPop(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	require.NoError(t, d.Set("a", 1), "set a")
	require.NoError(t, d.Set("b", 2), "set b")

	// Execute
	popped, err := d.Pop("a", -1)

	// Check
	assert.NoError(t, err, "pop present")
	assert.Equal(t, 1, popped, "popped value")
	found, _ := d.Contains("a")
	assert.False(t, found, "a gone")
	b, err := d.Get("b")
	assert.NoError(t, err, "get b")
	assert.Equal(t, 2, b, "b still there")
	assert.Equal(t, 1, d.Len(), "length decremented")

	// Execute
	popped, err = d.Pop("a", -1)

	// Check
	assert.NoError(t, err, "pop absent has no error")
	assert.Equal(t, -1, popped, "default returned")
	assert.Equal(t, 1, d.Len(), "length unchanged")
}

func testRemove(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	require.NoError(t, d.Set("a", 1), "set a")

	// Execute
	removed, err := d.Remove("a")

	// Check
	assert.NoError(t, err, "remove present")
	assert.Equal(t, 1, removed, "removed value")
	assert.True(t, d.IsEmpty(), "empty after remove")

	// Execute
	_, err = d.Remove("a")

	// Check
	assert.True(t, errors.Is(err, adt.KeyNotFound{}), "remove absent fails with key not found")
}

func testDeletionVisibility(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	n := 300
	for i := 0; i < n; i++ {
		require.NoErrorf(t, d.Set(fmt.Sprintf("key-%d", i), i), "set #%d", i)
	}

	// Execute
	for i := 0; i < n; i += 2 {
		v, err := d.Pop(fmt.Sprintf("key-%d", i), -1)
		require.NoErrorf(t, err, "pop #%d", i)
		require.Equalf(t, i, v, "popped #%d", i)
	}

	// Check
	assert.Equal(t, n/2, d.Len(), "half remains")
	for i := 0; i < n; i++ {
		key := fmt.Sprintf("key-%d", i)
		found, err := d.Contains(key)
		assert.NoErrorf(t, err, "contains %s", key)
		if i%2 == 0 {
			assert.Falsef(t, found, "%s removed", key)
			continue
		}
		assert.Truef(t, found, "%s kept", key)
		v, err := d.Get(key)
		assert.NoErrorf(t, err, "get %s", key)
		assert.Equalf(t, i, v, "value of %s", key)
	}

	// Reinserting into vacated space works
	for i := 0; i < n; i += 2 {
		require.NoErrorf(t, d.Set(fmt.Sprintf("key-%d", i), -i), "reset #%d", i)
	}
	assert.Equal(t, n, d.Len(), "all back")
	v, err := d.Get("key-10")
	assert.NoError(t, err, "get reinserted")
	assert.Equal(t, -10, v, "reinserted value")
}

func testIteration(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	expected := map[string]int{"one": 1, "two": 2, "three": 3, "four": 4}
	for k, v := range expected {
		require.NoErrorf(t, d.Set(k, v), "set %s", k)
	}

	// Execute
	all := make(map[string]int)
	for k, v := range d.All() {
		all[k] = v
	}
	var keys []string
	for k := range d.Keys() {
		keys = append(keys, k)
	}
	var values []int
	for v := range d.Values() {
		values = append(values, v)
	}

	// Check
	assert.Equal(t, expected, all, "all pairs visited")
	require.Len(t, keys, len(expected), "all keys visited")
	require.Len(t, values, len(expected), "all values visited")
	for i, k := range keys {
		assert.Equalf(t, expected[k], values[i], "values follow key order at #%d", i)
	}

	// Early break stops the iteration
	visited := 0
	for range d.Keys() {
		visited++
		break
	}
	assert.Equal(t, 1, visited, "break honoured")
}

func testClear(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	for i := 0; i < 50; i++ {
		require.NoErrorf(t, d.Set(fmt.Sprint(i), i), "set #%d", i)
	}

	// Execute
	d.Clear()

	// Check
	assert.True(t, d.IsEmpty(), "empty after clear")
	found, _ := d.Contains("1")
	assert.False(t, found, "old key gone")
	require.NoError(t, d.Set("1", 100), "usable after clear")
	v, _ := d.Get("1")
	assert.Equal(t, 100, v, "new value")
}

func testHelpers(t *testing.T, factory DictFactory) {
	// Prepare
	a := factory()
	b := factory()
	for i := 0; i < 20; i++ {
		require.NoErrorf(t, a.Set(fmt.Sprint(i), i%3), "set a #%d", i)
	}

	// Execute
	err := adt.Merge(b, a)

	// Check
	require.NoError(t, err, "merge")
	equal, err := adt.Equal(a, b)
	assert.NoError(t, err, "equal")
	assert.True(t, equal, "merged copy equals source")
	assert.Equal(t, 7, adt.Count(a, 0), "count of zeros")

	// Execute
	require.NoError(t, b.Set("0", 99), "change b")
	equal, _ = adt.Equal(a, b)

	// Check
	assert.False(t, equal, "changed value detected")

	// Execute
	_, _ = b.Pop("0", 0)
	require.NoError(t, b.Set("extra", 0), "replace key in b")
	equal, _ = adt.Equal(a, b)

	// Check
	assert.False(t, equal, "different key with same length detected")
}

func testRealisticUsage(t *testing.T, d adt.Dict[string, int]) {
	// Prepare
	mirror := make(map[string]int)
	rnd := rand.New(rand.NewSource(42))

	// Execute & Check
	for i := 0; i < 5000; i++ {
		key := fmt.Sprintf("k%d", rnd.Intn(400))
		switch rnd.Intn(4) {
		case 0, 1:
			require.NoErrorf(t, d.Set(key, i), "op #%d set", i)
			mirror[key] = i
		case 2:
			v, err := d.Pop(key, -1)
			require.NoErrorf(t, err, "op #%d pop", i)
			expected, ok := mirror[key]
			if !ok {
				expected = -1
			}
			require.Equalf(t, expected, v, "op #%d pop value", i)
			delete(mirror, key)
		case 3:
			v, err := d.Get(key)
			expected, ok := mirror[key]
			if !ok {
				require.Truef(t, errors.Is(err, adt.KeyNotFound{}), "op #%d get absent", i)
				continue
			}
			require.NoErrorf(t, err, "op #%d get", i)
			require.Equalf(t, expected, v, "op #%d get value", i)
		}
		require.Equalf(t, len(mirror), d.Len(), "op #%d length", i)
	}

	all := make(map[string]int)
	for k, v := range d.All() {
		all[k] = v
	}
	assert.Equal(t, mirror, all, "final contents")
}

func testUnhashable(t *testing.T, d adt.Dict[any, int]) {
	// Prepare
	require.NoError(t, d.Set("ok", 1), "set hashable key")

	for _, key := range []any{[]int{1}, map[string]int{}, struct{ a []int }{}, nil} {
		// Execute
		errSet := d.Set(key, 2)
		_, errGet := d.Get(key)
		_, errContains := d.Contains(key)
		_, errPop := d.Pop(key, 0)

		// Check
		assert.Truef(t, errors.Is(errSet, adt.TypeMismatch{}), "set %T fails with type mismatch", key)
		assert.Truef(t, errors.Is(errGet, adt.TypeMismatch{}), "get %T fails with type mismatch", key)
		assert.Truef(t, errors.Is(errContains, adt.TypeMismatch{}), "contains %T fails with type mismatch", key)
		assert.Truef(t, errors.Is(errPop, adt.TypeMismatch{}), "pop %T fails with type mismatch", key)
	}
	assert.Equal(t, 1, d.Len(), "nothing added")
}

func testMixedKinds(t *testing.T, d adt.Dict[any, int]) {
	// Execute
	require.NoError(t, d.Set(1, 1), "set int")
	require.NoError(t, d.Set("1", 2), "set string")
	require.NoError(t, d.Set(uint(1), 3), "set uint")
	require.NoError(t, d.Set(1.5, 4), "set float")
	require.NoError(t, d.Set([]byte("1"), 5), "set bytes")
	require.NoError(t, d.Set(true, 6), "set bool")
	require.NoError(t, d.Set(int64(1), 7), "overwrite int with int64")

	// Check
	assert.Equal(t, 6, d.Len(), "int and int64 share a key")
	v, err := d.Get(int8(1))
	assert.NoError(t, err, "get by int8")
	assert.Equal(t, 7, v, "int widths are one key")
	v, _ = d.Get("1")
	assert.Equal(t, 2, v, "string key distinct")
	v, _ = d.Get(uint16(1))
	assert.Equal(t, 3, v, "unsigned key distinct")
	v, _ = d.Get([]byte("1"))
	assert.Equal(t, 5, v, "bytes key looked up by content")
	v, _ = d.Get(float32(1.5))
	assert.Equal(t, 4, v, "float widths are one key")
}

func testByteKeyCopied(t *testing.T, d adt.Dict[any, int]) {
	// Prepare
	key := []byte("ab")
	require.NoError(t, d.Set(key, 1), "set bytes")

	// Execute
	key[0] = 'x'

	// Check
	v, err := d.Get([]byte("ab"))
	assert.NoError(t, err, "original bytes still found")
	assert.Equal(t, 1, v, "value under original bytes")
	found, err := d.Contains([]byte("xb"))
	assert.NoError(t, err, "contains has no error")
	assert.False(t, found, "changed bytes not a key")
	for k := range d.Keys() {
		assert.Equal(t, []byte("ab"), k, "stored key unchanged")
	}
	assert.Equal(t, 1, d.Len(), "one entry")
}
