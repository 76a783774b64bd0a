//go:build unit

package hash

import (
	"errors"
	"fmt"
	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/stretchr/testify/assert"
	"math"
	"testing"
)

type point struct {
	x, y int
}

// Hash - Lets point take part in the built-in hashers
func (p point) Hash() uint64 {
	return uint64(p.x)*31 + uint64(p.y)
}

// Equal - Compares against another point
func (p point) Equal(other any) bool {
	o, ok := other.(point)
	return ok && o == p
}

type label string

func TestNewHasher(t *testing.T) {
	t.Run("returns built-in hashers", func(t *testing.T) {
		// Execute
		h1, err1 := NewHasher[string](hashfunc.CRC32)
		h2, err2 := NewHasher[string](hashfunc.XXHash64)

		// Check
		assert.NoError(t, err1, "crc32 hasher created")
		assert.IsType(t, &CRC32Hasher[string]{}, h1, "crc32 hasher type")
		assert.NoError(t, err2, "xxhash hasher created")
		assert.IsType(t, &XXHasher[string]{}, h2, "xxhash hasher type")
	})

	t.Run("rejects unknown algorithm", func(t *testing.T) {
		// Execute
		_, err := NewHasher[string](hashfunc.Algorithm(42))

		// Check
		assert.True(t, errors.Is(err, adt.InvalidArgument{}), "invalid argument error")
	})
}

func TestCRC32Hasher_Hash(t *testing.T) {
	t.Run("hashes the tagged key encoding", func(t *testing.T) {
		// Prepare
		h := NewCRC32Hasher[string]()

		// Execute
		v, err := h.Hash("abc")

		// Check
		assert.NoError(t, err, "string is hashable")
		assert.Equal(t, uint64(2460698814), v, "crc32 over 's' + key")
	})

	t.Run("same key gives same hash for all supported kinds", func(t *testing.T) {
		// Prepare
		h := NewCRC32Hasher[any]()
		keys := []any{"abc", []byte("abc"), true, false, 42, int8(-3), uint16(7), 3.25, float32(1.5), label("x")}

		for _, key := range keys {
			t.Run(fmt.Sprintf("hashes %T", key), func(t *testing.T) {
				// Execute
				v1, err1 := h.Hash(key)
				v2, err2 := h.Hash(key)

				// Check
				assert.NoError(t, err1, "first hash")
				assert.NoError(t, err2, "second hash")
				assert.Equal(t, v1, v2, "hash is stable")
			})
		}
	})

	t.Run("rejects unhashable key types", func(t *testing.T) {
		// Prepare
		h := NewCRC32Hasher[any]()
		keys := []any{[]int{1, 2}, map[string]int{}, struct{ a int }{1}, nil, func() {}}

		for _, key := range keys {
			t.Run(fmt.Sprintf("rejects %T", key), func(t *testing.T) {
				// Execute
				_, err := h.Hash(key)

				// Check
				assert.True(t, errors.Is(err, adt.TypeMismatch{}), "type mismatch error")
			})
		}
	})

	t.Run("uses the Hashable implementation", func(t *testing.T) {
		// Prepare
		h := NewCRC32Hasher[point]()

		// Execute
		v, err := h.Hash(point{x: 1, y: 2})

		// Check
		assert.NoError(t, err, "hashable key")
		assert.Equal(t, uint64(33), v, "own hash value")
	})
}

func TestXXHasher_Hash(t *testing.T) {
	t.Run("differs from crc32 but is stable", func(t *testing.T) {
		// Prepare
		x := NewXXHasher[string]()
		c := NewCRC32Hasher[string]()

		// Execute
		v1, err1 := x.Hash("abc")
		v2, _ := x.Hash("abc")
		v3, _ := c.Hash("abc")

		// Check
		assert.NoError(t, err1, "string is hashable")
		assert.Equal(t, v1, v2, "hash is stable")
		assert.NotEqual(t, v3, v1, "different algorithm")
	})

	t.Run("rejects unhashable key types", func(t *testing.T) {
		// Prepare
		h := NewXXHasher[any]()

		// Execute
		_, err := h.Hash([]string{"a"})

		// Check
		assert.True(t, errors.Is(err, adt.TypeMismatch{}), "type mismatch error")
	})
}

func TestEqualKeys(t *testing.T) {
	t.Run("compares keys of supported kinds", func(t *testing.T) {
		// Prepare
		h := NewCRC32Hasher[any]()
		tests := []struct {
			name  string
			a, b  any
			equal bool
		}{
			{name: "equal strings", a: "a", b: "a", equal: true},
			{name: "different strings", a: "a", b: "b", equal: false},
			{name: "equal byte slices", a: []byte{1, 2}, b: []byte{1, 2}, equal: true},
			{name: "string and bytes", a: "a", b: []byte("a"), equal: false},
			{name: "int widths", a: int8(5), b: int64(5), equal: true},
			{name: "string and int", a: "1", b: 1, equal: false},
			{name: "signed and unsigned", a: 1, b: uint(1), equal: false},
			{name: "negative zero", a: 0.0, b: math.Copysign(0, -1), equal: true},
			{name: "named string", a: label("x"), b: "x", equal: true},
			{name: "hashable", a: point{1, 2}, b: point{1, 2}, equal: true},
			{name: "hashable and string", a: "p", b: point{1, 2}, equal: false},
		}

		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				// Execute
				equal, err := h.Equal(test.a, test.b)

				// Check
				assert.NoError(t, err, "keys are comparable")
				assert.Equal(t, test.equal, equal, "correct equality")
			})
		}
	})

	t.Run("rejects unsupported key types", func(t *testing.T) {
		// Prepare
		h := NewCRC32Hasher[any]()

		// Execute
		_, err := h.Equal(1, []int{1})

		// Check
		assert.True(t, errors.Is(err, adt.TypeMismatch{}), "type mismatch error")
	})
}

type blob []byte

func TestCloneKey(t *testing.T) {
	t.Run("copies byte slices", func(t *testing.T) {
		// Prepare
		b := []byte("ab")
		n := blob("cd")

		// Execute
		cb := CloneKey(b)
		ca := CloneKey[any](b)
		cn := CloneKey(n)
		b[0], n[0] = 'x', 'x'

		// Check
		assert.Equal(t, []byte("ab"), cb, "byte slice copied")
		assert.Equal(t, []byte("ab"), ca, "byte slice behind any copied")
		assert.Equal(t, blob("cd"), cn, "named byte slice copied")
	})

	t.Run("returns other keys as is", func(t *testing.T) {
		// Check
		assert.Equal(t, "ab", CloneKey("ab"), "string")
		assert.Equal(t, 3, CloneKey[any](3), "int behind any")
		assert.Nil(t, CloneKey[[]byte](nil), "nil slice")
	})
}
