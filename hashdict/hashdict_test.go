//go:build unit

package hashdict

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/dicttest"
	"github.com/gostonefire/adt/internal/hash"
	"github.com/gostonefire/adt/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	x, y int
}

func (p point) Hash() uint64 {
	return uint64(p.x*31 + p.y)
}

func (p point) Equal(other any) bool {
	o, ok := other.(point)
	return ok && o == p
}

// identityHasher hashes an int to itself, making home slots predictable
func identityHasher() hashfunc.Hasher[int] {
	return hashfunc.NewHasherFunc(func(k int) uint64 { return uint64(k) }, func(a, b int) bool { return a == b })
}

// constantHasher hashes every int to 7, forcing all keys into one probe chain
func constantHasher() hashfunc.Hasher[int] {
	return hashfunc.NewHasherFunc(func(int) uint64 { return 7 }, func(a, b int) bool { return a == b })
}

// checkProbeLengths verifies that every live entry sits ProbeLength linear steps from its home slot
func checkProbeLengths[K, V any](t *testing.T, H *HashDict[K, V]) {
	t.Helper()
	for i := 0; i < H.capacity; i++ {
		slot := H.slotAt(i)
		if slot.State != model.SlotOccupied {
			continue
		}
		home := hash.HomeIndex(slot.Entry.Hash, H.capacity)
		assert.Equalf(t, slot.Entry.ProbeLength, (i-home+H.capacity)%H.capacity, "probe length of entry in slot %d", i)
	}
}

func TestConformance(t *testing.T) {
	for _, alg := range []hashfunc.Algorithm{hashfunc.CRC32, hashfunc.XXHash64} {
		dicttest.RunDictTests(t, fmt.Sprintf("HashDict/%s", alg), func() adt.Dict[string, int] {
			d, err := New[string, int](Conf[string]{HashAlgorithm: alg})
			require.NoError(t, err, "create dict")
			return d
		})
		dicttest.RunKeyTypeTests(t, fmt.Sprintf("HashDict/%s", alg), func() adt.Dict[any, int] {
			d, err := New[any, int](Conf[any]{HashAlgorithm: alg})
			require.NoError(t, err, "create dict")
			return d
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("zero conf gives defaults", func(t *testing.T) {
		// Execute
		d, err := New[string, int](Conf[string]{})

		// Check
		require.NoError(t, err, "create dict")
		assert.Equal(t, DefaultCapacity, d.Capacity(), "default capacity")
		assert.Equal(t, 0, d.Len(), "empty")
		assert.IsType(t, &hash.CRC32Hasher[string]{}, d.hasher, "crc32 hasher")
	})

	t.Run("rejects bad configuration", func(t *testing.T) {
		// Execute
		_, errCapacity := New[string, int](Conf[string]{InitialCapacity: -1})
		_, errAlgorithm := New[string, int](Conf[string]{HashAlgorithm: hashfunc.Algorithm(99)})

		// Check
		assert.True(t, errors.Is(errCapacity, adt.InvalidArgument{}), "negative capacity rejected")
		assert.True(t, errors.Is(errAlgorithm, adt.InvalidArgument{}), "unknown algorithm rejected")
	})

	t.Run("custom hasher overrides algorithm", func(t *testing.T) {
		// Execute
		d, err := New[int, int](Conf[int]{HashAlgorithm: hashfunc.Algorithm(99), Hasher: identityHasher()})

		// Check
		require.NoError(t, err, "create dict")
		require.NoError(t, d.Set(3, 3), "set")
		assert.Equal(t, model.SlotOccupied, d.slotAt(3).State, "identity home slot used")
	})
}

func TestNewFromSlices(t *testing.T) {
	t.Run("pairs keys with values", func(t *testing.T) {
		// Execute
		d, err := NewFromSlices([]string{"a", "b", "a"}, []int{1, 2, 3}, Conf[string]{})

		// Check
		require.NoError(t, err, "create dict")
		assert.Equal(t, 2, d.Len(), "duplicate collapsed")
		a, _ := d.Get("a")
		assert.Equal(t, 3, a, "later duplicate wins")
	})

	t.Run("length mismatch", func(t *testing.T) {
		// Execute
		d, err := NewFromSlices([]string{"a", "b"}, []int{1}, Conf[string]{})

		// Check
		assert.Nil(t, d, "no dict")
		assert.True(t, errors.Is(err, adt.LengthMismatch{}), "length mismatch")
		assert.True(t, errors.Is(err, adt.InvalidArgument{}), "also invalid argument")
		assert.EqualError(t, err, "cannot initialize 2 keys with 1 values", "message")
	})

	t.Run("unhashable key", func(t *testing.T) {
		// Execute
		d, err := NewFromSlices([]any{"a", []int{1}}, []int{1, 2}, Conf[any]{})

		// Check
		assert.Nil(t, d, "no dict")
		assert.True(t, errors.Is(err, adt.TypeMismatch{}), "type mismatch")
	})
}

func TestScenario(t *testing.T) {
	// Prepare
	d, err := New[string, any](Conf[string]{})
	require.NoError(t, err, "create dict")

	// Execute
	require.NoError(t, d.Set("a", 1), "set a")
	require.NoError(t, d.Set("b", 2), "set b")
	require.NoError(t, d.Set("c", 3), "set c")

	// Check
	b, err := d.Get("b")
	assert.NoError(t, err, "get b")
	assert.Equal(t, 2, b, "b")
	a, err := d.Pop("a", nil)
	assert.NoError(t, err, "pop a")
	assert.Equal(t, 1, a, "popped a")
	found, err := d.Contains("a")
	assert.NoError(t, err, "contains a")
	assert.False(t, found, "a gone")
	c, err := d.Get("c")
	assert.NoError(t, err, "get c")
	assert.Equal(t, 3, c, "c")
}

func TestRobinHood(t *testing.T) {
	t.Run("displaces entry with shorter probe length", func(t *testing.T) {
		// Prepare
		d, err := New[int, string](Conf[int]{Hasher: identityHasher()})
		require.NoError(t, err, "create dict")

		// Execute
		for _, k := range []int{0, 10, 1, 20} {
			require.NoErrorf(t, d.Set(k, fmt.Sprint(k)), "set %d", k)
		}

		// Check
		expected := []struct {
			key         int
			probeLength int
		}{{0, 0}, {10, 1}, {20, 2}, {1, 2}}
		for i, e := range expected {
			slot := d.slotAt(i)
			assert.Equalf(t, model.SlotOccupied, slot.State, "slot %d occupied", i)
			assert.Equalf(t, e.key, slot.Entry.Key, "key in slot %d", i)
			assert.Equalf(t, e.probeLength, slot.Entry.ProbeLength, "probe length in slot %d", i)
		}
		assert.Equal(t, 2, d.MaxProbeLength(), "max probe length")
		checkProbeLengths(t, d)
	})

	t.Run("probe lengths stay exact under random load", func(t *testing.T) {
		// Prepare
		d, err := New[int, int](Conf[int]{Hasher: identityHasher(), InitialCapacity: 16})
		require.NoError(t, err, "create dict")
		rnd := rand.New(rand.NewSource(7))

		// Execute
		for i := 0; i < 3000; i++ {
			k := rnd.Intn(1000)
			if rnd.Intn(3) == 0 {
				_, err = d.Pop(k, 0)
			} else {
				err = d.Set(k, i)
			}
			require.NoErrorf(t, err, "op #%d", i)
		}

		// Check
		checkProbeLengths(t, d)
	})
}

func TestCollisionChain(t *testing.T) {
	// Prepare
	d, err := New[int, int](Conf[int]{Hasher: constantHasher()})
	require.NoError(t, err, "create dict")
	for k := 1; k <= 5; k++ {
		require.NoErrorf(t, d.Set(k, k*10), "set %d", k)
	}

	t.Run("chain wraps around the table", func(t *testing.T) {
		// Execute
		stat := d.Stat(true)

		// Check
		assert.Equal(t, 5, stat.Entries, "entries")
		assert.Equal(t, 4, stat.MaxProbeLength, "max probe length")
		assert.Equal(t, []int{1, 1, 1, 1, 1}, stat.ProbeDistribution, "one entry per probe length")
		for i, k := range []int{1, 2, 3, 4, 5} {
			slot := d.slotAt((7 + i) % 10)
			assert.Equalf(t, k, slot.Entry.Key, "key %d placed in chain order", k)
		}
	})

	t.Run("tombstone keeps chain intact", func(t *testing.T) {
		// Execute
		v, err := d.Pop(2, 0)

		// Check
		require.NoError(t, err, "pop 2")
		assert.Equal(t, 20, v, "popped value")
		assert.Equal(t, model.SlotTombstone, d.slotAt(8).State, "tombstone left behind")
		for _, k := range []int{1, 3, 4, 5} {
			got, err := d.Get(k)
			assert.NoErrorf(t, err, "get %d past tombstone", k)
			assert.Equalf(t, k*10, got, "value of %d", k)
		}
		found, _ := d.Contains(2)
		assert.False(t, found, "2 gone")
		assert.Equal(t, 1, d.Stat(false).Tombstones, "one tombstone")
	})

	t.Run("insert reclaims tombstone", func(t *testing.T) {
		// Execute
		require.NoError(t, d.Set(6, 60), "set 6")

		// Check
		assert.Equal(t, 6, d.slotAt(8).Entry.Key, "tombstone slot reused")
		assert.Equal(t, 0, d.nTombstones, "tombstone count decremented")
		stat := d.Stat(false)
		assert.Equal(t, 0, stat.Tombstones, "no tombstones")
		assert.Equal(t, 5, stat.Entries, "entries")
		assert.Nil(t, stat.ProbeDistribution, "distribution left out")
		checkProbeLengths(t, d)
	})
}

func TestScanWithoutEmptySlots(t *testing.T) {
	// Prepare
	d, err := New[int, int](Conf[int]{Hasher: identityHasher()})
	require.NoError(t, err, "create dict")
	for k := 0; k < 9; k++ {
		require.NoErrorf(t, d.Set(k, k), "set %d", k)
	}
	for k := 0; k < 9; k++ {
		_, err = d.Pop(k, 0)
		require.NoErrorf(t, err, "pop %d", k)
	}
	require.NoError(t, d.Set(9, 9), "set 9")
	require.Equal(t, 0, d.Stat(false).Empty, "no empty slot left")

	// Execute
	found, err := d.Contains(19)

	// Check
	assert.NoError(t, err, "contains terminates")
	assert.False(t, found, "19 absent")
	require.NoError(t, d.Set(19, 19), "set 19")
	assert.Equal(t, 19, d.slotAt(0).Entry.Key, "placed in first tombstone after home")
	assert.Equal(t, 1, d.slotAt(0).Entry.ProbeLength, "probe length one")
}

func TestLoadFactor(t *testing.T) {
	t.Run("never exceeds maximum after set", func(t *testing.T) {
		// Prepare
		d, err := New[string, int](Conf[string]{})
		require.NoError(t, err, "create dict")

		for i := 0; i < 2000; i++ {
			// Execute
			require.NoErrorf(t, d.Set(fmt.Sprintf("key%d", i), i), "set #%d", i)

			// Check
			require.LessOrEqualf(t, d.LoadFactor(), MaxLoadFactor, "load factor after set #%d", i)
		}
	})

	t.Run("rehash doubles capacity before overflowing insert", func(t *testing.T) {
		// Prepare
		d, err := New[int, int](Conf[int]{})
		require.NoError(t, err, "create dict")
		for k := 0; k < 9; k++ {
			require.NoErrorf(t, d.Set(k, k), "set %d", k)
		}
		require.Equal(t, 10, d.Capacity(), "nine entries fit")

		// Execute
		require.NoError(t, d.Set(9, 9), "set tenth")

		// Check
		assert.Equal(t, 20, d.Capacity(), "capacity doubled")
		assert.Equal(t, 10, d.Len(), "length")
		for k := 0; k < 10; k++ {
			v, err := d.Get(k)
			assert.NoErrorf(t, err, "get %d after rehash", k)
			assert.Equalf(t, k, v, "value %d after rehash", k)
		}
	})

	t.Run("updates never rehash", func(t *testing.T) {
		// Prepare
		d, err := New[int, int](Conf[int]{})
		require.NoError(t, err, "create dict")
		for k := 0; k < 9; k++ {
			require.NoErrorf(t, d.Set(k, k), "set %d", k)
		}

		// Execute
		require.NoError(t, d.Set(0, 100), "overwrite")

		// Check
		assert.Equal(t, 10, d.Capacity(), "capacity unchanged")
	})
}

func TestRehash(t *testing.T) {
	// Prepare
	d, err := New[int, int](Conf[int]{Hasher: constantHasher()})
	require.NoError(t, err, "create dict")
	for k := 0; k < 8; k++ {
		require.NoErrorf(t, d.Set(k, k), "set %d", k)
	}
	for k := 0; k < 8; k += 2 {
		_, err = d.Pop(k, 0)
		require.NoErrorf(t, err, "pop %d", k)
	}
	require.Equal(t, 4, d.nTombstones, "tombstones before rehash")

	// Execute
	d.rehash(40)

	// Check
	stat := d.Stat(true)
	assert.Equal(t, 40, d.Capacity(), "new capacity")
	assert.Equal(t, 0, stat.Tombstones, "tombstones cleared")
	assert.Equal(t, 0, d.nTombstones, "tombstone count reset")
	assert.Equal(t, 4, stat.Entries, "live entries moved")
	assert.Equal(t, 3, d.MaxProbeLength(), "probe lengths recomputed")
	assert.Equal(t, []int{1, 1, 1, 1}, stat.ProbeDistribution, "compact chain")
	for k := 1; k < 8; k += 2 {
		v, err := d.Get(k)
		assert.NoErrorf(t, err, "get %d", k)
		assert.Equalf(t, k, v, "value of %d", k)
	}
	checkProbeLengths(t, d)
}

func TestProbeLengthGrowth(t *testing.T) {
	// Prepare
	rnd := rand.New(rand.NewSource(1))
	maxProbe := func(n int) int {
		d, err := New[int64, struct{}](Conf[int64]{HashAlgorithm: hashfunc.XXHash64})
		require.NoError(t, err, "create dict")
		for d.Len() < n {
			require.NoError(t, d.Set(rnd.Int63(), struct{}{}), "set random key")
		}
		return d.Stat(false).MaxProbeLength
	}

	// Execute
	small := maxProbe(1000)
	large := maxProbe(100000)

	// Check
	assert.Greater(t, small, 0, "collisions happen")
	assert.Less(t, float64(large)/100000, float64(small)/1000, "max probe length grows slower than table size")
}

func TestHashableKeys(t *testing.T) {
	// Prepare
	d, err := New[point, string](Conf[point]{})
	require.NoError(t, err, "create dict")

	// Execute
	require.NoError(t, d.Set(point{1, 2}, "a"), "set point")
	require.NoError(t, d.Set(point{2, 1}, "b"), "set other point")

	// Check
	v, err := d.Get(point{1, 2})
	assert.NoError(t, err, "get point")
	assert.Equal(t, "a", v, "value")
	assert.Equal(t, uint64(33), d.slotAt(hash.HomeIndex(33, d.Capacity())).Entry.Hash, "own hash used")
	assert.Equal(t, 2, d.Len(), "distinct points")
}

func TestClearCloneString(t *testing.T) {
	t.Run("clear restores initial capacity", func(t *testing.T) {
		// Prepare
		d, err := New[int, int](Conf[int]{InitialCapacity: 4})
		require.NoError(t, err, "create dict")
		for k := 0; k < 20; k++ {
			require.NoErrorf(t, d.Set(k, k), "set %d", k)
		}
		require.Greater(t, d.Capacity(), 4, "table grew")

		// Execute
		d.Clear()

		// Check
		assert.Equal(t, 4, d.Capacity(), "initial capacity")
		assert.Equal(t, 0, d.MaxProbeLength(), "max probe length reset")
		assert.Equal(t, 4, d.Stat(false).Empty, "all slots empty")
	})

	t.Run("clone is independent", func(t *testing.T) {
		// Prepare
		d, err := NewFromSlices([]string{"a", "b"}, []int{1, 2}, Conf[string]{})
		require.NoError(t, err, "create dict")

		// Execute
		c := d.Clone()
		require.NoError(t, c.Set("a", 10), "change clone")
		_, err = c.Pop("b", 0)
		require.NoError(t, err, "pop from clone")

		// Check
		a, _ := d.Get("a")
		assert.Equal(t, 1, a, "original value kept")
		assert.Equal(t, 2, d.Len(), "original length kept")
		assert.Equal(t, 1, c.Len(), "clone length")
	})

	t.Run("string formats entries", func(t *testing.T) {
		// Prepare
		d, err := NewFromSlices([]string{"a"}, []int{1}, Conf[string]{})
		require.NoError(t, err, "create dict")
		empty, err := New[string, int](Conf[string]{})
		require.NoError(t, err, "create empty dict")

		// Check
		assert.Equal(t, `{"a": 1}`, d.String(), "one entry")
		assert.Equal(t, `HashDict{"a": 1}`, fmt.Sprintf("%#v", d), "go syntax")
		assert.Equal(t, "{}", empty.String(), "no entries")
	})
}

func TestByteSliceKeys(t *testing.T) {
	// Prepare
	d, err := New[[]byte, int](Conf[[]byte]{})
	require.NoError(t, err, "create dict")
	key := []byte("ab")
	require.NoError(t, d.Set(key, 1), "set key")

	// Execute
	key[0] = 'x'

	// Check
	v, err := d.Get([]byte("ab"))
	assert.NoError(t, err, "original bytes still found")
	assert.Equal(t, 1, v, "value under original bytes")
	found, _ := d.Contains([]byte("xb"))
	assert.False(t, found, "changed bytes not a key")
	checkProbeLengths(t, d)
}

func TestMaxProbeLength(t *testing.T) {
	// Prepare
	d, err := New[int, int](Conf[int]{Hasher: constantHasher()})
	require.NoError(t, err, "create dict")
	for k := 0; k < 5; k++ {
		require.NoErrorf(t, d.Set(k, k), "set %d", k)
	}
	require.Equal(t, 4, d.MaxProbeLength(), "chain of five")

	// Execute
	_, err = d.Remove(4)
	require.NoError(t, err, "remove tail of chain")

	// Check
	assert.Equal(t, 4, d.MaxProbeLength(), "recorded maximum kept after delete")
	assert.Equal(t, 3, d.Stat(false).MaxProbeLength, "stat reports current maximum")
}
