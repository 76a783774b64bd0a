package dicttest

import (
	"fmt"
	"testing"

	"github.com/gostonefire/adt"
)

// Benchmark is one named benchmark body over a dictionary created by a DictFactory
type Benchmark struct {
	Name string
	Run  func(b *testing.B, factory DictFactory, keys []string)
}

// Benchmarks lists the dictionary benchmarks in the order they are reported
var Benchmarks = []Benchmark{
	{Name: "set", Run: benchmarkSet},
	{Name: "set-existing", Run: benchmarkSetExisting},
	{Name: "get", Run: benchmarkGet},
	{Name: "contains-not", Run: benchmarkContainsNot},
	{Name: "pop", Run: benchmarkPop},
}

// Keys returns n distinct keys
func Keys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("key-%d", i)
	}
	return keys
}

// RunDictBenchmarks runs all benchmarks for a dictionary implementation
func RunDictBenchmarks(b *testing.B, name string, factory DictFactory, keys []string) {
	for _, bm := range Benchmarks {
		b.Run(fmt.Sprintf("%s/%s", name, bm.Name), func(b *testing.B) {
			bm.Run(b, factory, keys)
		})
	}
}

// fill sets every key of keys in d
func fill(b *testing.B, d adt.Dict[string, int], keys []string) {
	for i, key := range keys {
		if err := d.Set(key, i); err != nil {
			b.Fatalf("error setting key: %v", err)
		}
	}
}

func benchmarkSet(b *testing.B, factory DictFactory, keys []string) {
	d := factory()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if i%len(keys) == 0 {
			b.StopTimer()
			d.Clear()
			b.StartTimer()
		}
		_ = d.Set(keys[i%len(keys)], i)
	}
}

func benchmarkSetExisting(b *testing.B, factory DictFactory, keys []string) {
	d := factory()
	fill(b, d, keys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = d.Set(keys[i%len(keys)], i)
	}
}

func benchmarkGet(b *testing.B, factory DictFactory, keys []string) {
	d := factory()
	fill(b, d, keys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Get(keys[i%len(keys)])
	}
}

func benchmarkContainsNot(b *testing.B, factory DictFactory, keys []string) {
	d := factory()
	fill(b, d, keys)
	missing := fmt.Sprintf("missing-%d", len(keys))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Contains(missing)
	}
}

// benchmarkPop pops and sets the same key again so that the dictionary stays at the same size
func benchmarkPop(b *testing.B, factory DictFactory, keys []string) {
	d := factory()
	fill(b, d, keys)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		key := keys[i%len(keys)]
		_, _ = d.Pop(key, 0)
		_ = d.Set(key, i)
	}
}
