package bench

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"testing"

	"github.com/gostonefire/adt"
	"github.com/gostonefire/adt/arraydict"
	"github.com/gostonefire/adt/cmd/util"
	"github.com/gostonefire/adt/hashdict"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/gostonefire/adt/internal/dicttest"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/puzpuzpuz/xsync/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Logger = logger.GetLogger("bench")

var (
	BenchCmd = &cobra.Command{
		Use:     "bench",
		Short:   "Benchmark the dictionary implementations",
		Long:    `Runs set, get, contains and pop benchmarks against hashdict and arraydict and prints one line per result.`,
		PreRunE: processBenchConfig,
		RunE:    run,
	}
	benchKeys     = 1000
	benchSkip     = make([]string, 0)
	benchParallel = false
	benchHash     = hashfunc.CRC32
)

func init() {
	// add flags
	key := "keys"
	BenchCmd.Flags().Int(key, 1000, util.WrapString("How many different keys to use for the benchmarks"))
	key = "skip"
	BenchCmd.Flags().String(key, "", util.WrapString("Benchmarks or implementations to skip (comma separated - e.g. set,get,arraydict)"))
	key = "parallel"
	BenchCmd.Flags().Bool(key, false, util.WrapString("Run the benchmarks concurrently, faster but less accurate"))
}

func processBenchConfig(cmd *cobra.Command, _ []string) (err error) {
	if err = util.BindFlags(cmd); err != nil {
		return
	}

	benchKeys = viper.GetInt("keys")
	if benchKeys <= 0 {
		return fmt.Errorf("invalid number of keys %d", benchKeys)
	}
	benchSkip = strings.Split(viper.GetString("skip"), ",")
	benchParallel = viper.GetBool("parallel")
	benchHash, err = util.GetHashAlgorithm()

	return
}

// Implementations returns a factory per dictionary implementation using the given hash algorithm
func Implementations(alg hashfunc.Algorithm) map[string]dicttest.DictFactory {
	return map[string]dicttest.DictFactory{
		"hashdict": func() adt.Dict[string, int] {
			d, _ := hashdict.New[string, int](hashdict.Conf[string]{HashAlgorithm: alg})
			return d
		},
		"arraydict": func() adt.Dict[string, int] {
			d, _ := arraydict.New[string, int](arraydict.Conf[string]{HashAlgorithm: alg})
			return d
		},
	}
}

// Run executes every benchmark not named in skip for every implementation not named in skip.
// Results are keyed by implementation/benchmark.
func Run(alg hashfunc.Algorithm, nKeys int, skip []string, parallel bool) *xsync.MapOf[string, testing.BenchmarkResult] {
	results := xsync.NewMapOf[string, testing.BenchmarkResult]()
	keys := dicttest.Keys(nKeys)

	var wg sync.WaitGroup
	for implName, factory := range Implementations(alg) {
		if slices.Contains(skip, implName) {
			continue
		}
		for _, bm := range dicttest.Benchmarks {
			if slices.Contains(skip, bm.Name) {
				continue
			}
			name := fmt.Sprintf("%s/%s", implName, bm.Name)
			runOne := func() {
				Logger.Debugf("running %s", name)
				result := testing.Benchmark(func(b *testing.B) {
					bm.Run(b, factory, keys)
				})
				results.Store(name, result)
			}
			if !parallel {
				runOne()
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				runOne()
			}()
		}
	}
	wg.Wait()

	return results
}

func run(_ *cobra.Command, _ []string) error {
	Logger.Infof("benchmarking with %d keys (hash=%s, parallel=%t)", benchKeys, benchHash, benchParallel)

	results := Run(benchHash, benchKeys, benchSkip, benchParallel)

	names := make([]string, 0, results.Size())
	results.Range(func(name string, _ testing.BenchmarkResult) bool {
		names = append(names, name)
		return true
	})
	slices.Sort(names)

	for _, name := range names {
		result, _ := results.Load(name)
		printResult(name, result)
	}

	return nil
}

func printResult(name string, result testing.BenchmarkResult) {
	fmt.Printf("%-25s %12d ops %12d ns/op %8d B/op %6d allocs/op\n",
		name, result.N, result.NsPerOp(), result.AllocedBytesPerOp(), result.AllocsPerOp())
}
