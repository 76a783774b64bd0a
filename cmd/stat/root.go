package stat

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/VictoriaMetrics/metrics"
	"github.com/gostonefire/adt/cmd/util"
	"github.com/gostonefire/adt/hashdict"
	"github.com/gostonefire/adt/hashfunc"
	"github.com/lni/dragonboat/v4/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var Logger = logger.GetLogger("stat")

// Config - Parameters of one stat run
//   - Keys is the number of random keys to insert
//   - Capacity is the initial capacity of the dictionary, 0 gives the default
//   - Seed seeds the key generator so that runs are repeatable
//   - Hash is the hash algorithm of the dictionary
//   - PopRatio is the share of the inserted keys to pop again, in the range 0 -> 1
type Config struct {
	Keys     int
	Capacity int
	Seed     int64
	Hash     hashfunc.Algorithm
	PopRatio float64
}

var (
	statConfig = Config{}
	StatCmd    = &cobra.Command{
		Use:     "stat",
		Short:   "Fill a hash dictionary with random keys and print its slot table statistics",
		Long:    `Fill a hash dictionary with random keys, pop a share of them again and print entries, tombstones, load factor and probe lengths. The configuration can be set via command line flags or environment variables. The format of the environment variables is ADT_<flag> (e.g. ADT_POP_RATIO=0.5)`,
		PreRunE: processConfig,
		RunE:    run,
	}
)

func init() {
	// add flags
	key := "keys"
	StatCmd.Flags().Int(key, 10000, util.WrapString("How many random keys to insert"))
	key = "capacity"
	StatCmd.Flags().Int(key, 0, util.WrapString("Initial capacity of the dictionary (0 for the default)"))
	key = "seed"
	StatCmd.Flags().Int64(key, 1, util.WrapString("Seed of the random key generator"))
	key = "pop-ratio"
	StatCmd.Flags().Float64(key, 0, util.WrapString("Share of the inserted keys to pop again (0 - 1), popped keys leave tombstones"))
	key = "distribution"
	StatCmd.Flags().Bool(key, false, util.WrapString("Print the number of entries per probe length"))
	key = "prometheus"
	StatCmd.Flags().Bool(key, false, util.WrapString("Print the statistics in Prometheus text format"))
}

// processConfig reads the configuration from the command line flags and environment variables
func processConfig(cmd *cobra.Command, _ []string) (err error) {
	if err = util.BindFlags(cmd); err != nil {
		return
	}

	statConfig.Keys = viper.GetInt("keys")
	statConfig.Capacity = viper.GetInt("capacity")
	statConfig.Seed = viper.GetInt64("seed")
	statConfig.PopRatio = viper.GetFloat64("pop-ratio")
	statConfig.Hash, err = util.GetHashAlgorithm()

	return
}

func run(_ *cobra.Command, _ []string) error {
	Logger.Infof("filling dictionary with %d keys (hash=%s, seed=%d, pop-ratio=%.2f)", statConfig.Keys, statConfig.Hash, statConfig.Seed, statConfig.PopRatio)

	dictStat, err := Collect(statConfig, viper.GetBool("distribution") || viper.GetBool("prometheus"))
	if err != nil {
		return err
	}

	if viper.GetBool("prometheus") {
		WritePrometheus(os.Stdout, dictStat)
		return nil
	}

	fmt.Println(dictStat.String())
	if viper.GetBool("distribution") {
		for probeLength, n := range dictStat.ProbeDistribution {
			fmt.Printf("%4d %d\n", probeLength, n)
		}
	}

	return nil
}

// Collect fills a new hash dictionary according to conf and returns its statistics
func Collect(conf Config, includeDistribution bool) (*hashdict.DictStat, error) {
	if conf.Keys < 0 {
		return nil, fmt.Errorf("invalid number of keys %d", conf.Keys)
	}
	if conf.PopRatio < 0 || conf.PopRatio > 1 {
		return nil, fmt.Errorf("invalid pop ratio %.2f. must be between 0 and 1", conf.PopRatio)
	}

	d, err := hashdict.New[int64, int](hashdict.Conf[int64]{InitialCapacity: conf.Capacity, HashAlgorithm: conf.Hash})
	if err != nil {
		return nil, err
	}

	rnd := rand.New(rand.NewSource(conf.Seed))
	keys := make([]int64, 0, conf.Keys)
	for d.Len() < conf.Keys {
		key := rnd.Int63()
		if found, _ := d.Contains(key); found {
			continue
		}
		if err = d.Set(key, len(keys)); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	Logger.Debugf("inserted %d keys, capacity %d", d.Len(), d.Capacity())

	nPop := int(conf.PopRatio * float64(conf.Keys))
	for _, key := range keys[:nPop] {
		if _, err = d.Remove(key); err != nil {
			return nil, err
		}
	}
	Logger.Debugf("popped %d keys", nPop)

	return d.Stat(includeDistribution), nil
}

// WritePrometheus writes dictStat as gauges and a probe length histogram in Prometheus text format.
// The probe length histogram is only populated if dictStat holds a distribution.
func WritePrometheus(w io.Writer, dictStat *hashdict.DictStat) {
	set := metrics.NewSet()

	set.NewGauge("adt_hashdict_entries", func() float64 { return float64(dictStat.Entries) })
	set.NewGauge("adt_hashdict_tombstones", func() float64 { return float64(dictStat.Tombstones) })
	set.NewGauge("adt_hashdict_empty_slots", func() float64 { return float64(dictStat.Empty) })
	set.NewGauge("adt_hashdict_capacity", func() float64 { return float64(dictStat.Capacity) })
	set.NewGauge("adt_hashdict_load_factor", func() float64 { return dictStat.LoadFactor })
	set.NewGauge("adt_hashdict_max_probe_length", func() float64 { return float64(dictStat.MaxProbeLength) })

	histogram := set.NewHistogram("adt_hashdict_probe_length")
	for probeLength, n := range dictStat.ProbeDistribution {
		for i := 0; i < n; i++ {
			histogram.Update(float64(probeLength))
		}
	}

	set.WritePrometheus(w)
}
