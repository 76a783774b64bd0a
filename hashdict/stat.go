package hashdict

import (
	"fmt"

	"github.com/gostonefire/adt/internal/model"
)

// DictStat - Statistics on the overall usage and probe length distribution of the slot table
//   - Entries is the number of live entries
//   - Tombstones is the number of slots vacated since the last rehash and not yet reclaimed
//   - Empty is the number of slots never used since the last rehash, when it reaches zero lookups of missing keys scan every slot
//   - Capacity is the total number of slots
//   - LoadFactor is Entries divided by Capacity
//   - MaxProbeLength is the longest probe length among the live entries
//   - ProbeDistribution holds at index n the number of live entries with probe length n
type DictStat struct {
	Entries           int
	Tombstones        int
	Empty             int
	Capacity          int
	LoadFactor        float64
	MaxProbeLength    int
	ProbeDistribution []int
}

// Stat - Walks through the entire slot table and produce a DictStat struct with information.
//   - includeDistribution set to true will include a slice of length MaxProbeLength + 1 with number of entries per probe length, false will set DictStat.ProbeDistribution to nil.
func (H *HashDict[K, V]) Stat(includeDistribution bool) (dictStat *DictStat) {
	var ds DictStat
	var distribution []int

	ds.Capacity = H.capacity
	for i := 0; i < H.capacity; i++ {
		slot := H.slotAt(i)
		switch slot.State {
		case model.SlotEmpty:
			ds.Empty++
		case model.SlotTombstone:
			ds.Tombstones++
		case model.SlotOccupied:
			ds.Entries++
			probeLength := slot.Entry.ProbeLength
			ds.MaxProbeLength = max(ds.MaxProbeLength, probeLength)
			if includeDistribution {
				for len(distribution) <= probeLength {
					distribution = append(distribution, 0)
				}
				distribution[probeLength]++
			}
		}
	}
	ds.LoadFactor = float64(ds.Entries) / float64(ds.Capacity)
	if includeDistribution {
		if distribution == nil {
			distribution = []int{}
		}
		ds.ProbeDistribution = distribution
	}

	dictStat = &ds
	return
}

// String - Returns a one line summary of the statistics
func (D *DictStat) String() string {
	return fmt.Sprintf("entries=%d tombstones=%d empty=%d capacity=%d load=%.3f max_probe=%d",
		D.Entries, D.Tombstones, D.Empty, D.Capacity, D.LoadFactor, D.MaxProbeLength)
}
