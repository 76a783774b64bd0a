package hash

// HomeIndex - Returns the slot a hash value belongs to in a table of tableSize slots.
// The table sizes used by the dictionaries are not powers of two so the reduction is a plain modulo.
func HomeIndex(hashValue uint64, tableSize int) int {
	return int(hashValue % uint64(tableSize))
}

// ProbeIteration - Implements Linear Probing, returning the slot visited in the given iteration
// when starting from home. Iteration is expected to be in the range 0 -> tableSize - 1.
func ProbeIteration(home, iteration, tableSize int) int {
	probe := home + iteration
	if probe >= tableSize {
		probe -= tableSize
	}

	return probe
}
