package huffpack

// countSymbols scans the symbol stream once and returns exact occurrence
// counts. The keys are exactly the distinct symbols observed; the map is
// treated as immutable once built.
func countSymbols(units []uint16) map[uint16]int {
	freqs := make(map[uint16]int, 64)
	for _, u := range units {
		freqs[u]++
	}
	return freqs
}
