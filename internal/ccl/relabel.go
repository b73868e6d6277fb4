package ccl

// relabel finalizes the intra-tile equivalence closure (C3) and builds the
// dense local_label → root_local_label map (C4, spec §4.3–§4.4).
//
// With equivTable's union-find representation, C3's "combined chain"
// resolution (rewriting rows so no label is dependent on two different
// roots) and its root-chasing pass are already maintained incrementally by
// every record() call; there is nothing left to iterate to a fixed point.
// This function is the one place both spec stages collapse into: reading
// out each label's canonical root exactly once.
//
// localRoot has length maxcount+1; localRoot[0] is unused. roots lists, in
// ascending order, every label that is its own root (mc[tile] = len(roots),
// spec §3's "global count map"). histogram has length maxcount+1 and
// accumulates each provisional label's pixel count into its root's slot.
func relabel(et *equivTable, maxcount uint32, counts []int64) (localRoot []uint32, roots []uint32, histogram []int64) {
	localRoot = make([]uint32, maxcount+1)
	histogram = make([]int64, maxcount+1)

	for j := uint32(1); j <= maxcount; j++ {
		root := et.find(j)
		localRoot[j] = root
		histogram[root] += counts[j]
	}
	for j := uint32(1); j <= maxcount; j++ {
		if localRoot[j] == j {
			roots = append(roots, j)
		}
	}
	return localRoot, roots, histogram
}
