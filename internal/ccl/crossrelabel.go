package ccl

// assignGlobalIDs is C8: it walks the closed forest and assigns a dense,
// 1-based global ID to each distinct root class, in the order roots are
// first encountered while scanning forest.keys (spec §4.8's "global
// renumbering pass"). forest.keys is in the order buildCrossEquivalence
// registered them: tiles in row-major order, and within a tile first the
// labels met on the north seam (by column), then those met on the west seam
// (by row), then the remaining local roots in ascending order. That order is
// fixed by the input, so two runs over the same input produce identical
// global IDs — the determinism spec §8 asks for.
//
// Returns globalOf, mapping every (tile, local-root) key to its global ID,
// and g, the total number of distinct global components.
func assignGlobalIDs(forest *crossForest) (globalOf map[tileLabel]uint32, g uint32) {
	globalOf = make(map[tileLabel]uint32, len(forest.keys))
	rootGlobal := make(map[int]uint32, len(forest.keys))

	for id, key := range forest.keys {
		root := forest.parent[id]
		gid, ok := rootGlobal[root]
		if !ok {
			g++
			gid = g
			rootGlobal[root] = gid
		}
		globalOf[key] = gid
	}
	return globalOf, g
}
