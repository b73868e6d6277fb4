package ccl

// secondScan rewrites a tile's label matrix in place from provisional local
// labels to local-root labels (C5, spec §4.5). Background (0) maps to 0 by
// construction: localRoot[0] is never read since label indices start at 1.
func secondScan(lab *LabelMatrix, localRoot []uint32) {
	for i, v := range lab.Lab {
		if v != 0 {
			lab.Lab[i] = localRoot[v]
		}
	}
}
