package ccl

// firstScan performs C2: a forward raster scan of one tile using the
// forward-scan mask {nw, nn, ne, ww} (spec §4.2). It assigns provisional
// labels to foreground pixels and records intra-tile equivalences into the
// returned equivTable. The priority order nn > ww > nw > ne is the one the
// spec calls out as producing at most one equivalence per pixel.
//
// Returns the provisional label matrix, the equivalence table, the number
// of distinct labels assigned (maxcount), and a per-label pixel histogram
// (counts[0] unused, counts[label] is that provisional label's pixel count
// before any union — spec §4.2's count[·]).
func firstScan(tile *Raster) (lab *LabelMatrix, et *equivTable, maxcount uint32, counts []int64) {
	capHint := equivCapacity(tile.W, tile.H)
	lab = newLabelMatrix(tile.W, tile.H)
	et = newEquivTable(capHint)
	counts = make([]int64, 1, capHint+1)

	for r := 0; r < tile.H; r++ {
		for c := 0; c < tile.W; c++ {
			if tile.At(c, r) != Vo {
				continue
			}

			nn := lab.At(c, r-1)
			ww := lab.At(c-1, r)
			nw := lab.At(c-1, r-1)
			ne := lab.At(c+1, r-1)

			var cur uint32
			switch {
			case nn != 0:
				cur = nn
			case ww != 0:
				cur = ww
				if ne != 0 && ne != ww {
					et.record(ne, ww)
				}
			case nw != 0:
				cur = nw
				if ne != 0 {
					et.record(ne, nw)
				}
			case ne != 0:
				cur = ne
			default:
				cur = et.newLabel()
				maxcount++
				counts = append(counts, 0)
			}

			lab.Set(c, r, cur)
			counts[cur]++
		}
	}
	return lab, et, maxcount, counts
}
