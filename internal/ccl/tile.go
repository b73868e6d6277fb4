package ccl

// tileResult bundles a tile's state after the intra-tile pipeline (C2–C5):
// its label matrix (now holding local-root labels), the set of local roots,
// and their per-component pixel histograms (spec §3: "(lab_mat[tile],
// PARENT[tile], maxcount[tile])").
type tileResult struct {
	TX, TY    int // this tile's position in the tile grid
	Lab       *LabelMatrix
	Maxcount  uint32
	LocalRoot []uint32 // size Maxcount+1; LocalRoot[j] is j's local root
	Roots     []uint32 // local labels that are their own root, ascending
	Histogram []int64  // size Maxcount+1; Histogram[root] is that component's tile-local pixel count
}

// processTile runs C2 through C5 on one tile of the padded raster.
func processTile(raster *Raster, p Params, tx, ty int) *tileResult {
	tile := raster.Tile(p, tx, ty)
	lab, et, maxcount, counts := firstScan(tile)
	localRoot, roots, histogram := relabel(et, maxcount, counts)
	secondScan(lab, localRoot)

	return &tileResult{
		TX:        tx,
		TY:        ty,
		Lab:       lab,
		Maxcount:  maxcount,
		LocalRoot: localRoot,
		Roots:     roots,
		Histogram: histogram,
	}
}
