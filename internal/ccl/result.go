package ccl

// Result is the output of Label: every tile's final, globally-numbered
// label matrix plus the total component count (spec §4.9, §6).
type Result struct {
	p     Params
	tiles [][]*tileResult // [ty][tx], C9 output
	g     uint32
}

// NumComponents returns G, the number of distinct connected components
// found across the whole raster (spec §4.8).
func (res *Result) NumComponents() uint32 { return res.g }

// Params returns the geometry the result was computed with.
func (res *Result) Params() Params { return res.p }

// At returns the global label at raster pixel (x, y), or 0 if (x, y) falls
// outside the logical raster (x > NC1 or y > NR1) or names background. x and
// y are in the (NC1+1)×(NR1+1) logical raster's coordinate space.
func (res *Result) At(x, y int) uint32 {
	if x < 0 || y < 0 || x > res.p.NC1 || y > res.p.NR1 {
		return 0
	}
	tx := x / (res.p.TX - 1)
	ty := y / (res.p.TY - 1)
	if tx >= res.p.NumTilesX() {
		tx = res.p.NumTilesX() - 1
	}
	if ty >= res.p.NumTilesY() {
		ty = res.p.NumTilesY() - 1
	}
	ox, oy := res.p.TileOrigin(tx, ty)
	return res.tiles[ty][tx].Lab.At(x-ox, y-oy)
}

// Histogram returns the per-component pixel count across the whole raster.
//
// Summing each tile's own Histogram (built in relabel from provisional
// labels, before C9's renumbering) would double-count the one row/column of
// pixels every tile shares with its south/east neighbor. Histogram instead
// walks each tile's owned sub-rectangle only — the same non-overlapping
// partition spec §6 uses to serialize the final grid — so every raster
// pixel is counted exactly once.
func (res *Result) Histogram() map[uint32]int64 {
	hist := make(map[uint32]int64)
	ntX, ntY := res.p.NumTilesX(), res.p.NumTilesY()

	for ty := 0; ty < ntY; ty++ {
		ow := res.p.ownedWidth
		oh := res.p.ownedHeight
		h := oh(ty)
		for tx := 0; tx < ntX; tx++ {
			t := res.tiles[ty][tx]
			w := ow(tx)
			for r := 0; r < h; r++ {
				for c := 0; c < w; c++ {
					if v := t.Lab.At(c, r); v != 0 {
						hist[v]++
					}
				}
			}
		}
	}
	return hist
}

// Flatten serializes the result into the single non-overlapping
// NC1+1 x NR1+1 grid described by spec §6, row-major, by copying each
// tile's owned sub-rectangle into place.
func (res *Result) Flatten() []uint32 {
	width := res.p.NC1 + 1
	height := res.p.NR1 + 1
	out := make([]uint32, width*height)

	ntX, ntY := res.p.NumTilesX(), res.p.NumTilesY()
	for ty := 0; ty < ntY; ty++ {
		oh := res.p.ownedHeight(ty)
		for tx := 0; tx < ntX; tx++ {
			t := res.tiles[ty][tx]
			ow := res.p.ownedWidth(tx)
			ox, oy := res.p.TileOrigin(tx, ty)
			for r := 0; r < oh; r++ {
				row := (oy + r) * width
				for c := 0; c < ow; c++ {
					out[row+ox+c] = t.Lab.At(c, r)
				}
			}
		}
	}
	return out
}
