package ccl

// Raster is an in-memory rectangular grid of {Vb, Vo} samples (spec §3),
// row-major, one byte per pixel.
type Raster struct {
	W, H int
	Pix  []byte
}

// NewRaster allocates a zeroed (all-background) w×h raster.
func NewRaster(w, h int) *Raster {
	return &Raster{W: w, H: h, Pix: make([]byte, w*h)}
}

// At returns the sample at (x, y), or Vb for any coordinate outside the
// raster. Treating out-of-range reads as background is what lets the first
// scan (C2) use unchecked neighbor lookups at tile edges without a separate
// padded buffer (spec §3's "padded by one row and one column of Vb").
func (r *Raster) At(x, y int) byte {
	if x < 0 || x >= r.W || y < 0 || y >= r.H {
		return Vb
	}
	return r.Pix[y*r.W+x]
}

// Set writes the sample at (x, y). x and y must be in range.
func (r *Raster) Set(x, y int, v byte) {
	r.Pix[y*r.W+x] = v
}

// Tile extracts the TX×TY sub-raster for tile (tx, ty), per the overlap
// geometry of spec §3. Coordinates beyond the source raster's own extent
// (e.g. the last tile of a row that is nominally wider than NC1) read back
// as background.
func (r *Raster) Tile(p Params, tx, ty int) *Raster {
	ox, oy := p.TileOrigin(tx, ty)
	t := NewRaster(p.TX, p.TY)
	for row := 0; row < p.TY; row++ {
		for col := 0; col < p.TX; col++ {
			t.Pix[row*p.TX+col] = r.At(ox+col, oy+row)
		}
	}
	return t
}
